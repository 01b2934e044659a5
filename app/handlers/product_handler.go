package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/DevarshLade/lade-studio/app/repositories"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

const defaultPageSize = 12

type ProductHandler struct {
	render       *render.Render
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	reviewRepo   repositories.ReviewRepository
}

func NewProductHandler(
	render *render.Render,
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	reviewRepo repositories.ReviewRepository,
) *ProductHandler {
	return &ProductHandler{
		render:       render,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		reviewRepo:   reviewRepo,
	}
}

func paginationParams(r *http.Request) (limit, offset, page int) {
	page = 1
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}
	limit = defaultPageSize
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 && l <= 100 {
		limit = l
	}
	return limit, (page - 1) * limit, page
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, offset, page := paginationParams(r)

	var (
		products interface{}
		total    int64
		err      error
	)

	if keyword := r.URL.Query().Get("q"); keyword != "" {
		products, total, err = h.productRepo.SearchProductsPaginated(ctx, keyword, limit, offset)
	} else if categorySlug := r.URL.Query().Get("category"); categorySlug != "" {
		products, total, err = h.productRepo.GetByCategorySlugPaginated(ctx, categorySlug, limit, offset)
	} else {
		products, total, err = h.productRepo.GetPaginated(ctx, limit, offset)
	}

	if err != nil {
		log.Printf("ListProducts: failed to load products: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load products."})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

func (h *ProductHandler) GetProductBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	product, err := h.productRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("GetProductBySlug: failed to load product %s: %v", slug, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load product."})
		return
	}
	if product == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Product not found."})
		return
	}

	reviewCount, averageRating, err := h.reviewRepo.RatingSummary(r.Context(), product.ID)
	if err != nil {
		log.Printf("GetProductBySlug: failed to load rating summary for %s: %v", product.ID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load product."})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"product":        product,
		"review_count":   reviewCount,
		"average_rating": averageRating,
	})
}

func (h *ProductHandler) ListFeaturedProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetFeaturedProducts(r.Context(), 8)
	if err != nil {
		log.Printf("ListFeaturedProducts: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load featured products."})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("ListCategories: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load categories."})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}
