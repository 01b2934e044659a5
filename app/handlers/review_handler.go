package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/DevarshLade/lade-studio/app/helpers"
	"github.com/DevarshLade/lade-studio/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type ReviewHandler struct {
	render    *render.Render
	reviewSvc *services.ReviewService
}

func NewReviewHandler(render *render.Render, reviewSvc *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		render:    render,
		reviewSvc: reviewSvc,
	}
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r)
	if userID == "" {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Sign in to leave a review."})
		return
	}

	var input services.ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body."})
		return
	}
	input.ProductID = mux.Vars(r)["productID"]

	review, err := h.reviewSvc.CreateReview(r.Context(), userID, input)
	if err != nil {
		var validationErrs validator.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			h.render.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":  "Validation failed.",
				"fields": helpers.FormatValidationErrors(validationErrs),
			})
		case errors.Is(err, services.ErrReviewLimitReached):
			h.render.JSON(w, http.StatusConflict, map[string]string{"error": "You have reached the review limit for this product."})
		case errors.Is(err, services.ErrProductNotFound):
			h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Product not found."})
		default:
			log.Printf("CreateReview: %v", err)
			h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to save review."})
		}
		return
	}

	h.render.JSON(w, http.StatusCreated, review)
}

func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productID"]
	limit, offset, page := paginationParams(r)

	reviews, total, err := h.reviewSvc.ListReviews(r.Context(), productID, limit, offset)
	if err != nil {
		log.Printf("ListReviews: failed for product %s: %v", productID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load reviews."})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"reviews": reviews,
		"total":   total,
		"page":    page,
	})
}
