package handlers

import (
	"log"
	"net/http"

	"github.com/DevarshLade/lade-studio/app/models"
	"github.com/DevarshLade/lade-studio/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"github.com/unrolled/render"
)

type NotifyHandler struct {
	render      *render.Render
	validator   *validator.Validate
	decoder     *schema.Decoder
	notifyRepo  repositories.NotifyRepository
	productRepo repositories.ProductRepositoryImpl
}

func NewNotifyHandler(
	render *render.Render,
	validator *validator.Validate,
	notifyRepo repositories.NotifyRepository,
	productRepo repositories.ProductRepositoryImpl,
) *NotifyHandler {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return &NotifyHandler{
		render:      render,
		validator:   validator,
		decoder:     decoder,
		notifyRepo:  notifyRepo,
		productRepo: productRepo,
	}
}

type NotifyForm struct {
	ProductID string `schema:"product_id" validate:"required"`
	Email     string `schema:"email" validate:"required,email"`
}

// CreateNotifyRequest accepts a "notify me when available" form post.
// Re-submitting the same (product, email) pair is an idempotent success.
func (h *NotifyHandler) CreateNotifyRequest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid form."})
		return
	}

	var form NotifyForm
	if err := h.decoder.Decode(&form, r.PostForm); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid form fields."})
		return
	}
	if err := h.validator.Struct(form); err != nil {
		h.render.JSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "A valid email and product are required."})
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), form.ProductID)
	if err != nil {
		log.Printf("CreateNotifyRequest: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to save request."})
		return
	}
	if product == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Product not found."})
		return
	}

	exists, err := h.notifyRepo.Exists(r.Context(), form.ProductID, form.Email)
	if err != nil {
		log.Printf("CreateNotifyRequest: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to save request."})
		return
	}
	if !exists {
		req := &models.ProductNotifyRequest{ProductID: form.ProductID, Email: form.Email}
		if err := h.notifyRepo.Create(r.Context(), req); err != nil {
			log.Printf("CreateNotifyRequest: %v", err)
			h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to save request."})
			return
		}
	}

	h.render.JSON(w, http.StatusOK, map[string]string{"status": "subscribed"})
}
