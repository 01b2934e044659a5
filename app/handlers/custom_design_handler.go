package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/DevarshLade/lade-studio/app/helpers"
	"github.com/DevarshLade/lade-studio/app/models"
	"github.com/DevarshLade/lade-studio/app/repositories"
	"github.com/DevarshLade/lade-studio/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

// maxDesignUploadBytes bounds one intake submission (form fields + images).
const maxDesignUploadBytes = 20 << 20

type CustomDesignHandler struct {
	render     *render.Render
	validator  *validator.Validate
	designRepo repositories.CustomDesignRepository
	uploader   *services.UploaderService
}

func NewCustomDesignHandler(
	render *render.Render,
	validator *validator.Validate,
	designRepo repositories.CustomDesignRepository,
	uploader *services.UploaderService,
) *CustomDesignHandler {
	return &CustomDesignHandler{
		render:     render,
		validator:  validator,
		designRepo: designRepo,
		uploader:   uploader,
	}
}

type CustomDesignInput struct {
	Name        string `validate:"required"`
	Email       string `validate:"required,email"`
	Phone       string `validate:"required,len=10,number"`
	CategoryID  string
	ProductID   string
	Description string `validate:"required"`
}

// CreateRequest takes a multipart form: contact fields plus optional
// reference images. When the upload service is not configured, URLs passed in
// the reference_urls field are accepted as-is instead.
func (h *CustomDesignHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxDesignUploadBytes); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid multipart form."})
		return
	}

	input := CustomDesignInput{
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
		CategoryID:  r.FormValue("category_id"),
		ProductID:   r.FormValue("product_id"),
		Description: r.FormValue("description"),
	}
	if err := h.validator.Struct(input); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			h.render.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":  "Validation failed.",
				"fields": helpers.FormatValidationErrors(validationErrs),
			})
			return
		}
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request."})
		return
	}

	referenceImages := r.MultipartForm.Value["reference_urls"]

	if h.uploader.Enabled() {
		for _, header := range r.MultipartForm.File["reference_images"] {
			file, err := header.Open()
			if err != nil {
				h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Could not read uploaded file."})
				return
			}
			url, err := h.uploader.UploadImage(r.Context(), file, header.Filename)
			file.Close()
			if err != nil {
				log.Printf("CreateRequest: upload failed for %s: %v", header.Filename, err)
				h.render.JSON(w, http.StatusBadGateway, map[string]string{"error": "Image upload failed."})
				return
			}
			referenceImages = append(referenceImages, url)
		}
	} else if len(r.MultipartForm.File["reference_images"]) > 0 {
		log.Println("CreateRequest: uploads disabled, ignoring attached files")
	}

	request := &models.CustomDesignRequest{
		UserID:          helpers.GetUserIDFromContext(r),
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		CategoryID:      input.CategoryID,
		ProductID:       input.ProductID,
		Description:     input.Description,
		ReferenceImages: referenceImages,
		Status:          models.CustomDesignStatusPending,
	}
	if err := h.designRepo.Create(r.Context(), request); err != nil {
		log.Printf("CreateRequest: failed to save custom design request: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to submit request."})
		return
	}

	h.render.JSON(w, http.StatusCreated, request)
}

func (h *CustomDesignHandler) ListMyRequests(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r)
	if userID == "" {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Sign in to view your requests."})
		return
	}

	requests, err := h.designRepo.FindByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("ListMyRequests: user %s: %v", userID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load requests."})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{"requests": requests})
}
