package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/DevarshLade/lade-studio/app/helpers"
	"github.com/DevarshLade/lade-studio/app/models"
	"github.com/DevarshLade/lade-studio/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type AddressHandler struct {
	render      *render.Render
	validator   *validator.Validate
	addressRepo repositories.AddressRepository
}

func NewAddressHandler(render *render.Render, validator *validator.Validate, addressRepo repositories.AddressRepository) *AddressHandler {
	return &AddressHandler{
		render:      render,
		validator:   validator,
		addressRepo: addressRepo,
	}
}

type AddressInput struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required,len=10,number"`
	Address1  string `json:"address1" validate:"required"`
	Address2  string `json:"address2"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	Pincode   string `json:"pincode" validate:"required,len=6,number"`
	IsDefault bool   `json:"is_default"`
}

func (h *AddressHandler) decodeInput(w http.ResponseWriter, r *http.Request) (*AddressInput, bool) {
	var input AddressInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body."})
		return nil, false
	}
	if err := h.validator.Struct(input); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			h.render.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":  "Validation failed.",
				"fields": helpers.FormatValidationErrors(validationErrs),
			})
			return nil, false
		}
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid address."})
		return nil, false
	}
	return &input, true
}

func (h *AddressHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r)
	if userID == "" {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Sign in to manage addresses."})
		return
	}

	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	address := &models.UserAddress{
		UserID:    userID,
		Name:      input.Name,
		Phone:     input.Phone,
		Address1:  input.Address1,
		Address2:  input.Address2,
		City:      input.City,
		State:     input.State,
		Pincode:   input.Pincode,
		IsDefault: input.IsDefault,
	}
	if err := h.addressRepo.CreateAddress(r.Context(), address); err != nil {
		log.Printf("CreateAddress: user %s: %v", userID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to save address."})
		return
	}

	h.render.JSON(w, http.StatusCreated, address)
}

func (h *AddressHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r)
	if userID == "" {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Sign in to manage addresses."})
		return
	}

	addresses, err := h.addressRepo.FindAddressesByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("ListAddresses: user %s: %v", userID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load addresses."})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{"addresses": addresses})
}

func (h *AddressHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r)
	if userID == "" {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Sign in to manage addresses."})
		return
	}

	addressID := mux.Vars(r)["addressID"]
	existing, err := h.addressRepo.FindAddressByID(r.Context(), addressID)
	if err != nil {
		log.Printf("UpdateAddress: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load address."})
		return
	}
	if existing == nil || existing.UserID != userID {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Address not found."})
		return
	}

	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	existing.Name = input.Name
	existing.Phone = input.Phone
	existing.Address1 = input.Address1
	existing.Address2 = input.Address2
	existing.City = input.City
	existing.State = input.State
	existing.Pincode = input.Pincode
	existing.IsDefault = input.IsDefault

	if err := h.addressRepo.UpdateAddress(r.Context(), existing); err != nil {
		log.Printf("UpdateAddress: user %s address %s: %v", userID, addressID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to update address."})
		return
	}

	h.render.JSON(w, http.StatusOK, existing)
}

func (h *AddressHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r)
	if userID == "" {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Sign in to manage addresses."})
		return
	}

	addressID := mux.Vars(r)["addressID"]
	existing, err := h.addressRepo.FindAddressByID(r.Context(), addressID)
	if err != nil {
		log.Printf("DeleteAddress: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load address."})
		return
	}
	if existing == nil || existing.UserID != userID {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Address not found."})
		return
	}

	if err := h.addressRepo.DeleteAddress(r.Context(), addressID); err != nil {
		log.Printf("DeleteAddress: user %s address %s: %v", userID, addressID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to delete address."})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *AddressHandler) SetDefaultAddress(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r)
	if userID == "" {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Sign in to manage addresses."})
		return
	}

	addressID := mux.Vars(r)["addressID"]
	if err := h.addressRepo.SetDefaultAddress(r.Context(), userID, addressID); err != nil {
		log.Printf("SetDefaultAddress: user %s address %s: %v", userID, addressID, err)
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Failed to set default address."})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]string{"status": "default updated"})
}
