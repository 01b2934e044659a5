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

type OrderHandler struct {
	render   *render.Render
	orderSvc *services.OrderService
}

func NewOrderHandler(render *render.Render, orderSvc *services.OrderService) *OrderHandler {
	return &OrderHandler{
		render:   render,
		orderSvc: orderSvc,
	}
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var input services.OrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body."})
		return
	}

	userID := helpers.GetUserIDFromContext(r)

	order, err := h.orderSvc.CreateOrder(r.Context(), userID, input)
	if err != nil {
		var validationErrs validator.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			h.render.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":  "Validation failed.",
				"fields": helpers.FormatValidationErrors(validationErrs),
			})
		case errors.Is(err, services.ErrEmptyCart), errors.Is(err, services.ErrProductNotFound), errors.Is(err, services.ErrProductSoldOut):
			h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			log.Printf("CreateOrder: %v", err)
			h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to place order."})
		}
		return
	}

	h.render.JSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r)
	if userID == "" {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Sign in to view your orders."})
		return
	}

	orders, err := h.orderSvc.ListOrdersForUser(r.Context(), userID)
	if err != nil {
		log.Printf("ListMyOrders: failed for user %s: %v", userID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load orders."})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

func (h *OrderHandler) GetOrderByCode(w http.ResponseWriter, r *http.Request) {
	orderCode := mux.Vars(r)["orderCode"]

	order, err := h.orderSvc.GetOrderByCode(r.Context(), orderCode)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Order not found."})
			return
		}
		log.Printf("GetOrderByCode: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load order."})
		return
	}

	userID := helpers.GetUserIDFromContext(r)
	if order.UserID != "" && order.UserID != userID {
		h.render.JSON(w, http.StatusForbidden, map[string]string{"error": "You do not have access to this order."})
		return
	}

	h.render.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	orderCode := mux.Vars(r)["orderCode"]
	userID := helpers.GetUserIDFromContext(r)

	err := h.orderSvc.CancelOrder(r.Context(), userID, orderCode)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Order not found."})
		case errors.Is(err, services.ErrOrderNotCancelable):
			h.render.JSON(w, http.StatusConflict, map[string]string{"error": "Order can no longer be cancelled."})
		default:
			log.Printf("CancelOrder: %v", err)
			h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to cancel order."})
		}
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}
