package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/DevarshLade/lade-studio/app/services"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type AdminHandler struct {
	render   *render.Render
	slugSvc  *services.SlugService
	orderSvc *services.OrderService
}

func NewAdminHandler(render *render.Render, slugSvc *services.SlugService, orderSvc *services.OrderService) *AdminHandler {
	return &AdminHandler{
		render:   render,
		slugSvc:  slugSvc,
		orderSvc: orderSvc,
	}
}

// RepairSlugs is the GET-triggered repair endpoint; the same pass is available
// as the repair-slugs CLI command.
func (h *AdminHandler) RepairSlugs(w http.ResponseWriter, r *http.Request) {
	result, err := h.slugSvc.RepairSlugs(r.Context())
	if err != nil {
		log.Printf("RepairSlugs: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Slug repair failed."})
		return
	}
	h.render.JSON(w, http.StatusOK, result)
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderSvc.ListAllOrders(r.Context())
	if err != nil {
		log.Printf("Admin ListOrders: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load orders."})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderID"]

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Status == "" {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "A status is required."})
		return
	}

	if err := h.orderSvc.UpdateStatus(r.Context(), orderID, payload.Status); err != nil {
		log.Printf("UpdateOrderStatus: order %s: %v", orderID, err)
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]string{"status": payload.Status})
}
