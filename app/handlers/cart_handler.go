package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/DevarshLade/lade-studio/app/repositories"
	"github.com/DevarshLade/lade-studio/app/utils/calc"
	"github.com/DevarshLade/lade-studio/app/utils/format"
	"github.com/DevarshLade/lade-studio/app/utils/sessions"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

// CartHandler serves the cookie-session guest cart. The cart is an ephemeral
// display cache; checkout takes an explicit snapshot in the request body and
// never reads it.
type CartHandler struct {
	render      *render.Render
	cartStore   sessions.CartStore
	productRepo repositories.ProductRepositoryImpl
}

func NewCartHandler(render *render.Render, cartStore sessions.CartStore, productRepo repositories.ProductRepositoryImpl) *CartHandler {
	return &CartHandler{
		render:      render,
		cartStore:   cartStore,
		productRepo: productRepo,
	}
}

type cartItemPayload struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) respondCart(w http.ResponseWriter, items map[string]int) {
	payload := []cartItemPayload{}
	for productID, qty := range items {
		payload = append(payload, cartItemPayload{ProductID: productID, Quantity: qty})
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"items": payload})
}

type cartLine struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	SoldOut      bool   `json:"sold_out"`
	DisplayPrice string `json:"display_price"`
	DisplayTotal string `json:"display_total"`
}

// GetCart hydrates the stored (product id, quantity) pairs against the live
// catalog. Products deleted since the cookie was written are silently dropped.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	items := h.cartStore.GetItems(r)

	lines := []cartLine{}
	total := decimal.Zero
	for productID, qty := range items {
		product, err := h.productRepo.GetByID(r.Context(), productID)
		if err != nil {
			log.Printf("Cart GetCart: failed to load product %s: %v", productID, err)
			h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load cart."})
			return
		}
		if product == nil {
			continue
		}

		lineTotal := calc.CalculateLineSubtotal(product.Price, qty)
		total = total.Add(lineTotal)
		lines = append(lines, cartLine{
			ProductID:    product.ID,
			Name:         product.Name,
			Quantity:     qty,
			SoldOut:      product.SoldOut,
			DisplayPrice: format.FormatINR(product.Price),
			DisplayTotal: format.FormatINR(lineTotal),
		})
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"items":         lines,
		"display_total": format.FormatINR(total),
	})
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var payload cartItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.ProductID == "" || payload.Quantity < 1 {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "product_id and a positive quantity are required."})
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), payload.ProductID)
	if err != nil {
		log.Printf("Cart AddItem: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to update cart."})
		return
	}
	if product == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Product not found."})
		return
	}

	items := h.cartStore.GetItems(r)
	items[payload.ProductID] += payload.Quantity
	if err := h.cartStore.SetItems(w, r, items); err != nil {
		log.Printf("Cart AddItem: failed to save session: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to update cart."})
		return
	}

	h.respondCart(w, items)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productID"]

	var payload cartItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Quantity < 0 {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "A non-negative quantity is required."})
		return
	}

	items := h.cartStore.GetItems(r)
	if _, ok := items[productID]; !ok {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Item not in cart."})
		return
	}

	if payload.Quantity == 0 {
		delete(items, productID)
	} else {
		items[productID] = payload.Quantity
	}
	if err := h.cartStore.SetItems(w, r, items); err != nil {
		log.Printf("Cart UpdateItem: failed to save session: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to update cart."})
		return
	}

	h.respondCart(w, items)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productID"]

	items := h.cartStore.GetItems(r)
	delete(items, productID)
	if err := h.cartStore.SetItems(w, r, items); err != nil {
		log.Printf("Cart RemoveItem: failed to save session: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to update cart."})
		return
	}

	h.respondCart(w, items)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cartStore.Clear(w, r); err != nil {
		log.Printf("Cart ClearCart: failed to clear session: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to clear cart."})
		return
	}
	h.respondCart(w, map[string]int{})
}
