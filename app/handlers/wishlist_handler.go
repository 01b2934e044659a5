package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/DevarshLade/lade-studio/app/helpers"
	"github.com/DevarshLade/lade-studio/app/services"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type WishlistHandler struct {
	render      *render.Render
	wishlistSvc *services.WishlistService
}

func NewWishlistHandler(render *render.Render, wishlistSvc *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		render:      render,
		wishlistSvc: wishlistSvc,
	}
}

func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r)
	if userID == "" {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Sign in to use the wishlist."})
		return
	}

	productID := mux.Vars(r)["productID"]

	inWishlist, err := h.wishlistSvc.Toggle(r.Context(), userID, productID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Product not found."})
			return
		}
		log.Printf("Wishlist Toggle: user %s product %s: %v", userID, productID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to update wishlist."})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"product_id":  productID,
		"in_wishlist": inWishlist,
	})
}

func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r)
	if userID == "" {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Sign in to view your wishlist."})
		return
	}

	items, err := h.wishlistSvc.List(r.Context(), userID)
	if err != nil {
		log.Printf("Wishlist List: user %s: %v", userID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load wishlist."})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{"items": items})
}
