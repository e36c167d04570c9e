package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/luxystore/luxy-api/app/middlewares"
	"github.com/luxystore/luxy-api/app/models"
	"github.com/luxystore/luxy-api/app/services"
	"github.com/unrolled/render"
)

type CartHandler struct {
	cartService *services.CartService
	render      *render.Render
}

func NewCartHandler(cartService *services.CartService, r *render.Render) *CartHandler {
	return &CartHandler{cartService, r}
}

type addToCartRequest struct {
	ProductID string `json:"productId"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserIDFromContext(r.Context())

	summary, err := h.cartService.GetCart(r.Context(), userID)
	if err != nil {
		log.Printf("CartHandler: failed to load cart for user %s: %v", userID, err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "failed to load cart"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, summary)
}

// ItemCount answers the navbar badge poll without serializing the rows.
func (h *CartHandler) ItemCount(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserIDFromContext(r.Context())

	count, err := h.cartService.ItemCount(r.Context(), userID)
	if err != nil {
		log.Printf("CartHandler: failed to count cart items for user %s: %v", userID, err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "failed to count cart items"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]int{"count": count})
}

// AddItem writes nothing for guests; it answers with the login redirect the
// storefront follows instead.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "productId is required"})
		return
	}

	userID := middlewares.UserIDFromContext(r.Context())
	err := h.cartService.AddToCart(r.Context(), userID, req.ProductID)
	if err != nil {
		h.renderCartError(w, err, "failed to add item to cart")
		return
	}

	h.renderCart(w, r, userID)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "quantity is required"})
		return
	}

	userID := middlewares.UserIDFromContext(r.Context())
	if err := h.cartService.UpdateQuantity(r.Context(), userID, productID, req.Quantity); err != nil {
		h.renderCartError(w, err, "failed to update cart item")
		return
	}

	h.renderCart(w, r, userID)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]

	userID := middlewares.UserIDFromContext(r.Context())
	if err := h.cartService.RemoveFromCart(r.Context(), userID, productID); err != nil {
		h.renderCartError(w, err, "failed to remove cart item")
		return
	}

	h.renderCart(w, r, userID)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserIDFromContext(r.Context())
	if err := h.cartService.ClearCart(r.Context(), userID); err != nil {
		h.renderCartError(w, err, "failed to clear cart")
		return
	}

	h.renderCart(w, r, userID)
}

func (h *CartHandler) renderCart(w http.ResponseWriter, r *http.Request, userID string) {
	summary, err := h.cartService.GetCart(r.Context(), userID)
	if err != nil {
		log.Printf("CartHandler: failed to reload cart for user %s: %v", userID, err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "failed to load cart"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, summary)
}

func (h *CartHandler) renderCartError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrLoginRequired):
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{
			"error":    "login required",
			"redirect": "/auth",
		})
	case errors.Is(err, models.ErrNotFound):
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
	default:
		log.Printf("CartHandler: %s: %v", fallback, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": fallback})
	}
}
