package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/luxystore/luxy-api/app/middlewares"
	"github.com/luxystore/luxy-api/app/models"
	"github.com/luxystore/luxy-api/app/services"
	"github.com/unrolled/render"
)

type CheckoutHandler struct {
	cartService     *services.CartService
	checkoutService *services.CheckoutService
	render          *render.Render
}

func NewCheckoutHandler(cartService *services.CartService, checkoutService *services.CheckoutService, r *render.Render) *CheckoutHandler {
	return &CheckoutHandler{cartService, checkoutService, r}
}

// WhatsAppCheckout composes the pre-filled order message link for the current
// cart. The client opens the returned URL in a new browser context.
func (h *CheckoutHandler) WhatsAppCheckout(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserIDFromContext(r.Context())
	if userID == "" {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{
			"error":    "login required",
			"redirect": "/auth",
		})
		return
	}

	summary, err := h.cartService.GetCart(r.Context(), userID)
	if err != nil {
		log.Printf("CheckoutHandler: failed to load cart for user %s: %v", userID, err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "failed to load cart"})
		return
	}

	link, err := h.checkoutService.WhatsAppLink(summary.Items)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			_ = h.render.JSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "cart is empty"})
			return
		}
		log.Printf("CheckoutHandler: failed to build checkout link: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to build checkout link"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{"url": link})
}
