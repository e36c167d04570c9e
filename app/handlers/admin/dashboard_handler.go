package admin

import (
	"log"
	"net/http"

	"github.com/luxystore/luxy-api/app/middlewares"
	"github.com/luxystore/luxy-api/app/repositories"
	"github.com/unrolled/render"
)

type DashboardHandler struct {
	productRepo repositories.ProductRepositoryImpl
	messageRepo repositories.MessageRepositoryImpl
	adminRepo   repositories.AdminUserRepositoryImpl
	render      *render.Render
}

func NewDashboardHandler(productRepo repositories.ProductRepositoryImpl, messageRepo repositories.MessageRepositoryImpl, adminRepo repositories.AdminUserRepositoryImpl, r *render.Render) *DashboardHandler {
	return &DashboardHandler{productRepo, messageRepo, adminRepo, r}
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetProducts(r.Context())
	if err != nil {
		log.Printf("DashboardHandler: failed to count products: %v", err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "failed to load dashboard"})
		return
	}

	unread, err := h.messageRepo.CountUnread(r.Context())
	if err != nil {
		log.Printf("DashboardHandler: failed to count unread messages: %v", err)
		unread = 0
	}

	admins, err := h.adminRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("DashboardHandler: failed to count admins: %v", err)
	}

	admin := middlewares.AdminFromContext(r.Context())

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"signedInAs":     admin.Email,
		"productCount":   len(products),
		"unreadMessages": unread,
		"adminCount":     len(admins),
	})
}
