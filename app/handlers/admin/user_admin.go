package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/luxystore/luxy-api/app/helpers"
	"github.com/luxystore/luxy-api/app/models"
	"github.com/luxystore/luxy-api/app/repositories"
	"github.com/unrolled/render"
)

type UserAdminHandler struct {
	userRepo  repositories.UserRepositoryImpl
	adminRepo repositories.AdminUserRepositoryImpl
	render    *render.Render
	validator *validator.Validate
}

func NewUserAdminHandler(userRepo repositories.UserRepositoryImpl, adminRepo repositories.AdminUserRepositoryImpl, r *render.Render, v *validator.Validate) *UserAdminHandler {
	return &UserAdminHandler{userRepo, adminRepo, r, v}
}

type AdminUserForm struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=100"`
	LastName  string `json:"lastName" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

func (h *UserAdminHandler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.adminRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("UserAdminHandler: failed to list admins: %v", err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "failed to fetch admin users"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"admins": admins})
}

// CreateAdmin creates the auth user (unless the email already has one) and
// grants it an allow-list row.
func (h *UserAdminHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var form AdminUserForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.validator.Struct(form); err != nil {
		_ = h.render.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  "validation failed",
			"fields": helpers.ValidationErrors(err),
		})
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), form.Email)
	if err != nil {
		log.Printf("UserAdminHandler: lookup failed for %s: %v", form.Email, err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "failed to create admin user"})
		return
	}

	if user == nil {
		user = &models.User{
			FirstName: form.FirstName,
			LastName:  form.LastName,
			Email:     form.Email,
			Password:  form.Password,
		}
		if err := h.userRepo.Create(r.Context(), user); err != nil {
			log.Printf("UserAdminHandler: failed to create user %s: %v", form.Email, err)
			_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "failed to create admin user"})
			return
		}
	}

	if existing, err := h.adminRepo.FindByUserID(r.Context(), user.ID); err == nil && existing != nil {
		_ = h.render.JSON(w, http.StatusConflict, map[string]string{"error": "user is already an admin"})
		return
	}

	admin := &models.AdminUser{UserID: user.ID, Email: user.Email}
	if err := h.adminRepo.Create(r.Context(), admin); err != nil {
		log.Printf("UserAdminHandler: failed to grant admin to %s: %v", user.Email, err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "failed to create admin user"})
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, admin)
}

func (h *UserAdminHandler) RevokeAdmin(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.adminRepo.Delete(r.Context(), id); err != nil {
		log.Printf("UserAdminHandler: failed to revoke admin %s: %v", id, err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "failed to revoke admin"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"status": "revoked"})
}
