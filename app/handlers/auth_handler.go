package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/luxystore/luxy-api/app/helpers"
	"github.com/luxystore/luxy-api/app/middlewares"
	"github.com/luxystore/luxy-api/app/models"
	"github.com/luxystore/luxy-api/app/repositories"
	"github.com/luxystore/luxy-api/app/utils/sessions"
	"github.com/unrolled/render"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	userRepo     repositories.UserRepositoryImpl
	sessionStore sessions.SessionStore
	render       *render.Render
	validator    *validator.Validate
}

func NewAuthHandler(userRepo repositories.UserRepositoryImpl, sessionStore sessions.SessionStore, r *render.Render, v *validator.Validate) *AuthHandler {
	return &AuthHandler{
		userRepo:     userRepo,
		sessionStore: sessionStore,
		render:       r,
		validator:    v,
	}
}

type SignupForm struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=100"`
	LastName  string `json:"lastName" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// sessionResponse is the tagged session shape: loggedIn false carries no user.
type sessionResponse struct {
	LoggedIn bool         `json:"loggedIn"`
	User     *models.User `json:"user,omitempty"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var form SignupForm
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

	existing, err := h.userRepo.FindByEmail(r.Context(), form.Email)
	if err != nil {
		log.Printf("AuthHandler: signup lookup failed for %s: %v", form.Email, err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "signup failed"})
		return
	}
	if existing != nil {
		_ = h.render.JSON(w, http.StatusConflict, map[string]string{"error": "email already registered"})
		return
	}

	user := &models.User{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
	}
	if err := h.userRepo.Create(r.Context(), user); err != nil {
		log.Printf("AuthHandler: failed to create user %s: %v", form.Email, err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "signup failed"})
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		log.Printf("AuthHandler: failed to set session for new user %s: %v", user.ID, err)
	}

	_ = h.render.JSON(w, http.StatusCreated, sessionResponse{LoggedIn: true, User: user})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var form LoginForm
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
		log.Printf("AuthHandler: login lookup failed for %s: %v", form.Email, err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "login failed"})
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.Password)) != nil {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		log.Printf("AuthHandler: failed to set session for user %s: %v", user.ID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create session"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, sessionResponse{LoggedIn: true, User: user})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		log.Printf("AuthHandler: failed to clear session: %v", err)
	}
	_ = h.render.JSON(w, http.StatusOK, sessionResponse{LoggedIn: false})
}

// Session reports the current session state without ever exposing admin
// membership; that is re-queried by the gate on every admin request.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserIDFromContext(r.Context())
	if userID == "" {
		_ = h.render.JSON(w, http.StatusOK, sessionResponse{LoggedIn: false})
		return
	}

	user, err := h.userRepo.FindByID(r.Context(), userID)
	if err != nil {
		log.Printf("AuthHandler: session lookup failed for %s: %v", userID, err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "session lookup failed"})
		return
	}
	if user == nil {
		// Stale session pointing at a deleted user.
		_ = h.sessionStore.ClearSession(w, r)
		_ = h.render.JSON(w, http.StatusOK, sessionResponse{LoggedIn: false})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, sessionResponse{LoggedIn: true, User: user})
}
