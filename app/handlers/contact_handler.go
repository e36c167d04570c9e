package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/luxystore/luxy-api/app/helpers"
	"github.com/luxystore/luxy-api/app/models"
	"github.com/luxystore/luxy-api/app/repositories"
	"github.com/luxystore/luxy-api/app/services"
	"github.com/unrolled/render"
)

type ContactHandler struct {
	messageRepo repositories.MessageRepositoryImpl
	render      *render.Render
	validator   *validator.Validate
	mailer      *services.Mailer
}

// NewContactHandler wires the public contact endpoint. mailer may be nil, in
// which case submissions only land in the back office inbox.
func NewContactHandler(messageRepo repositories.MessageRepositoryImpl, r *render.Render, v *validator.Validate, mailer *services.Mailer) *ContactHandler {
	return &ContactHandler{messageRepo, r, v, mailer}
}

type ContactForm struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=2,max=255"`
	Message string `json:"message" validate:"required,min=5"`
}

// Submit stores a contact-form message for the back office. Validation
// failures block the save and surface per-field feedback.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var form ContactForm
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

	msg := &models.Message{
		Name:    form.Name,
		Email:   form.Email,
		Subject: form.Subject,
		Message: form.Message,
	}
	if err := h.messageRepo.Add(r.Context(), msg); err != nil {
		log.Printf("ContactHandler: failed to store message from %s: %v", form.Email, err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "failed to send message"})
		return
	}

	if h.mailer != nil {
		// Email delivery must not delay or fail the submission.
		go func(msg models.Message) {
			if err := h.mailer.NotifyContactMessage(&msg); err != nil {
				log.Printf("ContactHandler: notification email for message %d failed: %v", msg.ID, err)
			}
		}(*msg)
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]string{"status": "received"})
}
