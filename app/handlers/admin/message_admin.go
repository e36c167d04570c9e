package admin

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/luxystore/luxy-api/app/models"
	"github.com/luxystore/luxy-api/app/repositories"
	"github.com/unrolled/render"
)

type MessageAdminHandler struct {
	messageRepo repositories.MessageRepositoryImpl
	render      *render.Render
}

func NewMessageAdminHandler(messageRepo repositories.MessageRepositoryImpl, r *render.Render) *MessageAdminHandler {
	return &MessageAdminHandler{messageRepo, r}
}

func (h *MessageAdminHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("MessageAdminHandler: failed to list messages: %v", err)
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "failed to fetch messages"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}

func (h *MessageAdminHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	id, ok := h.messageID(w, r)
	if !ok {
		return
	}

	if err := h.messageRepo.MarkAsRead(r.Context(), id); err != nil {
		h.renderMessageError(w, err, "failed to mark message as read")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"status": "read"})
}

func (h *MessageAdminHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.messageID(w, r)
	if !ok {
		return
	}

	if err := h.messageRepo.Delete(r.Context(), id); err != nil {
		h.renderMessageError(w, err, "failed to delete message")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *MessageAdminHandler) messageID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid message id"})
		return 0, false
	}
	return uint(id), true
}

func (h *MessageAdminHandler) renderMessageError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, models.ErrNotFound) {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "message not found"})
		return
	}
	log.Printf("MessageAdminHandler: %s: %v", fallback, err)
	_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": fallback})
}
