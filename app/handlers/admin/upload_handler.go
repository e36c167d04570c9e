package admin

import (
	"net/http"

	"github.com/luxystore/luxy-api/app/services"
	"github.com/unrolled/render"
)

// Uploads are capped at 32 MiB per request; individual files are limited
// again inside the upload service.
const maxUploadFormBytes = 32 << 20

type UploadHandler struct {
	uploadService *services.UploadService
	render        *render.Render
}

func NewUploadHandler(uploadService *services.UploadService, r *render.Render) *UploadHandler {
	return &UploadHandler{uploadService, r}
}

func (h *UploadHandler) UploadImages(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadFormBytes)
	if err := r.ParseMultipartForm(maxUploadFormBytes); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart request"})
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		_ = h.render.JSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "no images provided"})
		return
	}

	results := h.uploadService.SaveImages(files)
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"results": results})
}
