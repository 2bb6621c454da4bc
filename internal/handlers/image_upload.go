package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/imagineapp/imagine-server/internal/logger"
)

const maxUploadBytes = 10 << 20

// ImageUploader defines the interface for the upload service.
type ImageUploader interface {
	Upload(ctx context.Context, userID uuid.UUID, name string, content []byte, expireAt *time.Time) (uuid.UUID, error)
}

// UploadResponse carries the id of the stored image
// swagger:model UploadResponse
type UploadResponse struct {
	ID string `json:"id"`
}

// NewUploadHandler returns an HTTP handler for image upload. The
// response does not wait for the malware scan; the scan runs detached
// after the image row has been committed.
// @Summary Upload an image
// @Description Stores a PNG or JPEG image from a multipart form. Optional fields: name, expire_at (RFC 3339).
// @Tags user-images
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image content"
// @Success 201 {object} handlers.UploadResponse
// @Failure 400 {object} handlers.ErrorResponse "Bad request"
// @Failure 401 {object} handlers.ErrorResponse "Login required"
// @Router /user-images [post]
func NewUploadHandler(resolver InternalIDResolver, svc ImageUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := resolveUser(w, r, resolver)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		file, _, err := r.FormFile("image")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		extension := ""
		switch http.DetectContentType(content) {
		case "image/png":
			extension = ".png"
		case "image/jpeg":
			extension = ".jpeg"
		default:
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		name := r.FormValue("name")
		if name != "" {
			if !isValidInput(name) {
				writeError(w, http.StatusBadRequest, "Bad request")
				return
			}
			name += extension
		}

		var expireAt *time.Time
		if raw := r.FormValue("expire_at"); raw != "" {
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Bad request")
				return
			}
			expireAt = &parsed
		}

		id, err := svc.Upload(r.Context(), userID, name, content, expireAt)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(UploadResponse{ID: id.String()})
	}
}
