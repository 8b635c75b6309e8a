package upload

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/inductive/ecom/internal/response"
)

// formField is the multipart field carrying the file.
const formField = "file"

// Handler holds HTTP handlers for upload endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new upload Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Upload godoc
//
//	@Summary		Upload a file
//	@Description	Stores the multipart "file" field in object storage and returns the generated key.
//	@Tags			upload
//	@Accept			multipart/form-data
//	@Produce		plain
//	@Param			file	formData	file	true	"File to upload"
//	@Success		200		{string}	string	"File uploaded successfully: 1700000000000-report.pdf"
//	@Failure		500		{string}	string	"File upload failed: <reason>"
//	@Router			/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	key, err := h.upload(r)
	if err != nil {
		log.Printf("[%s] file upload failed: %v", middleware.GetReqID(r.Context()), err)
		response.Text(w, http.StatusInternalServerError, "File upload failed: "+err.Error())
		return
	}
	response.Text(w, http.StatusOK, "File uploaded successfully: "+key)
}

func (h *Handler) upload(r *http.Request) (string, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return "", fmt.Errorf("read multipart body: %w", err)
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("missing form field %q", formField)
		}
		if err != nil {
			return "", fmt.Errorf("read multipart body: %w", err)
		}
		if part.FormName() != formField {
			part.Close()
			continue
		}

		// An empty or absent filename is passed through; the service keys it as "null".
		data, err := io.ReadAll(part)
		part.Close()
		if err != nil {
			return "", fmt.Errorf("read uploaded file: %w", err)
		}
		return h.svc.UploadFile(r.Context(), data, part.FileName(), part.Header.Get("Content-Type"))
	}
}
