package product

import (
	"net/http"

	"github.com/inductive/ecom/internal/response"
)

// Handler holds HTTP handlers for catalog endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new product Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List godoc
//
//	@Summary		List products
//	@Description	Returns the full product catalog in a stable order.
//	@Tags			products
//	@Produce		json
//	@Success		200	{array}	Product
//	@Router			/products [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.svc.GetAllProducts())
}
