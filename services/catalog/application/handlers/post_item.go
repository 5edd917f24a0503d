package handlers

import (
	"net/http"

	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/pkg/httpx"
	pkgvalidator "github.com/ghuser/backoffice/pkg/validator"
	appsvcs "github.com/ghuser/backoffice/services/catalog/application/services"
)

// CreateItemRequest is the request body for POST /api/items.
// Price and cost are integer minor currency units.
type CreateItemRequest struct {
	Name        string `json:"name"        validate:"required,max=500" example:"Blue Widget"`
	Description string `json:"description" validate:"max=500"          example:"Widget, blue, 10mm"`
	Price       *int64 `json:"price"       validate:"required,gte=0"   example:"120"`
	Cost        *int64 `json:"cost"        validate:"required,gte=0"   example:"100"`
} // @name CreateItemRequest

// PostItemHandler handles POST /api/items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new catalog item with status ACTIVE.
//
//	@Summary		Create item
//	@Description	Creates a catalog item; names are unique case-insensitively
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		200		{object}	httpx.Envelope
//	@Failure		400		{object}	httpx.Envelope
//	@Failure		409		{object}	httpx.Envelope
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r, h.svc.AppCode)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), req.Name, req.Description, *req.Price, *req.Cost)
	if err != nil {
		errhttp.WriteError(w, h.svc.AppCode, err)
		return
	}

	httpx.Success(w, h.svc.AppCode, toItemResponse(item))
}
