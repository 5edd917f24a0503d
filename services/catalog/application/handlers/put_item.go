package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/pkg/httpx"
	pkgvalidator "github.com/ghuser/backoffice/pkg/validator"
	appsvcs "github.com/ghuser/backoffice/services/catalog/application/services"
)

// UpdateItemRequest is the request body for PUT /api/items/{id}.
// Status is not modifiable through this endpoint.
type UpdateItemRequest struct {
	Name        string `json:"name"        validate:"required,max=500" example:"Blue Widget"`
	Description string `json:"description" validate:"max=500"          example:"Widget, blue, 10mm"`
	Price       *int64 `json:"price"       validate:"required,gte=0"   example:"130"`
	Cost        *int64 `json:"cost"        validate:"required,gte=0"   example:"105"`
} // @name UpdateItemRequest

// PutItemHandler handles PUT /api/items/{id} requests.
type PutItemHandler struct {
	svc *appsvcs.Services
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute updates name, description, price, and cost of an item.
//
//	@Summary		Update item
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Item ID"
//	@Param			request	body		UpdateItemRequest	true	"Item update request"
//	@Success		200		{object}	httpx.Envelope
//	@Failure		400		{object}	httpx.Envelope
//	@Failure		404		{object}	httpx.Envelope
//	@Router			/items/{id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, h.svc.AppCode, httpx.CodeBadRequest, "id must be an integer")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r, h.svc.AppCode)
	if !ok {
		return
	}

	item, err := h.svc.Item.Update(r.Context(), id, req.Name, req.Description, *req.Price, *req.Cost)
	if err != nil {
		errhttp.WriteError(w, h.svc.AppCode, err)
		return
	}

	httpx.Success(w, h.svc.AppCode, toItemResponse(item))
}
