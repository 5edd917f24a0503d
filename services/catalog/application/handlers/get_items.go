package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/pkg/httpx"
	appsvcs "github.com/ghuser/backoffice/services/catalog/application/services"
)

// GetItemsHandler handles GET /api/items requests: the full catalog, or one
// ACTIVE item when the id query parameter is present.
type GetItemsHandler struct {
	svc *appsvcs.Services
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services) *GetItemsHandler {
	return &GetItemsHandler{svc: svc}
}

// Execute lists items or fetches one active item.
//
//	@Summary		List items
//	@Description	Lists all items regardless of status, or fetches one active item by id
//	@Tags			items
//	@Produce		json
//	@Param			id	query		int	false	"Item ID"
//	@Success		200	{object}	httpx.Envelope
//	@Failure		404	{object}	httpx.Envelope
//	@Router			/items [get]
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httpx.Fail(w, http.StatusBadRequest, h.svc.AppCode, httpx.CodeBadRequest, "id must be an integer")
			return
		}

		item, err := h.svc.Item.FindActiveByID(r.Context(), id)
		if err != nil {
			errhttp.WriteError(w, h.svc.AppCode, err)
			return
		}
		httpx.Success(w, h.svc.AppCode, toItemResponse(item))
		return
	}

	items, err := h.svc.Item.FindAll(r.Context())
	if err != nil {
		errhttp.WriteError(w, h.svc.AppCode, err)
		return
	}
	httpx.Success(w, h.svc.AppCode, toItemResponses(items))
}
