package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/pkg/httpx"
	pkgvalidator "github.com/ghuser/backoffice/pkg/validator"
	appsvcs "github.com/ghuser/backoffice/services/catalog/application/services"
	"github.com/ghuser/backoffice/services/catalog/domain/models"
)

// StatusRequest is the request body for PATCH /api/items/{id}/status.
type StatusRequest struct {
	Status string `json:"status" validate:"required" example:"INACTIVE"`
} // @name StatusRequest

// PatchItemStatusHandler handles PATCH /api/items/{id}/status requests.
type PatchItemStatusHandler struct {
	svc *appsvcs.Services
}

// NewPatchItemStatusHandler returns a PatchItemStatusHandler backed by the given services.
func NewPatchItemStatusHandler(svc *appsvcs.Services) *PatchItemStatusHandler {
	return &PatchItemStatusHandler{svc: svc}
}

// Execute transitions an item between ACTIVE and INACTIVE. Deactivation is
// refused while any document line references the item. Both transitions are
// idempotent.
//
//	@Summary		Change item status
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"Item ID"
//	@Param			request	body		StatusRequest	true	"Target status"
//	@Success		200		{object}	httpx.Envelope
//	@Failure		400		{object}	httpx.Envelope
//	@Failure		404		{object}	httpx.Envelope
//	@Failure		409		{object}	httpx.Envelope
//	@Router			/items/{id}/status [patch]
func (h *PatchItemStatusHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, h.svc.AppCode, httpx.CodeBadRequest, "id must be an integer")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[StatusRequest](w, r, h.svc.AppCode)
	if !ok {
		return
	}

	var item *models.Item
	switch strings.ToUpper(req.Status) {
	case string(models.StatusInactive):
		item, err = h.svc.Item.Deactivate(r.Context(), id)
	case string(models.StatusActive):
		item, err = h.svc.Item.Activate(r.Context(), id)
	default:
		httpx.Fail(w, http.StatusBadRequest, h.svc.AppCode, httpx.CodeBadRequest, "status must be ACTIVE or INACTIVE")
		return
	}
	if err != nil {
		errhttp.WriteError(w, h.svc.AppCode, err)
		return
	}

	httpx.Success(w, h.svc.AppCode, toItemResponse(item))
}
