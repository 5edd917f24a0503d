package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/pkg/httpx"
	appsvcs "github.com/ghuser/backoffice/services/document/application/services"
)

// GetDocumentHandler handles GET /api/docs/{id} requests.
type GetDocumentHandler struct {
	svc *appsvcs.Services
}

// NewGetDocumentHandler returns a GetDocumentHandler backed by the given services.
func NewGetDocumentHandler(svc *appsvcs.Services) *GetDocumentHandler {
	return &GetDocumentHandler{svc: svc}
}

// Execute fetches one document with lines and read-time item names.
//
//	@Summary		Get document
//	@Tags			documents
//	@Produce		json
//	@Param			id	path		int	true	"Document ID"
//	@Success		200	{object}	httpx.Envelope
//	@Failure		404	{object}	httpx.Envelope
//	@Router			/docs/{id} [get]
func (h *GetDocumentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, h.svc.AppCode, httpx.CodeBadRequest, "id must be an integer")
		return
	}

	doc, err := h.svc.Document.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, h.svc.AppCode, err)
		return
	}

	httpx.Success(w, h.svc.AppCode, toDocumentView(doc))
}
