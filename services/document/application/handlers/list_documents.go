package handlers

import (
	"net/http"

	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/pkg/httpx"
	"github.com/ghuser/backoffice/pkg/timex"
	appsvcs "github.com/ghuser/backoffice/services/document/application/services"
	"github.com/ghuser/backoffice/services/document/domain/repositories"
)

// ListDocumentsHandler handles GET /api/docs requests.
type ListDocumentsHandler struct {
	svc *appsvcs.Services
}

// NewListDocumentsHandler returns a ListDocumentsHandler backed by the given services.
func NewListDocumentsHandler(svc *appsvcs.Services) *ListDocumentsHandler {
	return &ListDocumentsHandler{svc: svc}
}

// Execute lists documents newest first, optionally filtered.
//
//	@Summary		List documents
//	@Description	Lists documents filtered by exact description match and created-at range
//	@Tags			documents
//	@Produce		json
//	@Param			type	query		string	false	"Exact description match"
//	@Param			from	query		string	false	"Created-at lower bound (ISO-8601 local datetime)"
//	@Param			to		query		string	false	"Created-at upper bound (ISO-8601 local datetime)"
//	@Success		200		{object}	httpx.Envelope
//	@Failure		400		{object}	httpx.Envelope
//	@Router			/docs [get]
func (h *ListDocumentsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var f repositories.Filter
	if t := q.Get("type"); t != "" {
		f.Type = &t
	}

	from, ok, err := timex.ParseQuery(q.Get("from"))
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, h.svc.AppCode, httpx.CodeBadRequest, "from must be an ISO-8601 local datetime")
		return
	}
	if ok {
		f.From = &from.Time
	}

	to, ok, err := timex.ParseQuery(q.Get("to"))
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, h.svc.AppCode, httpx.CodeBadRequest, "to must be an ISO-8601 local datetime")
		return
	}
	if ok {
		f.To = &to.Time
	}

	docs, err := h.svc.Document.List(r.Context(), f)
	if err != nil {
		errhttp.WriteError(w, h.svc.AppCode, err)
		return
	}

	httpx.Success(w, h.svc.AppCode, toDocumentViews(docs))
}
