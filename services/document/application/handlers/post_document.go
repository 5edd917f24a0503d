package handlers

import (
	"net/http"

	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/pkg/httpx"
	pkgvalidator "github.com/ghuser/backoffice/pkg/validator"
	appsvcs "github.com/ghuser/backoffice/services/document/application/services"
)

// PostDocumentHandler handles POST /api/docs requests.
type PostDocumentHandler struct {
	svc *appsvcs.Services
}

// NewPostDocumentHandler returns a PostDocumentHandler backed by the given services.
func NewPostDocumentHandler(svc *appsvcs.Services) *PostDocumentHandler {
	return &PostDocumentHandler{svc: svc}
}

// Execute creates a document: header plus lines, atomically.
//
//	@Summary		Create document
//	@Description	Creates a tagged inventory document ([PO], [GR], [ADJ_IN], [ADJ_OUT]) with its lines
//	@Tags			documents
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateDocumentRequest	true	"Document creation request"
//	@Success		200		{object}	httpx.Envelope
//	@Failure		400		{object}	httpx.Envelope
//	@Router			/docs [post]
func (h *PostDocumentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateDocumentRequest](w, r, h.svc.AppCode)
	if !ok {
		return
	}

	cmd := appsvcs.CreateDocumentCommand{
		Description: req.Description,
		Datetime:    req.Datetime.Time,
		Lines:       make([]appsvcs.LineInput, len(req.Lines)),
	}
	for i, l := range req.Lines {
		cmd.Lines[i] = appsvcs.LineInput{
			ItemID: l.ItemID,
			Qty:    l.Qty,
			Cost:   l.Cost,
			Price:  l.Price,
		}
	}

	res, err := h.svc.Document.Create(r.Context(), cmd)
	if err != nil {
		errhttp.WriteError(w, h.svc.AppCode, err)
		return
	}

	httpx.Success(w, h.svc.AppCode, toCreateResponse(res))
}
