package handlers

import (
	"github.com/ghuser/backoffice/pkg/timex"
	appsvcs "github.com/ghuser/backoffice/services/document/application/services"
	"github.com/ghuser/backoffice/services/document/domain/models"
)

// CreateDocumentRequest is the request body for POST /api/docs. The
// description must start with one of the recognized tags; datetime is the
// caller's business timestamp, not the persistence clock.
type CreateDocumentRequest struct {
	Description string              `json:"description" validate:"required" example:"[GR] GR-1003"`
	Datetime    timex.LocalDateTime `json:"datetime"    validate:"required" example:"2025-09-16T10:30:00"`
	Lines       []DocLineRequest    `json:"lines"`
} // @name CreateDocumentRequest

// DocLineRequest is one requested document line. Quantity and value checks
// happen in the engine so their exact error messages are preserved.
type DocLineRequest struct {
	ItemID int64 `json:"itemId"    example:"10"`
	Qty    int64 `json:"itemQty"   example:"2"`
	Cost   int64 `json:"itemCost"  example:"100"`
	Price  int64 `json:"itemPrice" example:"120"`
} // @name DocLineRequest

// CreateDocumentResponse is returned by POST /api/docs. StockImpact is the
// derived signed stock movement; it is reported here only and not persisted.
type CreateDocumentResponse struct {
	ID          int64               `json:"id"`
	Description string              `json:"description"`
	Datetime    timex.LocalDateTime `json:"datetime"`
	TotalCost   int64               `json:"totalCost"`
	TotalPrice  int64               `json:"totalPrice"`
	DocType     string              `json:"docType"`
	StockImpact int64               `json:"stockImpact"`
	Lines       []DocLineResponse   `json:"lines"`
} // @name CreateDocumentResponse

// DocLineResponse is one created line, in input order.
type DocLineResponse struct {
	ID     int64 `json:"id"`
	ItemID int64 `json:"itemId"`
	Qty    int64 `json:"qty"`
	Cost   int64 `json:"cost"`
	Price  int64 `json:"price"`
} // @name DocLineResponse

// DocumentView is the read projection returned by GET /api/docs and
// GET /api/docs/{id}. Type carries the parsed tag (e.g. "GR"), recomputed
// from the stored description on every read.
type DocumentView struct {
	ID          int64                `json:"id"`
	Type        string               `json:"type"`
	Description string               `json:"description"`
	Datetime    timex.LocalDateTime  `json:"datetime"`
	TotalPrice  int64                `json:"totalPrice"`
	TotalCost   int64                `json:"totalCost"`
	Details     []DocumentDetailView `json:"details"`
} // @name DocumentView

// DocumentDetailView is one line in the read projection. ItemName is the
// referenced item's current name; qty, cost, and price are the values frozen
// at create time.
type DocumentDetailView struct {
	ID       int64  `json:"id"`
	ItemID   int64  `json:"itemId"`
	ItemName string `json:"itemName"`
	Qty      int64  `json:"qty"`
	Cost     int64  `json:"cost"`
	Price    int64  `json:"price"`
} // @name DocumentDetailView

func toCreateResponse(res *appsvcs.CreateResult) CreateDocumentResponse {
	doc := res.Document
	lines := make([]DocLineResponse, len(doc.Lines))
	for i, l := range doc.Lines {
		lines[i] = DocLineResponse{
			ID:     l.ID,
			ItemID: l.ItemID,
			Qty:    l.Qty,
			Cost:   l.Cost,
			Price:  l.Price,
		}
	}
	return CreateDocumentResponse{
		ID:          doc.ID,
		Description: doc.Description,
		Datetime:    timex.New(doc.Datetime),
		TotalCost:   doc.TotalCost,
		TotalPrice:  doc.TotalPrice,
		DocType:     string(res.DocType),
		StockImpact: res.StockImpact,
		Lines:       lines,
	}
}

func toDocumentView(doc *models.Document) DocumentView {
	details := make([]DocumentDetailView, len(doc.Lines))
	for i, l := range doc.Lines {
		details[i] = DocumentDetailView{
			ID:       l.ID,
			ItemID:   l.ItemID,
			ItemName: l.ItemName,
			Qty:      l.Qty,
			Cost:     l.Cost,
			Price:    l.Price,
		}
	}

	// Rows always carry a recognized tag; fall back to the raw description
	// for anything written outside the API.
	typ := doc.Description
	if docType, err := doc.DocType(); err == nil {
		typ = string(docType)
	}

	return DocumentView{
		ID:          doc.ID,
		Type:        typ,
		Description: doc.Description,
		Datetime:    timex.New(doc.Datetime),
		TotalPrice:  doc.TotalPrice,
		TotalCost:   doc.TotalCost,
		Details:     details,
	}
}

func toDocumentViews(docs []*models.Document) []DocumentView {
	out := make([]DocumentView, len(docs))
	for i, doc := range docs {
		out[i] = toDocumentView(doc)
	}
	return out
}
