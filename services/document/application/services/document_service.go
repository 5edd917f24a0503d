package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	documentdomain "github.com/ghuser/backoffice/services/document/domain"
	"github.com/ghuser/backoffice/services/document/domain/models"
	"github.com/ghuser/backoffice/services/document/domain/repositories"
)

// LineInput is one requested document line before validation.
type LineInput struct {
	ItemID int64
	Qty    int64
	Cost   int64
	Price  int64
}

// CreateDocumentCommand is the domain-level create request: a raw tagged
// description, the caller's business timestamp, and the ordered lines.
type CreateDocumentCommand struct {
	Description string
	Datetime    time.Time
	Lines       []LineInput
}

// CreateResult is the create-response projection. StockImpact is derived
// from the parsed tag and the total line quantity; it is never persisted.
type CreateResult struct {
	Document    *models.Document
	DocType     models.DocType
	StockImpact int64
}

// DocumentService is the document engine: it classifies a document by the
// tag in its description, validates lines against the active catalog,
// computes monetary totals and the stock impact, and persists header plus
// lines atomically through the repository.
type DocumentService struct {
	repo repositories.DocumentRepository
}

// NewDocumentService returns a DocumentService wired with the given repository.
func NewDocumentService(repo repositories.DocumentRepository) *DocumentService {
	return &DocumentService{repo: repo}
}

// Create validates and persists a document.
//
// Validation order matters and is observable through the returned message:
// tag first, then the non-empty lines rule, then each line in input order.
// Per-line checks (quantity, then cost/price, then the item's activation
// state) run inside the store's transaction so line N is validated fully
// before line N+1 is looked at. Any failure leaves nothing persisted.
func (s *DocumentService) Create(ctx context.Context, cmd CreateDocumentCommand) (*CreateResult, error) {
	docType, err := models.ParseDocType(cmd.Description)
	if err != nil {
		return nil, err
	}
	if len(cmd.Lines) == 0 {
		return nil, documentdomain.NewError(documentdomain.ErrInvalidDocument,
			"Document must have at least 1 line")
	}

	lines := make([]models.Line, 0, len(cmd.Lines))
	for _, in := range cmd.Lines {
		lines = append(lines, models.Line{ItemID: in.ItemID, Qty: in.Qty, Cost: in.Cost, Price: in.Price})
	}

	doc := models.NewDocument(cmd.Description, cmd.Datetime, lines)
	if err := s.repo.Create(ctx, doc); err != nil {
		if errors.Is(err, documentdomain.ErrInvalidDocument) {
			return nil, err
		}
		return nil, fmt.Errorf("create document: %w", err)
	}

	return &CreateResult{
		Document:    doc,
		DocType:     docType,
		StockImpact: docType.StockImpact(doc.QtySum()),
	}, nil
}

// Get retrieves one document with its lines and read-time item names.
func (s *DocumentService) Get(ctx context.Context, id int64) (*models.Document, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, documentdomain.ErrDocumentNotFound) {
			return nil, documentdomain.NewError(documentdomain.ErrDocumentNotFound,
				"Document not found: %d", id)
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// List returns documents matching the filter, newest first by created-at.
func (s *DocumentService) List(ctx context.Context, f repositories.Filter) ([]*models.Document, error) {
	docs, err := s.repo.FindByFilter(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}
