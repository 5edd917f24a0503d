package repositories

import (
	"context"
	"time"

	"github.com/ghuser/backoffice/services/document/domain/models"
)

// Filter narrows document list queries. Type matches the header description
// exactly (case-sensitive); From and To are inclusive bounds on the header's
// created-at timestamp. Nil fields leave that bound open.
type Filter struct {
	Type *string
	From *time.Time
	To   *time.Time
}

// DocumentRepository is the persistence interface for the document aggregate.
// The domain layer owns this interface; infrastructure implements it.
type DocumentRepository interface {
	// Create persists the header and all lines in one transaction: header
	// first with zero totals, then each line in input order after resolving
	// its item against the ACTIVE catalog, then the header again with final
	// totals. A DocumentCreatedEvent is published in the same transaction.
	// On any failure nothing is persisted. Store-assigned IDs are filled
	// into doc and its lines.
	Create(ctx context.Context, doc *models.Document) error

	// GetByID retrieves a header with its lines in input order, each line
	// carrying the referenced item's current name. Returns
	// domain.ErrDocumentNotFound if absent.
	GetByID(ctx context.Context, id int64) (*models.Document, error)

	// FindByFilter returns headers-with-lines matching the filter, newest
	// first by created-at.
	FindByFilter(ctx context.Context, f Filter) ([]*models.Document, error)
}
