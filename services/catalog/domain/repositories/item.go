package repositories

import (
	"context"

	"github.com/ghuser/backoffice/services/catalog/domain/models"
)

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
// Absence is expressed through domain.ErrItemNotFound, never a nil item.
type ItemRepository interface {
	// Insert persists a new item and fills in its store-assigned ID.
	// Returns domain.ErrItemNameTaken on a unique-name violation.
	Insert(ctx context.Context, item *models.Item) error

	// GetByID retrieves an item regardless of status.
	GetByID(ctx context.Context, id int64) (*models.Item, error)

	// GetByIDAndStatus retrieves an item only when it currently has the
	// given status.
	GetByIDAndStatus(ctx context.Context, id int64, status models.Status) (*models.Item, error)

	// ExistsByNameCI reports whether any item's name equals name
	// case-insensitively, regardless of status.
	ExistsByNameCI(ctx context.Context, name string) (bool, error)

	// FindAll returns every item ordered by ID.
	FindAll(ctx context.Context) ([]*models.Item, error)

	// Update persists field changes to an existing item. Status is not
	// expected to change through this method.
	Update(ctx context.Context, item *models.Item) error

	// UpdateStatus persists a status transition and publishes an
	// ItemStatusChangedEvent within the same transaction.
	UpdateStatus(ctx context.Context, item *models.Item) error

	// ReferencedByLine reports whether any document line references the item.
	ReferencedByLine(ctx context.Context, itemID int64) (bool, error)
}
