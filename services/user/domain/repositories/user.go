package repositories

import (
	"context"

	"github.com/ghuser/backoffice/services/user/domain/models"
)

// UserRepository is the persistence interface for the User record.
// The domain layer owns this interface; infrastructure implements it.
type UserRepository interface {
	// Insert persists a new user and fills in its store-assigned ID.
	// Returns domain.ErrEmailTaken on a unique-email violation.
	Insert(ctx context.Context, user *models.User) error

	// GetByID retrieves a user. Returns domain.ErrUserNotFound if absent.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// FindAll returns every user ordered by ID.
	FindAll(ctx context.Context) ([]*models.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *models.User) error

	// Delete removes a user by ID. Returns domain.ErrUserNotFound when no
	// row was deleted.
	Delete(ctx context.Context, id int64) error
}
