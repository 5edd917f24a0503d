package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/backoffice/pkg/database"
	"github.com/ghuser/backoffice/pkg/events"
	catalogdomain "github.com/ghuser/backoffice/services/catalog/domain"
	domainevents "github.com/ghuser/backoffice/services/catalog/domain/events"
	"github.com/ghuser/backoffice/services/catalog/domain/models"
)

const itemColumns = "id, name, description, price, cost, status, created_by, updated_by, created_at, updated_at"

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection
// pool and event bus. The bus is used to publish ItemStatusChangedEvents
// within the status-update transaction.
func NewItemRepository(db *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// Insert persists a new item and assigns its ID.
// Returns ErrItemNameTaken on unique constraint violations.
func (r *ItemRepository) Insert(ctx context.Context, item *models.Item) error {
	err := r.db.DB().QueryRowContext(ctx, `
		INSERT INTO items (name, description, price, cost, status, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		item.Name.String(), item.Description, item.Price, item.Cost, item.Status,
		item.CreatedBy, item.UpdatedBy, item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return catalogdomain.NewError(catalogdomain.ErrItemNameTaken, "Item name already exists")
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID retrieves an item regardless of status. Returns ErrItemNotFound if absent.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	row := r.db.DB().QueryRowContext(ctx,
		"SELECT "+itemColumns+" FROM items WHERE id = $1", id)
	return scanItem(row)
}

// GetByIDAndStatus retrieves an item only when it currently has the given status.
func (r *ItemRepository) GetByIDAndStatus(ctx context.Context, id int64, status models.Status) (*models.Item, error) {
	row := r.db.DB().QueryRowContext(ctx,
		"SELECT "+itemColumns+" FROM items WHERE id = $1 AND status = $2", id, status)
	return scanItem(row)
}

// ExistsByNameCI reports whether any item carries the name, compared
// case-insensitively. Backed by the unique index on LOWER(name).
func (r *ItemRepository) ExistsByNameCI(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM items WHERE LOWER(name) = LOWER($1))", name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check item name: %w", err)
	}
	return exists, nil
}

// FindAll returns every item ordered by ID, regardless of status.
func (r *ItemRepository) FindAll(ctx context.Context) ([]*models.Item, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		"SELECT "+itemColumns+" FROM items ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var items []*models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// Update persists field changes to an existing item. Status is written as-is
// but transitions should go through UpdateStatus so the event is published.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	_, err := r.db.DB().ExecContext(ctx, `
		UPDATE items
		SET name = $2, description = $3, price = $4, cost = $5, updated_by = $6, updated_at = $7
		WHERE id = $1`,
		item.ID, item.Name.String(), item.Description, item.Price, item.Cost,
		item.UpdatedBy, item.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return catalogdomain.NewError(catalogdomain.ErrItemNameTaken, "Item name already exists")
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// UpdateStatus persists a status transition and publishes an
// ItemStatusChangedEvent within the same transaction.
func (r *ItemRepository) UpdateStatus(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			UPDATE items
			SET status = $2, updated_by = $3, updated_at = $4
			WHERE id = $1`,
			item.ID, item.Status, item.UpdatedBy, item.UpdatedAt,
		); err != nil {
			return fmt.Errorf("update item status: %w", err)
		}

		if r.bus != nil {
			if err := r.publishStatusChanged(tx, item); err != nil {
				return fmt.Errorf("publish item status changed: %w", err)
			}
		}
		return nil
	})
}

// ReferencedByLine reports whether any document line references the item.
func (r *ItemRepository) ReferencedByLine(ctx context.Context, itemID int64) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM po_d WHERE item_id = $1)", itemID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check item references: %w", err)
	}
	return exists, nil
}

func (r *ItemRepository) publishStatusChanged(tx *sql.Tx, item *models.Item) error {
	event := domainevents.ItemStatusChangedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		Status:     string(item.Status),
		OccurredAt: item.UpdatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicItemStatusChanged, msg)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanItem maps one items row to a domain models.Item.
func scanItem(row rowScanner) (*models.Item, error) {
	var (
		item        models.Item
		name        string
		description sql.NullString
		status      string
		createdAt   time.Time
		updatedAt   time.Time
	)
	err := row.Scan(&item.ID, &name, &description, &item.Price, &item.Cost,
		&status, &item.CreatedBy, &item.UpdatedBy, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}
	item.Name = models.ItemName(name)
	item.Description = description.String
	item.Status = models.Status(status)
	item.CreatedAt = createdAt
	item.UpdatedAt = updatedAt
	return &item, nil
}
