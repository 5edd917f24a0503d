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

	"github.com/ghuser/backoffice/pkg/database"
	"github.com/ghuser/backoffice/pkg/events"
	documentdomain "github.com/ghuser/backoffice/services/document/domain"
	domainevents "github.com/ghuser/backoffice/services/document/domain/events"
	"github.com/ghuser/backoffice/services/document/domain/models"
	"github.com/ghuser/backoffice/services/document/domain/repositories"
)

const headerColumns = "id, datetime, description, total_price, total_cost, created_by, updated_by, created_at, updated_at"

// DocumentRepository implements repositories.DocumentRepository against
// PostgreSQL. The header and its lines live in po_h and po_d; lines cascade
// on header deletion.
type DocumentRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewDocumentRepository returns a DocumentRepository backed by the given
// connection pool and event bus. The bus is used to publish
// DocumentCreatedEvents within the create transaction.
func NewDocumentRepository(db *database.Database, bus *events.EventBus) *DocumentRepository {
	return &DocumentRepository{db: db, bus: bus}
}

// Create persists the aggregate in one transaction. The header is written
// twice: first with zero totals to obtain its id, then with the final totals
// after every line has been resolved and inserted. Each line is validated
// fully in input order: quantities first, then the item must exist and be
// ACTIVE. Any line failure aborts the transaction with an invalid-document
// error, so a failed create leaves no header and no lines behind.
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO po_h (datetime, description, total_price, total_cost, created_by, updated_by, created_at, updated_at)
			VALUES ($1, $2, 0, 0, $3, $4, $5, $6)
			RETURNING id`,
			doc.Datetime, doc.Description, doc.CreatedBy, doc.UpdatedBy, doc.CreatedAt, doc.UpdatedAt,
		).Scan(&doc.ID)
		if err != nil {
			return fmt.Errorf("insert header: %w", err)
		}

		for i := range doc.Lines {
			line := &doc.Lines[i]

			if err := line.Validate(); err != nil {
				return err
			}

			// The item must exist and be ACTIVE at this moment; its name is
			// captured for the response while cost and price stay frozen as given.
			err := tx.QueryRowContext(ctx,
				"SELECT name FROM items WHERE id = $1 AND status = $2",
				line.ItemID, "ACTIVE",
			).Scan(&line.ItemName)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return documentdomain.NewError(documentdomain.ErrInvalidDocument,
						"Item %d not found or inactive", line.ItemID)
				}
				return fmt.Errorf("resolve item %d: %w", line.ItemID, err)
			}

			err = tx.QueryRowContext(ctx, `
				INSERT INTO po_d (poh_id, item_id, item_qty, item_cost, item_price)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id`,
				doc.ID, line.ItemID, line.Qty, line.Cost, line.Price,
			).Scan(&line.ID)
			if err != nil {
				return fmt.Errorf("insert line for item %d: %w", line.ItemID, err)
			}
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE po_h SET total_cost = $2, total_price = $3, updated_at = $4
			WHERE id = $1`,
			doc.ID, doc.TotalCost, doc.TotalPrice, doc.UpdatedAt,
		); err != nil {
			return fmt.Errorf("update header totals: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, doc); err != nil {
				return fmt.Errorf("publish document created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a header with its lines in input order. Each line joins
// the referenced item's current name; cost and price come from the line row.
func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (*models.Document, error) {
	row := r.db.DB().QueryRowContext(ctx,
		"SELECT "+headerColumns+" FROM po_h WHERE id = $1", id)
	doc, err := scanHeader(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadLines(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// FindByFilter returns headers-with-lines newest first by created-at.
// Type is an exact match on the description; From and To are inclusive
// bounds on created-at. Nil filter fields leave the bound open.
func (r *DocumentRepository) FindByFilter(ctx context.Context, f repositories.Filter) ([]*models.Document, error) {
	query := "SELECT " + headerColumns + " FROM po_h WHERE 1=1"
	var args []any
	if f.Type != nil {
		args = append(args, *f.Type)
		query += fmt.Sprintf(" AND description = $%d", len(args))
	}
	if f.From != nil {
		args = append(args, *f.From)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query headers: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var docs []*models.Document
	for rows.Next() {
		doc, err := scanHeader(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate headers: %w", err)
	}

	if err := r.loadLines(ctx, docs...); err != nil {
		return nil, err
	}
	return docs, nil
}

// loadLines fetches the lines for all given headers in one query and
// distributes them by header id, keeping each header's lines in insert order.
func (r *DocumentRepository) loadLines(ctx context.Context, docs ...*models.Document) error {
	if len(docs) == 0 {
		return nil
	}
	ids := make([]int64, len(docs))
	byID := make(map[int64]*models.Document, len(docs))
	for i, doc := range docs {
		ids[i] = doc.ID
		byID[doc.ID] = doc
		doc.Lines = doc.Lines[:0]
	}

	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT d.poh_id, d.id, d.item_id, i.name, d.item_qty, d.item_cost, d.item_price
		FROM po_d d
		JOIN items i ON i.id = d.item_id
		WHERE d.poh_id = ANY($1)
		ORDER BY d.poh_id, d.id`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("query lines: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	for rows.Next() {
		var (
			pohID int64
			line  models.Line
		)
		if err := rows.Scan(&pohID, &line.ID, &line.ItemID, &line.ItemName,
			&line.Qty, &line.Cost, &line.Price); err != nil {
			return fmt.Errorf("scan line: %w", err)
		}
		byID[pohID].Lines = append(byID[pohID].Lines, line)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate lines: %w", err)
	}
	return nil
}

func (r *DocumentRepository) publishCreated(tx *sql.Tx, doc *models.Document) error {
	docType, err := doc.DocType()
	if err != nil {
		return err
	}
	event := domainevents.DocumentCreatedEvent{
		EventID:     uuid.New(),
		Version:     1,
		DocumentID:  doc.ID,
		DocType:     string(docType),
		TotalCost:   doc.TotalCost,
		TotalPrice:  doc.TotalPrice,
		StockImpact: docType.StockImpact(doc.QtySum()),
		OccurredAt:  doc.CreatedAt,
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
	return p.Publish(domainevents.TopicDocumentCreated, msg)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanHeader maps one po_h row to a domain models.Document without lines.
func scanHeader(row rowScanner) (*models.Document, error) {
	var (
		doc         models.Document
		datetime    time.Time
		description sql.NullString
	)
	err := row.Scan(&doc.ID, &datetime, &description, &doc.TotalPrice, &doc.TotalCost,
		&doc.CreatedBy, &doc.UpdatedBy, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, documentdomain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("scan header: %w", err)
	}
	doc.Datetime = datetime
	doc.Description = description.String
	return &doc, nil
}
