package models

import (
	"time"

	documentdomain "github.com/ghuser/backoffice/services/document/domain"
)

// SystemUser is the audit identity recorded for document mutations.
const SystemUser = "SYSTEM"

// Document is the header-plus-lines aggregate: one inventory-relevant event
// (purchase order, goods receipt, or stock adjustment). The header and its
// lines form a single consistency boundary and are persisted atomically.
type Document struct {
	ID          int64
	Description string    // raw, tag included
	Datetime    time.Time // caller-supplied business timestamp
	TotalCost   int64
	TotalPrice  int64
	CreatedBy   string
	UpdatedBy   string
	CreatedAt   time.Time // clock field used for time-range filtering
	UpdatedAt   time.Time
	Lines       []Line
}

// Line is one document line. Cost and price are frozen at creation time and
// never re-derived from the referenced item's current values; ItemName is a
// read-time join filled on projection only.
type Line struct {
	ID       int64
	ItemID   int64
	ItemName string
	Qty      int64
	Cost     int64
	Price    int64
}

// Validate checks one line's quantities. The store runs it per line, in
// input order, right before resolving the referenced item, so an earlier
// line's failure is always the one reported.
func (l Line) Validate() error {
	if l.Qty <= 0 {
		return documentdomain.NewError(documentdomain.ErrInvalidDocument, "itemQty must be > 0")
	}
	if l.Cost < 0 || l.Price < 0 {
		return documentdomain.NewError(documentdomain.ErrInvalidDocument, "itemCost/itemPrice must be >= 0")
	}
	return nil
}

// NewDocument constructs the aggregate with totals computed from its lines.
// The description must already carry a recognized tag and lines must be
// non-empty; callers enforce both before construction.
func NewDocument(description string, datetime time.Time, lines []Line) *Document {
	now := time.Now().UTC()
	doc := &Document{
		Description: description,
		Datetime:    datetime,
		CreatedBy:   SystemUser,
		UpdatedBy:   SystemUser,
		CreatedAt:   now,
		UpdatedAt:   now,
		Lines:       lines,
	}
	doc.TotalCost, doc.TotalPrice = doc.totals()
	return doc
}

// totals sums quantity × unit cost and quantity × unit price across lines.
func (d *Document) totals() (cost, price int64) {
	for _, l := range d.Lines {
		cost += l.Qty * l.Cost
		price += l.Qty * l.Price
	}
	return cost, price
}

// QtySum is the total quantity across all lines, the input to StockImpact.
func (d *Document) QtySum() int64 {
	var sum int64
	for _, l := range d.Lines {
		sum += l.Qty
	}
	return sum
}

// DocType recomputes the parsed tag from the stored description. Persisted
// documents always carry a recognized tag, so the error case only guards
// against rows written outside the API.
func (d *Document) DocType() (DocType, error) {
	return ParseDocType(d.Description)
}
