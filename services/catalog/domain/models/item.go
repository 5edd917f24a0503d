package models

import "time"

// Status is the lifecycle state of a catalog item. Only ACTIVE items may be
// referenced by new document lines; existing lines are unaffected by later
// status changes.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// SystemUser is the audit identity recorded for mutations performed through
// the API. There is no authentication layer, so every change is attributed
// to it.
const SystemUser = "SYSTEM"

// Item is the core aggregate for the catalog bounded context. Price and Cost
// are integer minor currency units.
type Item struct {
	ID          int64
	Name        ItemName
	Description string
	Price       int64
	Cost        int64
	Status      Status
	CreatedBy   string
	UpdatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewItem constructs a valid Item aggregate with status ACTIVE and audit
// fields initialized. The ID is assigned by the store on insert.
func NewItem(name ItemName, description string, price, cost int64) *Item {
	now := time.Now().UTC()
	return &Item{
		Name:        name,
		Description: description,
		Price:       price,
		Cost:        cost,
		Status:      StatusActive,
		CreatedBy:   SystemUser,
		UpdatedBy:   SystemUser,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Active reports whether the item may be referenced by new document lines.
func (i *Item) Active() bool {
	return i.Status == StatusActive
}

// Touch refreshes the audit trail after a mutation.
func (i *Item) Touch() {
	i.UpdatedBy = SystemUser
	i.UpdatedAt = time.Now().UTC()
}
