package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicDocumentCreated is published once per successfully created document,
// within the create transaction.
const TopicDocumentCreated = "document.created"

// DocumentCreatedEvent is the payload for TopicDocumentCreated. StockImpact
// carries the derived signed stock movement; no stock balance is kept, so
// consumers interested in stock levels must fold these events themselves.
type DocumentCreatedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	Version     int       `json:"version"`
	DocumentID  int64     `json:"document_id"`
	DocType     string    `json:"doc_type"`
	TotalCost   int64     `json:"total_cost"`
	TotalPrice  int64     `json:"total_price"`
	StockImpact int64     `json:"stock_impact"`
	OccurredAt  time.Time `json:"occurred_at"`
}
