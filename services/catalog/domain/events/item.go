package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicItemStatusChanged is published when an item transitions between
// ACTIVE and INACTIVE. Idempotent status calls do not publish.
const TopicItemStatusChanged = "catalog.item.status_changed"

// ItemStatusChangedEvent is the payload for TopicItemStatusChanged.
type ItemStatusChangedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     int64     `json:"item_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
