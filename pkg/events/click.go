// Package events publishes affiliate click events to the event bus. Click
// events are how downstream attribution learns that a tracking link was
// followed; losing one costs a user their cashback, so emission failures are
// logged loudly but never fail the redirect itself.
package events

import (
	"encoding/json"
	"time"
)

// SchemaVersion is the current click event schema version
const SchemaVersion = "1.0"

// ClickEvent records an affiliate tracking link being followed.
type ClickEvent struct {
	EventType      string    `json:"event_type"`
	SchemaVersion  string    `json:"schema_version"`
	TrackingID     string    `json:"tracking_id"`
	DeviceID       string    `json:"device_id"`
	UserID         string    `json:"user_id,omitempty"`
	Provider       string    `json:"provider"`
	DestinationURL string    `json:"destination_url,omitempty"`
	RequestID      string    `json:"request_id,omitempty"`
	ClickedAt      time.Time `json:"clicked_at"`
}

// ToJSON serializes the event for publishing.
func (e *ClickEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Key returns the partition key. Keying by device keeps one user's clicks
// ordered on a single partition.
func (e *ClickEvent) Key() string {
	return e.DeviceID
}
