package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClickEvent_ToJSON(t *testing.T) {
	event := &ClickEvent{
		EventType:      "affiliate.click",
		SchemaVersion:  SchemaVersion,
		TrackingID:     "456",
		DeviceID:       "device123",
		Provider:       "wildfire",
		DestinationURL: "https://acme.example.com",
		ClickedAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := event.ToJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "affiliate.click", decoded["event_type"])
	assert.Equal(t, "456", decoded["tracking_id"])
	assert.Equal(t, "device123", decoded["device_id"])
	assert.Equal(t, "wildfire", decoded["provider"])
	_, hasUser := decoded["user_id"]
	assert.False(t, hasUser, "anonymous clicks omit user_id")
}

func TestClickEvent_KeyIsDeviceID(t *testing.T) {
	event := &ClickEvent{TrackingID: "456", DeviceID: "device123"}
	assert.Equal(t, "device123", event.Key())
}
