package affiliate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanGenerateLink(t *testing.T) {
	assert.True(t, CanGenerateLink("456", "device123"))
	assert.False(t, CanGenerateLink("", "device123"))
	assert.False(t, CanGenerateLink("456", ""))
	assert.False(t, CanGenerateLink("  ", "device123"))
}

func TestGenerateLink(t *testing.T) {
	link, err := GenerateLink(LinkParams{TrackingID: "456", DeviceID: "device123"})
	require.NoError(t, err)
	assert.Equal(t, "/r/w?c=456&d=device123", link)
}

func TestGenerateLink_EncodesDestination(t *testing.T) {
	link, err := GenerateLink(LinkParams{
		TrackingID:     "456",
		DeviceID:       "device123",
		DestinationURL: "https://acme.example.com/p?sku=1&ref=a b",
	})
	require.NoError(t, err)
	assert.Equal(t, "/r/w?c=456&d=device123&url=https%3A%2F%2Facme.example.com%2Fp%3Fsku%3D1%26ref%3Da+b", link)
}

func TestGenerateLink_AbsoluteWithBaseURL(t *testing.T) {
	link, err := GenerateLink(LinkParams{
		TrackingID: "456",
		DeviceID:   "device123",
		BaseURL:    "https://shop.example.com/",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com/r/w?c=456&d=device123", link)
}

func TestGenerateLink_UnsupportedProvider(t *testing.T) {
	_, err := GenerateLink(LinkParams{Provider: "rakuten", TrackingID: "456", DeviceID: "device123"})
	require.Error(t, err)

	var unsupported *ErrUnsupportedProvider
	assert.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "rakuten", unsupported.Provider)
}

func TestGenerateLink_MissingRequiredParams(t *testing.T) {
	_, err := GenerateLink(LinkParams{TrackingID: "", DeviceID: "device123"})
	assert.Error(t, err)

	_, err = GenerateLink(LinkParams{TrackingID: "456", DeviceID: ""})
	assert.Error(t, err)
}
