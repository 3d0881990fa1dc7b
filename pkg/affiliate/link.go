// Package affiliate builds redirect-proxy tracking links for affiliate
// network providers.
package affiliate

import (
	"fmt"
	"net/url"
	"strings"
)

// ProviderWildfire is the only affiliate network currently integrated.
const ProviderWildfire = "wildfire"

// RedirectPath is the redirect-proxy route that resolves tracking links.
const RedirectPath = "/r/w"

// ErrUnsupportedProvider indicates a provider value no link builder exists
// for. This is a programmer error, not bad upstream data, so it surfaces as a
// hard failure instead of degrading.
type ErrUnsupportedProvider struct {
	Provider string
}

func (e *ErrUnsupportedProvider) Error() string {
	return fmt.Sprintf("unsupported affiliate provider %q", e.Provider)
}

// LinkParams are the inputs for building a tracking link. TrackingID and
// DeviceID are both required; neither is derivable from the other. BaseURL is
// optional: empty produces a relative link resolved against the current
// origin, a configured base produces an absolute link for server contexts.
type LinkParams struct {
	Provider       string
	TrackingID     string
	DeviceID       string
	DestinationURL string
	BaseURL        string
}

// CanGenerateLink reports whether both required tracking inputs are present.
// Callers check this before GenerateLink; a missing input means "link not yet
// available", not an error.
func CanGenerateLink(trackingID, deviceID string) bool {
	return strings.TrimSpace(trackingID) != "" && strings.TrimSpace(deviceID) != ""
}

// GenerateLink builds the redirect-proxy URL
// `/r/w?c={trackingID}&d={deviceID}[&url={destination}]`. The url query param
// is included only when a destination is provided and is percent-encoded.
func GenerateLink(params LinkParams) (string, error) {
	provider := params.Provider
	if provider == "" {
		provider = ProviderWildfire
	}
	if provider != ProviderWildfire {
		return "", &ErrUnsupportedProvider{Provider: provider}
	}

	if !CanGenerateLink(params.TrackingID, params.DeviceID) {
		return "", fmt.Errorf("tracking id and device id are both required")
	}

	query := url.Values{}
	query.Set("c", params.TrackingID)
	query.Set("d", params.DeviceID)
	if params.DestinationURL != "" {
		query.Set("url", params.DestinationURL)
	}

	return strings.TrimSuffix(params.BaseURL, "/") + RedirectPath + "?" + query.Encode(), nil
}
