package redirect

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/pkg/tracing"
)

// ClickEmitter publishes the click event behind the redirect.
type ClickEmitter interface {
	EmitClick(ctx context.Context, trackingID, deviceID, destinationURL string) error
}

// Options configures the redirect route.
type Options struct {
	// DefaultLandingURL is where a click without an explicit destination
	// lands, typically the affiliate network's merchant landing page.
	DefaultLandingURL string
}

// Wildfire serves the affiliate redirect. The tracking and device params are
// required; the destination must be an absolute http(s) URL and falls back to
// the configured network landing page when absent. Event emission is best
// effort and never delays the redirect.
func Wildfire(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "redirect.Wildfire")
	defer span.End()

	trackingID := c.QueryParam("c")
	deviceID := c.QueryParam("d")
	destination := c.QueryParam("url")

	if trackingID == "" || deviceID == "" {
		return httperror.NewHTTPError(http.StatusBadRequest, "missing tracking or device parameter")
	}

	if destination == "" {
		ctx2, opts, err := ectoinject.GetContext[*Options](ctx)
		if err != nil {
			return err
		}
		ctx = ctx2
		if opts.DefaultLandingURL == "" {
			return httperror.NewHTTPError(http.StatusBadRequest, "missing destination url")
		}
		destination = opts.DefaultLandingURL
	}

	parsed, err := url.Parse(destination)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return httperror.NewHTTPError(http.StatusBadRequest, "destination must be an absolute http(s) url")
	}

	ctx, emitter, err := ectoinject.GetContext[ClickEmitter](ctx)
	if err != nil {
		return err
	}

	// The emitter records its own failure metrics; a dropped event must not
	// cost the user their redirect.
	_ = emitter.EmitClick(ctx, trackingID, deviceID, destination)

	return c.Redirect(http.StatusFound, destination)
}
