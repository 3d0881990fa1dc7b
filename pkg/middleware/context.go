package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/pkg/appcontext"
)

const (
	// HeaderUserID is the header key for the authenticated user ID. The
	// upstream gateway resolves the session and forwards identity headers.
	HeaderUserID = "X-User-ID"
	// HeaderDeviceID is the header key for the affiliate-tracking device ID.
	HeaderDeviceID = "X-Device-ID"
)

func Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			req := c.Request()

			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			ctx := req.Context()
			ctx = appcontext.SetRequestID(ctx, requestID)
			ctx = appcontext.SetRoute(ctx, req.URL.Path)
			ctx = appcontext.SetRemoteIP(ctx, c.RealIP())
			ctx = appcontext.SetUserID(ctx, req.Header.Get(HeaderUserID))
			ctx = appcontext.SetDeviceID(ctx, req.Header.Get(HeaderDeviceID))

			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}
