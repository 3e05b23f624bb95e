// Package middleware contains the HTTP middleware for the delivery layer.
package middleware

import (
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionMiddleware assigns every request a shopping session ID and a request
// ID, and creates a request-scoped logger carrying both. The session ID is
// echoed back in the response header so the client can replay it; a client
// without one gets a fresh session (and therefore a fresh, empty cart).
type SessionMiddleware struct {
	logger *slog.Logger
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		logger: logger,
	}
}

// Process extracts or mints the session and request IDs and stores them, plus
// a logger scoped to them, in both echo.Context and context.Context.
func (m *SessionMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		sessionID := c.Request().Header.Get(deliverycontext.HeaderXSessionID)
		if sessionID == "" {
			sessionID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		deliverycontext.SetSessionID(c, sessionID)

		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXSessionID, sessionID)

		reqLogger := m.logger.With(
			slog.String("request_id", requestID),
			slog.String("session_id", sessionID),
		)

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
