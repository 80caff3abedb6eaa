package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// IngestKeyMiddleware gates the job ingest endpoint behind a shared API key
// presented in the X-API-Key header. The discovery feed is a trusted
// machine-to-machine collaborator, not an end user, so it does not go
// through the JWT flow.
type IngestKeyMiddleware struct {
	apiKey string
}

func NewIngestKeyMiddleware(apiKey string) *IngestKeyMiddleware {
	return &IngestKeyMiddleware{apiKey: strings.TrimSpace(apiKey)}
}

func (m *IngestKeyMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if m.apiKey == "" {
			return NewAppError(fiber.StatusForbidden, "Ingest disabled", nil, nil)
		}

		got := strings.TrimSpace(c.Get("X-API-Key"))
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(m.apiKey)) != 1 {
			return NewAppError(fiber.StatusUnauthorized, "Invalid API key", nil, nil)
		}

		return c.Next()
	}
}
