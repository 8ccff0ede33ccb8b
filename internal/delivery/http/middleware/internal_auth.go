package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// InternalAuthMiddleware guards the internal webhook surface with the
// shared X-Internal-Token header. An empty configured token disables the
// surface rather than opening it.
type InternalAuthMiddleware struct {
	token string
}

func NewInternalAuthMiddleware(token string) *InternalAuthMiddleware {
	return &InternalAuthMiddleware{token: strings.TrimSpace(token)}
}

func (m *InternalAuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		got := strings.TrimSpace(c.Get("X-Internal-Token"))
		if m == nil || m.token == "" || got == "" {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.token)) != 1 {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		return c.Next()
	}
}
