package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/PropertiPro/internal/pkg/session"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/usercontext"
)

// UserContextMiddleware sets up the user context for every request.
// Requests without a valid session run as anonymous.
func UserContextMiddleware(c *fiber.Ctx) error {
	usercontext.Set(c, session.Load(c))
	return c.Next()
}
