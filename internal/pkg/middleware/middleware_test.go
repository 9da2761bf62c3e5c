package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/PropertiPro/internal/pkg/session"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/usercontext"
)

func newApp(uc *usercontext.UserContext) *fiber.App {
	session.UseStore(fibersession.New())
	app := fiber.New()
	app.Use(UserContextMiddleware)
	if uc != nil {
		app.Use(func(c *fiber.Ctx) error {
			usercontext.Set(c, *uc)
			return c.Next()
		})
	}
	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/page", RequireAuth, ok)
	app.Get("/login", RequireGuest, ok)
	app.Get("/api", RequireAPISessionAuth, ok)
	app.Get("/api/admin", RequireAPIAdmin, ok)
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(usercontext.GetUserContext(c))
	})
	return app
}

func TestAnonymousRequests(t *testing.T) {
	app := newApp(nil)

	tests := []struct {
		path     string
		status   int
		location string
	}{
		{"/page", fiber.StatusSeeOther, "/login"},
		{"/login", fiber.StatusOK, ""},
		{"/api", fiber.StatusUnauthorized, ""},
		{"/api/admin", fiber.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.location != "" {
				assert.Equal(t, tt.location, resp.Header.Get("Location"))
			}
		})
	}
}

func TestSignedInRequests(t *testing.T) {
	app := newApp(&usercontext.UserContext{UserID: 3, Username: "budi", IsLoggedIn: true})

	resp, err := app.Test(httptest.NewRequest("GET", "/page", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/login", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard/listings", resp.Header.Get("Location"))

	resp, err = app.Test(httptest.NewRequest("GET", "/api/admin", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
