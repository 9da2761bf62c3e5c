package apispec

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDoc = `
openapi: 3.0.3
info: {title: test, version: "1"}
servers:
  - url: /api/v1
paths:
  /admin/reports:
    get:
      parameters:
        - name: limit
          in: query
          schema: {type: integer, minimum: 1, maximum: 200}
      responses:
        '200': {description: ok}
  /locations/cities:
    get:
      parameters:
        - name: province
          in: query
          required: true
          schema: {type: string, minLength: 1}
      responses:
        '200': {description: ok}
`

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	doc, err := LoadData([]byte(testDoc))
	require.NoError(t, err)
	validator, err := Validator(doc)
	require.NoError(t, err)

	app := fiber.New()
	v1 := app.Group("/api/v1", validator)
	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	v1.Get("/admin/reports", ok)
	v1.Get("/locations/cities", ok)
	v1.Get("/undocumented", ok)
	return app
}

func TestValidator(t *testing.T) {
	app := newApp(t)

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"valid integer", "/api/v1/admin/reports?limit=5", fiber.StatusOK},
		{"optional parameter missing", "/api/v1/admin/reports", fiber.StatusOK},
		{"not an integer", "/api/v1/admin/reports?limit=abc", fiber.StatusBadRequest},
		{"above maximum", "/api/v1/admin/reports?limit=500", fiber.StatusBadRequest},
		{"required parameter missing", "/api/v1/locations/cities", fiber.StatusBadRequest},
		{"required parameter present", "/api/v1/locations/cities?province=31", fiber.StatusOK},
		{"unknown path passes through", "/api/v1/undocumented", fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestLoadRejectsBrokenDocument(t *testing.T) {
	_, err := LoadData([]byte("openapi: 3.0.3\ninfo: {title: x}\npaths: {}\n"))
	assert.Error(t, err)
}
