package router

import (
	"log/slog"
	"time"

	"github.com/ManuelReschke/PropertiPro/app/repository"
	apiv1 "github.com/ManuelReschke/PropertiPro/internal/api/v1"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/apispec"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/locations"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type ApiRouter struct {
	// SpecPath points to the OpenAPI document the v1 requests are validated against
	SpecPath string
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(apiv1.Error{
				Error:   "too_many_requests",
				Message: "rate limit exceeded",
			})
		},
	}))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// API v1 routes
	v1 := api.Group("/v1")
	if h.SpecPath != "" {
		if doc, err := apispec.Load(h.SpecPath); err != nil {
			slog.Error("[API] openapi document unusable, request validation disabled", "path", h.SpecPath, "error", err)
		} else if validator, err := apispec.Validator(doc); err != nil {
			slog.Error("[API] openapi validator unusable, request validation disabled", "error", err)
		} else {
			v1.Use(validator)
		}
	}

	apiServer := apiv1.NewAPIServer(repository.GetGlobalRepositories(), locations.Default())
	apiv1.RegisterHandlersWithOptions(v1, apiServer, apiv1.RegisterOptions{
		SessionAuth: apiv1.MiddlewareFunc(middleware.RequireAPISessionAuth),
		AdminAuth:   apiv1.MiddlewareFunc(middleware.RequireAPIAdmin),
	})
}
