package router

import (
	"github.com/ManuelReschke/PropertiPro/app/controllers"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// API routes live in ApiRouter (internal/pkg/router/api_router.go),
	// the API docs are served by the swagger middleware at /docs/api/

	// Location option fragments for the cascade selects (htmx, GET only)
	locs := app.Group("/dashboard/listings/locations", middleware.RequireAuth)
	locs.Get("/cities", controllers.HandleCityOptions)
	locs.Get("/districts", controllers.HandleDistrictOptions)

	// Auth
	app.Post("/logout", middleware.RequireAuth, controllers.HandleAuthLogout)
}
