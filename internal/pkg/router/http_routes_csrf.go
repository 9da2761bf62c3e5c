package router

import (
	"strings"
	"time"

	"github.com/ManuelReschke/PropertiPro/app/controllers"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/env"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"
)

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}

	group := app.Group("", cors.New(), csrf.New(csrfConf))
	group.Get("/", controllers.HandleStart)
	group.Get("/login", middleware.RequireGuest, controllers.HandleAuthLogin)
	group.Post("/login", middleware.RequireGuest, controllers.HandleAuthLogin)
	group.Get("/register", middleware.RequireGuest, controllers.HandleAuthRegister)
	group.Post("/register", middleware.RequireGuest, controllers.HandleAuthRegister)

	// Password reset
	group.Get("/forgot-password", middleware.RequireGuest, controllers.HandleForgotPassword)
	group.Post("/forgot-password", middleware.RequireGuest, controllers.HandleForgotPassword)
	group.Get("/forgot-password/sent", middleware.RequireGuest, controllers.HandleForgotPasswordSent)
	group.Post("/forgot-password/resend", middleware.RequireGuest, controllers.HandleForgotPasswordResend)
	group.Get("/reset-password", controllers.HandleResetPassword)
	group.Post("/reset-password", controllers.HandleResetPassword)

	// Listing dashboard and editor
	dash := group.Group("/dashboard/listings", middleware.RequireAuth)
	dash.Get("/", controllers.HandleListings)
	dash.Get("/new", controllers.HandleListingNew)
	dash.Post("/new", controllers.HandleListingSave)
	dash.Get("/edit/:id", controllers.HandleListingEdit)
	dash.Post("/edit/:id", controllers.HandleListingSave)
	dash.Get("/delete/:id", controllers.HandleListingDeleteConfirm)
	dash.Post("/delete/:id", controllers.HandleListingDelete)
	dash.Post("/:id/upgrade", controllers.HandleListingUpgrade)

	group.Get("/premium/upgrade", middleware.RequireAuth, controllers.HandlePremiumUpgrade)
}
