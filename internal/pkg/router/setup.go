package router

import (
	"github.com/gofiber/fiber/v2"
)

// Router installs one family of routes
type Router interface {
	InstallRouter(app *fiber.App)
}

// InstallRouter registers pages and the JSON API. specPath is the OpenAPI document
// used for request validation, empty disables it.
func InstallRouter(app *fiber.App, specPath string) {
	// HttpRouter first: it creates the session store and the global UserContext
	// middleware that the API session checks rely on.
	setup(app, NewHttpRouter(), &ApiRouter{SpecPath: specPath})
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
