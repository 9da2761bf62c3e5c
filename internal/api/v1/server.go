package apiv1

import (
	"github.com/gofiber/fiber/v2"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /ping)
	GetPing(c *fiber.Ctx) error
	// (GET /locations/provinces)
	GetProvinces(c *fiber.Ctx) error
	// (GET /locations/cities)
	GetCities(c *fiber.Ctx, params GetCitiesParams) error
	// (GET /locations/districts)
	GetDistricts(c *fiber.Ctx, params GetDistrictsParams) error
	// (GET /listings)
	GetListings(c *fiber.Ctx, params GetListingsParams) error
	// (GET /admin/moderation/stats)
	GetAdminModerationStats(c *fiber.Ctx) error
	// (GET /admin/reports)
	GetAdminReports(c *fiber.Ctx, params GetAdminReportsParams) error
	// (GET /admin/categories)
	GetAdminCategories(c *fiber.Ctx) error
	// (GET /admin/locations/tree)
	GetAdminLocationTree(c *fiber.Ctx) error
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// MiddlewareFunc is applied per route group
type MiddlewareFunc fiber.Handler

// RegisterOptions selects the middleware of the protected route groups
type RegisterOptions struct {
	SessionAuth MiddlewareFunc
	AdminAuth   MiddlewareFunc
}

func badParams(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(Error{Error: "bad_request", Message: "invalid query parameters: " + err.Error()})
}

func (w *ServerInterfaceWrapper) GetPing(c *fiber.Ctx) error {
	return w.Handler.GetPing(c)
}

func (w *ServerInterfaceWrapper) GetProvinces(c *fiber.Ctx) error {
	return w.Handler.GetProvinces(c)
}

func (w *ServerInterfaceWrapper) GetCities(c *fiber.Ctx) error {
	var params GetCitiesParams
	if err := c.QueryParser(&params); err != nil {
		return badParams(c, err)
	}
	return w.Handler.GetCities(c, params)
}

func (w *ServerInterfaceWrapper) GetDistricts(c *fiber.Ctx) error {
	var params GetDistrictsParams
	if err := c.QueryParser(&params); err != nil {
		return badParams(c, err)
	}
	return w.Handler.GetDistricts(c, params)
}

func (w *ServerInterfaceWrapper) GetListings(c *fiber.Ctx) error {
	var params GetListingsParams
	if err := c.QueryParser(&params); err != nil {
		return badParams(c, err)
	}
	return w.Handler.GetListings(c, params)
}

func (w *ServerInterfaceWrapper) GetAdminModerationStats(c *fiber.Ctx) error {
	return w.Handler.GetAdminModerationStats(c)
}

func (w *ServerInterfaceWrapper) GetAdminReports(c *fiber.Ctx) error {
	var params GetAdminReportsParams
	if err := c.QueryParser(&params); err != nil {
		return badParams(c, err)
	}
	return w.Handler.GetAdminReports(c, params)
}

func (w *ServerInterfaceWrapper) GetAdminCategories(c *fiber.Ctx) error {
	return w.Handler.GetAdminCategories(c)
}

func (w *ServerInterfaceWrapper) GetAdminLocationTree(c *fiber.Ctx) error {
	return w.Handler.GetAdminLocationTree(c)
}

// RegisterHandlers creates http.Handler with routing matching OpenAPI spec.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, RegisterOptions{})
}

// RegisterHandlersWithOptions registers the routes, wrapping the listing and admin groups with the given middleware
func RegisterHandlersWithOptions(router fiber.Router, si ServerInterface, options RegisterOptions) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.Get("/ping", wrapper.GetPing)
	router.Get("/locations/provinces", wrapper.GetProvinces)
	router.Get("/locations/cities", wrapper.GetCities)
	router.Get("/locations/districts", wrapper.GetDistricts)

	router.Get("/listings", handlers(options.SessionAuth, wrapper.GetListings)...)

	router.Get("/admin/moderation/stats", handlers(options.AdminAuth, wrapper.GetAdminModerationStats)...)
	router.Get("/admin/reports", handlers(options.AdminAuth, wrapper.GetAdminReports)...)
	router.Get("/admin/categories", handlers(options.AdminAuth, wrapper.GetAdminCategories)...)
	router.Get("/admin/locations/tree", handlers(options.AdminAuth, wrapper.GetAdminLocationTree)...)
}

func handlers(mw MiddlewareFunc, h fiber.Handler) []fiber.Handler {
	if mw == nil {
		return []fiber.Handler{h}
	}
	return []fiber.Handler{fiber.Handler(mw), h}
}
