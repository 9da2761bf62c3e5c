package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/ManuelReschke/PropertiPro/internal/pkg/hcaptcha"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/usercontext"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/utils"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/viewmodel"
)

const mainLayout = "layouts/main"

// newLayout collects the per request data of layouts/main
func newLayout(c *fiber.Ctx, page string) viewmodel.Layout {
	uc := usercontext.GetUserContext(c)
	l := viewmodel.Layout{
		Page:            page,
		FromProtected:   uc.IsLoggedIn,
		Msg:             flash.Get(c),
		Username:        uc.Username,
		IsAdmin:         uc.IsAdmin,
		CSRFToken:       csrfToken(c),
		HCaptchaSiteKey: hcaptcha.SiteKey(),
	}
	if uc.IsLoggedIn && uc.Email != "" {
		l.AvatarURL = utils.AvatarURL(uc.Email, 64)
	}
	return l
}

// csrfToken is empty on routes outside the csrf middleware
func csrfToken(c *fiber.Ctx) string {
	if token, ok := c.Locals("csrf").(string); ok {
		return token
	}
	return ""
}

func render(c *fiber.Ctx, status int, name string, data interface{}) error {
	return c.Status(status).Render(name, data, mainLayout)
}

func flashError(c *fiber.Ctx, message, to string) error {
	return flash.WithError(c, fiber.Map{"type": "error", "message": message}).Redirect(to, fiber.StatusSeeOther)
}

func flashSuccess(c *fiber.Ctx, message, to string) error {
	return flash.WithSuccess(c, fiber.Map{"type": "success", "message": message}).Redirect(to, fiber.StatusSeeOther)
}

func flashInfo(c *fiber.Ctx, message, to string) error {
	return flash.WithInfo(c, fiber.Map{"type": "info", "message": message}).Redirect(to, fiber.StatusSeeOther)
}

// isHTMX reports requests issued by htmx
func isHTMX(c *fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}

// GetClientIP determines the client IP behind Cloudflare or a reverse proxy
func GetClientIP(c *fiber.Ctx) string {
	if ip := strings.TrimSpace(c.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}
	if xff := c.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	return strings.TrimPrefix(c.IP(), "::ffff:")
}

// ErrorHandler renders errors/error for pages and JSON for /api
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Terjadi kesalahan pada server"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	if code == fiber.StatusNotFound {
		message = "Halaman tidak ditemukan"
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(code).JSON(fiber.Map{"error": apiErrorCode(code), "message": message})
	}
	return render(c, code, "errors/error", viewmodel.ErrorPage{
		Layout:  newLayout(c, "Error"),
		Status:  code,
		Message: message,
	})
}

func apiErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "bad_request"
	case fiber.StatusUnauthorized:
		return "unauthorized"
	case fiber.StatusForbidden:
		return "forbidden"
	case fiber.StatusNotFound:
		return "not_found"
	case fiber.StatusTooManyRequests:
		return "too_many_requests"
	default:
		return "internal_error"
	}
}
