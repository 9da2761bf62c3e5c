// Package views embeds the page templates and builds the Fiber view engine.
package views

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"

	"github.com/ManuelReschke/PropertiPro/app/models"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/utils"
)

//go:embed layouts partials auth password dashboard premium errors
var FS embed.FS

// NewEngine returns the html engine over the embedded templates
func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(FS), ".html")
	engine.AddFuncMap(Funcs())
	return engine
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"formatPrice": func(amount decimal.Decimal, unit string) string {
			return utils.FormatPrice(amount, unit)
		},
		"formatPriceString": utils.FormatPriceString,
		"formatDate":        utils.FormatDate,
		"imageURL":          ImageURL,
		"statusLabel": func(status string) string {
			return models.LabelFor(models.ListingStatuses, status)
		},
		"typeLabel": func(t string) string {
			return models.LabelFor(models.PropertyTypes, t)
		},
		"purposeLabel": func(p string) string {
			return models.LabelFor(models.Purposes, p)
		},
		"statusClass": StatusClass,
		"add": func(a, b int) int {
			return a + b
		},
	}
}

// ImageURL marks listing images as safe for src attributes. Only inline
// raster data URLs, http(s) URLs and site relative paths pass; anything else
// becomes the placeholder.
func ImageURL(s string) template.URL {
	switch {
	case strings.HasPrefix(s, "data:image/png;base64,"),
		strings.HasPrefix(s, "data:image/jpeg;base64,"),
		strings.HasPrefix(s, "data:image/gif;base64,"),
		strings.HasPrefix(s, "https://"),
		strings.HasPrefix(s, "http://"),
		strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//"):
		return template.URL(s)
	}
	return template.URL(models.PlaceholderImage)
}

func StatusClass(status string) string {
	switch status {
	case models.ListingStatusActive:
		return "bg-green-100 text-green-800"
	case models.ListingStatusPending:
		return "bg-blue-100 text-blue-800"
	case models.ListingStatusExpired:
		return "bg-red-100 text-red-800"
	default:
		return "bg-gray-100 text-gray-700"
	}
}
