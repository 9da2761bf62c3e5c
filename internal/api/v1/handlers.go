package apiv1

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/PropertiPro/app/models"
	"github.com/ManuelReschke/PropertiPro/app/repository"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/dashboard"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/locations"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/statistics"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/usercontext"
)

const (
	defaultReportLimit = 50
	maxReportLimit     = 200
)

// APIServer implements the ServerInterface
type APIServer struct {
	repos     *repository.Repositories
	locations *locations.Directory
}

// NewAPIServer creates a new API server instance
func NewAPIServer(repos *repository.Repositories, locs *locations.Directory) *APIServer {
	return &APIServer{repos: repos, locations: locs}
}

func internalError(c *fiber.Ctx, what string, err error) error {
	slog.Error("[API] "+what+" failed", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(Error{Error: "internal_error", Message: what + " failed"})
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(Pong{Ping: "pong"})
}

func (s *APIServer) GetProvinces(c *fiber.Ctx) error {
	return c.JSON(ProvinceList{Data: s.locations.Provinces()})
}

// GetCities answers an empty list for unknown provinces
func (s *APIServer) GetCities(c *fiber.Ctx, params GetCitiesParams) error {
	return c.JSON(CityList{Data: s.locations.Cities(params.Province)})
}

func (s *APIServer) GetDistricts(c *fiber.Ctx, params GetDistrictsParams) error {
	return c.JSON(DistrictList{Data: s.locations.Districts(params.City)})
}

// GetListings returns the dashboard view of the listings of the signed in user
func (s *APIServer) GetListings(c *fiber.Ctx, params GetListingsParams) error {
	records, err := s.repos.Listing.ListByUser(c.UserContext(), usercontext.GetUserID(c))
	if err != nil {
		return internalError(c, "loading listings", err)
	}
	items := make([]models.UserListing, 0, len(records))
	for i := range records {
		city, province := s.locations.Summary(records[i].CityID, records[i].ProvinceID)
		items = append(items, records[i].ToUserListing(models.ListingLocation{City: city, Province: province}))
	}

	q := dashboard.ParseQuery(params.Q, params.Status, params.Type, params.Sort)
	return c.JSON(ListingList{
		Data:    dashboard.Apply(items, q),
		Query:   q,
		Summary: dashboard.Summarize(items),
	})
}

func (s *APIServer) GetAdminModerationStats(c *fiber.Ctx) error {
	stats, err := statistics.GetModerationStats(c.UserContext(), s.repos.Report)
	if err != nil {
		return internalError(c, "computing moderation stats", err)
	}
	return c.JSON(stats)
}

func (s *APIServer) GetAdminReports(c *fiber.Ctx, params GetAdminReportsParams) error {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultReportLimit
	}
	if limit > maxReportLimit {
		limit = maxReportLimit
	}
	reports, err := s.repos.Report.List(c.UserContext(), params.Status, limit)
	if err != nil {
		return internalError(c, "loading reports", err)
	}
	if reports == nil {
		reports = []models.Report{}
	}
	return c.JSON(ReportList{Data: reports})
}

func (s *APIServer) GetAdminCategories(c *fiber.Ctx) error {
	categories, err := s.repos.Category.List(c.UserContext(), false)
	if err != nil {
		return internalError(c, "loading categories", err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return c.JSON(CategoryList{Data: categories})
}

func (s *APIServer) GetAdminLocationTree(c *fiber.Ctx) error {
	locs, err := s.repos.Location.List(c.UserContext())
	if err != nil {
		return internalError(c, "loading locations", err)
	}
	return c.JSON(LocationTree{Data: models.BuildLocationHierarchy(locs)})
}
