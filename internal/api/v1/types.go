package apiv1

import (
	"github.com/ManuelReschke/PropertiPro/app/models"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/dashboard"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/locations"
)

// Pong defines model for Pong.
type Pong struct {
	Ping string `json:"ping"`
}

// Error defines model for Error.
type Error struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ProvinceList defines model for ProvinceList.
type ProvinceList struct {
	Data []locations.Province `json:"data"`
}

// CityList defines model for CityList.
type CityList struct {
	Data []locations.City `json:"data"`
}

// DistrictList defines model for DistrictList.
type DistrictList struct {
	Data []locations.District `json:"data"`
}

// ListingList defines model for ListingList.
type ListingList struct {
	Data    []models.UserListing `json:"data"`
	Query   dashboard.Query      `json:"query"`
	Summary dashboard.Summary    `json:"summary"`
}

// ReportList defines model for ReportList.
type ReportList struct {
	Data []models.Report `json:"data"`
}

// CategoryList defines model for CategoryList.
type CategoryList struct {
	Data []models.Category `json:"data"`
}

// LocationTree defines model for LocationTree.
type LocationTree struct {
	Data []*models.LocationHierarchy `json:"data"`
}

// GetCitiesParams defines parameters for GetCities.
type GetCitiesParams struct {
	Province string `query:"province"`
}

// GetDistrictsParams defines parameters for GetDistricts.
type GetDistrictsParams struct {
	City string `query:"city"`
}

// GetListingsParams defines parameters for GetListings.
type GetListingsParams struct {
	Q      string `query:"q"`
	Status string `query:"status"`
	Type   string `query:"type"`
	Sort   string `query:"sort"`
}

// GetAdminReportsParams defines parameters for GetAdminReports.
type GetAdminReportsParams struct {
	Status string `query:"status"`
	Limit  int    `query:"limit"`
}
