package viewmodel

import (
	"github.com/ManuelReschke/PropertiPro/app/models"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/dashboard"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/listingform"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/locations"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/passwordreset"
)

type AuthPage struct {
	Layout
	Name   string
	Email  string
	Errors []string
}

type ForgotPassword struct {
	Layout
	Form *passwordreset.RequestForm
}

type ResetPassword struct {
	Layout
	Form    *passwordreset.ConfirmForm
	Invalid bool
}

type ListingEditor struct {
	Layout
	Form          listingform.FormData
	IsEdit        bool
	Action        string
	Errors        []string
	NewFeature    string
	Provinces     []locations.Province
	Cities        []locations.City
	Districts     []locations.District
	PropertyTypes []models.Option
	Purposes      []models.Option
	PriceUnits    []models.Option
	MaxImages     int
}

type ListingDashboard struct {
	Layout
	Listings []models.UserListing
	Query    dashboard.Query
	Summary  dashboard.Summary
	Statuses []models.Option
	Types    []models.Option
	Sorts    []models.Option
}

type ListingDelete struct {
	Layout
	Listing models.UserListing
}

type PremiumUpgrade struct {
	Layout
	PropertyID string
	Listing    *models.UserListing
}

// LocationOptions feeds the <option> fragments of the cascade selects
type LocationOptions struct {
	Placeholder string
	Selected    string
	Options     []models.Option
}

type ErrorPage struct {
	Layout
	Status  int
	Message string
}
