package constants

import "net/url"

// Static route constants
const (
	PublicRoute         = "/"
	LoginRoute          = "/login"
	RegisterRoute       = "/register"
	ForgotPasswordRoute = "/forgot-password"
	ForgotPasswordSent  = "/forgot-password/sent"
	ResetPasswordRoute  = "/reset-password"
	ListingsRoute       = "/dashboard/listings"
	NewListingRoute     = "/dashboard/listings/new"
	EditListingRoute    = "/dashboard/listings/edit/"
	DeleteListingRoute  = "/dashboard/listings/delete/"
	PremiumUpgradeRoute = "/premium/upgrade"
)

// NewListingPlaceholder stands in for the id of a listing that has not been stored yet
const NewListingPlaceholder = "new"

// PremiumUpgradeURL is the entry of the premium upgrade flow for a listing
func PremiumUpgradeURL(listingID string) string {
	if listingID == "" {
		listingID = NewListingPlaceholder
	}
	return PremiumUpgradeRoute + "?propertyId=" + url.QueryEscape(listingID)
}

func EditListingURL(listingID string) string {
	return EditListingRoute + url.PathEscape(listingID)
}

func DeleteListingURL(listingID string) string {
	return DeleteListingRoute + url.PathEscape(listingID)
}
