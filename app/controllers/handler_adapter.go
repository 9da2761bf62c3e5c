package controllers

import (
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/PropertiPro/app/repository"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/auth"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/cache"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/env"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/listingform"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/locations"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/mail"
)

// Controllers bundles the page controllers used by the router
type Controllers struct {
	Auth     *AuthController
	Password *PasswordController
	Listing  *ListingController
}

// Global controller instances
var (
	controllers     *Controllers
	controllersOnce sync.Once
)

// InitializeControllers wires the controllers against the global repositories, redis and SMTP
func InitializeControllers() {
	controllersOnce.Do(func() {
		repos := repository.GetGlobalRepositories()
		svc := auth.NewService(repos.User, auth.NewRedisTokenStore(cache.GetClient()), mail.NewSMTPMailer(), auth.Config{
			Secret:  env.AppSecret(),
			BaseURL: env.AppURL(),
		})
		controllers = &Controllers{
			Auth:     NewAuthController(svc, repos.User),
			Password: NewPasswordController(svc),
			Listing:  NewListingController(repos.Listing, locations.Default(), listingform.NewRedisGuard()),
		}
	})
}

// UseControllers replaces the global controllers, tests wire fakes through it
func UseControllers(c *Controllers) {
	controllersOnce.Do(func() {})
	controllers = c
}

// GetControllers returns the global controllers
func GetControllers() *Controllers {
	if controllers == nil {
		InitializeControllers()
	}
	return controllers
}

// Adapter functions for the router

func HandleAuthLogin(c *fiber.Ctx) error {
	return GetControllers().Auth.HandleLogin(c)
}

func HandleAuthLogout(c *fiber.Ctx) error {
	return GetControllers().Auth.HandleLogout(c)
}

func HandleAuthRegister(c *fiber.Ctx) error {
	return GetControllers().Auth.HandleRegister(c)
}

func HandleForgotPassword(c *fiber.Ctx) error {
	return GetControllers().Password.HandleForgotPassword(c)
}

func HandleForgotPasswordSent(c *fiber.Ctx) error {
	return GetControllers().Password.HandleForgotPasswordSent(c)
}

func HandleForgotPasswordResend(c *fiber.Ctx) error {
	return GetControllers().Password.HandleForgotPasswordResend(c)
}

func HandleResetPassword(c *fiber.Ctx) error {
	return GetControllers().Password.HandleResetPassword(c)
}

func HandleListings(c *fiber.Ctx) error {
	return GetControllers().Listing.HandleIndex(c)
}

func HandleListingNew(c *fiber.Ctx) error {
	return GetControllers().Listing.HandleNew(c)
}

func HandleListingEdit(c *fiber.Ctx) error {
	return GetControllers().Listing.HandleEdit(c)
}

func HandleListingSave(c *fiber.Ctx) error {
	return GetControllers().Listing.HandleSave(c)
}

func HandleListingDeleteConfirm(c *fiber.Ctx) error {
	return GetControllers().Listing.HandleDeleteConfirm(c)
}

func HandleListingDelete(c *fiber.Ctx) error {
	return GetControllers().Listing.HandleDelete(c)
}

func HandleListingUpgrade(c *fiber.Ctx) error {
	return GetControllers().Listing.HandleUpgrade(c)
}

func HandleCityOptions(c *fiber.Ctx) error {
	return GetControllers().Listing.HandleCityOptions(c)
}

func HandleDistrictOptions(c *fiber.Ctx) error {
	return GetControllers().Listing.HandleDistrictOptions(c)
}

func HandlePremiumUpgrade(c *fiber.Ctx) error {
	return GetControllers().Listing.HandlePremiumUpgrade(c)
}
