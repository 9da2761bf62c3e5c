package viewmodel

import "github.com/gofiber/fiber/v2"

// Layout is the data every page hands to layouts/main
type Layout struct {
	Page            string
	FromProtected   bool
	IsError         bool
	Msg             fiber.Map
	Username        string
	IsAdmin         bool
	AvatarURL       string
	CSRFToken       string
	HCaptchaSiteKey string
	// RefreshAfter and RefreshURL render a meta refresh when set
	RefreshAfter int
	RefreshURL   string
}
