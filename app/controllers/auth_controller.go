package controllers

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/PropertiPro/app/models"
	"github.com/ManuelReschke/PropertiPro/app/repository"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/auth"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/constants"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/env"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/hcaptcha"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/session"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/usercontext"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/validation"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/viewmodel"
)

// LoginService checks credentials
type LoginService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
}

type AuthController struct {
	auth  LoginService
	users repository.UserRepository
}

func NewAuthController(svc LoginService, users repository.UserRepository) *AuthController {
	return &AuthController{auth: svc, users: users}
}

func (ac *AuthController) HandleLogin(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return render(c, fiber.StatusOK, "auth/login", viewmodel.AuthPage{Layout: newLayout(c, "Masuk")})
	}

	email := strings.TrimSpace(c.FormValue("email"))
	user, err := ac.auth.Login(c.UserContext(), email, c.FormValue("password"))
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			slog.Error("[Auth] login failed", "ip", GetClientIP(c), "error", err)
		} else {
			slog.Info("[Auth] invalid credentials", "ip", GetClientIP(c))
		}
		return flashError(c, auth.Message(err), constants.LoginRoute)
	}

	if err := session.SignIn(c, user); err != nil {
		slog.Error("[Auth] could not start session", "user_id", user.ID, "error", err)
		return flashError(c, auth.MsgGenericFailure, constants.LoginRoute)
	}

	return flashSuccess(c, "Selamat datang kembali, "+user.Name+"!", constants.ListingsRoute)
}

func (ac *AuthController) HandleLogout(c *fiber.Ctx) error {
	if err := session.SignOut(c); err != nil {
		slog.Warn("[Auth] logout without session", "error", err)
	}
	return flashSuccess(c, "Anda telah keluar. Sampai jumpa!", constants.LoginRoute)
}

func (ac *AuthController) HandleRegister(c *fiber.Ctx) error {
	page := viewmodel.AuthPage{Layout: newLayout(c, "Daftar")}
	if c.Method() != fiber.MethodPost {
		return render(c, fiber.StatusOK, "auth/register", page)
	}

	if ok, msg := verifyCaptcha(c); !ok {
		return flashError(c, msg, constants.RegisterRoute)
	}

	page.Name = strings.TrimSpace(c.FormValue("username"))
	page.Email = strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")

	if len([]rune(page.Name)) < 3 {
		page.Errors = append(page.Errors, "Nama minimal 3 karakter")
	}
	if !validation.IsValidEmail(page.Email) {
		page.Errors = append(page.Errors, validation.MsgEmailInvalid)
	}
	page.Errors = append(page.Errors, validation.PasswordIssues(password)...)
	if password != c.FormValue("confirm_password") {
		page.Errors = append(page.Errors, validation.MsgPasswordMismatch)
	}
	if len(page.Errors) > 0 {
		return render(c, fiber.StatusUnprocessableEntity, "auth/register", page)
	}

	if _, err := ac.users.GetByEmail(c.UserContext(), page.Email); err == nil {
		page.Errors = []string{"Email sudah terdaftar"}
		return render(c, fiber.StatusUnprocessableEntity, "auth/register", page)
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		slog.Error("[Auth] register lookup failed", "error", err)
		return flashError(c, auth.MsgGenericFailure, constants.RegisterRoute)
	}

	user, err := models.CreateUser(page.Name, page.Email, password)
	if err != nil {
		page.Errors = validation.Messages(err)
		return render(c, fiber.StatusUnprocessableEntity, "auth/register", page)
	}
	if err := ac.users.Create(c.UserContext(), user); err != nil {
		slog.Error("[Auth] register failed", "error", err)
		return flashError(c, auth.MsgGenericFailure, constants.RegisterRoute)
	}

	slog.Info("[Auth] user registered", "user_id", user.ID)
	return flashSuccess(c, "Pendaftaran berhasil! Silakan masuk.", constants.LoginRoute)
}

// verifyCaptcha checks the hCaptcha answer when captcha is configured
func verifyCaptcha(c *fiber.Ctx) (bool, string) {
	if !hcaptcha.Enabled() {
		return true, ""
	}
	valid, err := hcaptcha.Verify(c.UserContext(), c.FormValue("h-captcha-response"))
	if err != nil || !valid {
		msg := "Verifikasi captcha gagal. Silakan coba lagi."
		if err != nil {
			slog.Warn("[Captcha] validation error", "error", err)
			if env.IsDev() {
				msg = "Verifikasi captcha gagal: " + err.Error()
			}
		}
		return false, msg
	}
	return true, ""
}

// HandleStart sends visitors to the dashboard or the login page
func HandleStart(c *fiber.Ctx) error {
	if usercontext.IsLoggedIn(c) {
		return c.Redirect(constants.ListingsRoute, fiber.StatusSeeOther)
	}
	return c.Redirect(constants.LoginRoute, fiber.StatusSeeOther)
}
