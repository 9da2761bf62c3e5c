package controllers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/PropertiPro/internal/pkg/auth"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/constants"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/passwordreset"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/session"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/usercontext"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/viewmodel"
)

// PasswordResetService is the auth side of the reset pages
type PasswordResetService interface {
	auth.Collaborator
	OpenResetSession(ctx context.Context, token string) (*auth.ResetSession, error)
}

type PasswordController struct {
	auth PasswordResetService
}

func NewPasswordController(svc PasswordResetService) *PasswordController {
	return &PasswordController{auth: svc}
}

func (pc *PasswordController) HandleForgotPassword(c *fiber.Ctx) error {
	form := passwordreset.NewRequestForm(auth.NewClient(pc.auth, nil))
	page := viewmodel.ForgotPassword{Layout: newLayout(c, "Lupa Password"), Form: form}
	if c.Method() != fiber.MethodPost {
		return render(c, fiber.StatusOK, "password/forgot", page)
	}

	if ok, msg := verifyCaptcha(c); !ok {
		return flashError(c, msg, constants.ForgotPasswordRoute)
	}

	err := form.Submit(c.UserContext(), c.FormValue("email"))
	switch {
	case errors.Is(err, passwordreset.ErrValidation):
		return render(c, fiber.StatusUnprocessableEntity, "password/forgot", page)
	case err != nil:
		slog.Error("[Password] reset request failed", "error", err)
		return render(c, fiber.StatusOK, "password/forgot", page)
	}

	if err := session.SetSessionValue(c, usercontext.KeyResetEmail, form.Email); err != nil {
		slog.Warn("[Password] could not remember reset address", "error", err)
	}
	return c.Redirect(constants.ForgotPasswordSent, fiber.StatusSeeOther)
}

func (pc *PasswordController) HandleForgotPasswordSent(c *fiber.Ctx) error {
	email := session.GetSessionValue(c, usercontext.KeyResetEmail)
	if email == "" {
		return c.Redirect(constants.ForgotPasswordRoute, fiber.StatusSeeOther)
	}
	form := passwordreset.RestoreSubmitted(auth.NewClient(pc.auth, nil), email)
	return render(c, fiber.StatusOK, "password/sent", viewmodel.ForgotPassword{
		Layout: newLayout(c, "Cek Email"),
		Form:   form,
	})
}

func (pc *PasswordController) HandleForgotPasswordResend(c *fiber.Ctx) error {
	email := session.GetSessionValue(c, usercontext.KeyResetEmail)
	form := passwordreset.RestoreSubmitted(auth.NewClient(pc.auth, nil), email)

	err := form.Resend(c.UserContext())
	switch {
	case errors.Is(err, passwordreset.ErrNotSubmitted):
		return c.Redirect(constants.ForgotPasswordRoute, fiber.StatusSeeOther)
	case err != nil:
		slog.Error("[Password] resend failed", "error", err)
		return flashError(c, form.Error, constants.ForgotPasswordSent)
	}
	return flashSuccess(c, "Email reset password telah dikirim ulang.", constants.ForgotPasswordSent)
}

// HandleResetPassword serves the link target. A token in the query opens the
// reset session and is moved into the server session so the address bar no
// longer carries it.
func (pc *PasswordController) HandleResetPassword(c *fiber.Ctx) error {
	if token := c.Query("token"); token != "" && c.Method() == fiber.MethodGet {
		if err := session.SetSessionValue(c, usercontext.KeyResetToken, token); err != nil {
			slog.Error("[Password] could not store reset token", "error", err)
			return fiber.ErrInternalServerError
		}
		return c.Redirect(constants.ResetPasswordRoute, fiber.StatusSeeOther)
	}

	client := auth.NewClient(pc.auth, pc.resetSession(c))
	form := passwordreset.NewConfirmForm(client)
	page := viewmodel.ResetPassword{
		Layout:  newLayout(c, "Reset Password"),
		Form:    form,
		Invalid: form.Invalid(),
	}
	if page.Invalid || c.Method() != fiber.MethodPost {
		return render(c, fiber.StatusOK, "password/reset", page)
	}

	err := form.Submit(c.UserContext(), c.FormValue("password"), c.FormValue("confirm_password"))
	switch {
	case errors.Is(err, passwordreset.ErrValidation):
		return render(c, fiber.StatusUnprocessableEntity, "password/reset", page)
	case err != nil:
		slog.Error("[Password] update failed", "error", err)
		return render(c, fiber.StatusOK, "password/reset", page)
	}

	if err := session.DeleteSessionValue(c, usercontext.KeyResetToken); err != nil {
		slog.Warn("[Password] could not clear reset token", "error", err)
	}
	page.RefreshAfter = int(passwordreset.RedirectAfter.Seconds())
	page.RefreshURL = passwordreset.RedirectTarget
	return render(c, fiber.StatusOK, "password/reset", page)
}

func (pc *PasswordController) resetSession(c *fiber.Ctx) *auth.ResetSession {
	token := session.GetSessionValue(c, usercontext.KeyResetToken)
	if token == "" {
		return nil
	}
	rs, err := pc.auth.OpenResetSession(c.UserContext(), token)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidResetSession) {
			slog.Error("[Password] could not open reset session", "error", err)
		}
		return nil
	}
	return rs
}
