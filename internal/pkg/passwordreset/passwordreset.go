// Package passwordreset holds the state of the two password reset pages:
// requesting a reset link and choosing a new password from that link.
package passwordreset

import (
	"context"
	"errors"
	"time"

	"github.com/ManuelReschke/PropertiPro/internal/pkg/auth"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/validation"
)

const (
	// RedirectAfter is how long the success page stays before moving on to RedirectTarget
	RedirectAfter  = 3 * time.Second
	RedirectTarget = "/login"
)

var (
	ErrValidation   = errors.New("form input is invalid")
	ErrNotSubmitted = errors.New("no reset request to resend")
)

// Collaborator is the auth client a form drives
type Collaborator interface {
	ResetPassword(ctx context.Context, email string) error
	UpdatePassword(ctx context.Context, newPassword string) error
	Session() *auth.ResetSession
	Error() string
	ClearError()
}

// RequestForm is the "forgot password" page
type RequestForm struct {
	Email            string
	Submitted        bool
	ValidationErrors []string
	Error            string

	auth Collaborator
}

func NewRequestForm(c Collaborator) *RequestForm {
	return &RequestForm{auth: c}
}

// RestoreSubmitted rebuilds the confirmation state for an address already requested
func RestoreSubmitted(c Collaborator, email string) *RequestForm {
	return &RequestForm{auth: c, Email: email, Submitted: email != ""}
}

// Submit requests a reset link for email. Malformed addresses are rejected
// with ErrValidation before the collaborator is involved.
func (f *RequestForm) Submit(ctx context.Context, email string) error {
	f.auth.ClearError()
	f.Error = ""
	f.ValidationErrors = nil
	f.Email = email

	if !validation.IsValidEmail(email) {
		f.ValidationErrors = []string{validation.MsgEmailInvalid}
		return ErrValidation
	}
	return f.request(ctx)
}

// Resend repeats the request for the address of a previous successful Submit
func (f *RequestForm) Resend(ctx context.Context) error {
	if !f.Submitted || f.Email == "" {
		return ErrNotSubmitted
	}
	f.auth.ClearError()
	f.Error = ""
	return f.request(ctx)
}

func (f *RequestForm) request(ctx context.Context) error {
	if err := f.auth.ResetPassword(ctx, f.Email); err != nil {
		f.Error = f.auth.Error()
		return err
	}
	f.Submitted = true
	return nil
}

// ConfirmForm is the "new password" page opened from a reset link
type ConfirmForm struct {
	Password         string
	ConfirmPassword  string
	ValidationErrors []string
	Error            string
	Succeeded        bool

	auth Collaborator
}

func NewConfirmForm(c Collaborator) *ConfirmForm {
	return &ConfirmForm{auth: c}
}

// Invalid reports that no reset session exists, the link was invalid or expired
func (f *ConfirmForm) Invalid() bool {
	return f.auth.Session() == nil
}

// ValidatePassword returns the failed strength classes of pw in display order
func ValidatePassword(pw string) []string {
	return validation.PasswordIssues(pw)
}

// Submit sets the new password. Strength issues are reported before a
// mismatch and neither reaches the collaborator. Entered values are kept
// on failure so the page can show them again.
func (f *ConfirmForm) Submit(ctx context.Context, password, confirm string) error {
	f.auth.ClearError()
	f.Error = ""
	f.Password = password
	f.ConfirmPassword = confirm

	f.ValidationErrors = ValidatePassword(password)
	if len(f.ValidationErrors) == 0 && password != confirm {
		f.ValidationErrors = []string{validation.MsgPasswordMismatch}
	}
	if len(f.ValidationErrors) > 0 {
		return ErrValidation
	}

	if err := f.auth.UpdatePassword(ctx, password); err != nil {
		f.Error = f.auth.Error()
		return err
	}
	f.Succeeded = true
	return nil
}
