package passwordreset

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/PropertiPro/internal/pkg/auth"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/validation"
)

type fakeAuth struct {
	session     *auth.ResetSession
	resetCalls  []string
	updateCalls []string
	failWith    error
	err         string
}

func (f *fakeAuth) ResetPassword(ctx context.Context, email string) error {
	f.resetCalls = append(f.resetCalls, email)
	if f.failWith != nil {
		f.err = auth.Message(f.failWith)
	}
	return f.failWith
}

func (f *fakeAuth) UpdatePassword(ctx context.Context, pw string) error {
	f.updateCalls = append(f.updateCalls, pw)
	if f.failWith != nil {
		f.err = auth.Message(f.failWith)
	}
	return f.failWith
}

func (f *fakeAuth) Session() *auth.ResetSession { return f.session }
func (f *fakeAuth) Error() string               { return f.err }
func (f *fakeAuth) ClearError()                 { f.err = "" }

func TestRequestForm_MalformedEmailNeverReachesCollaborator(t *testing.T) {
	for _, email := range []string{"", "budi", "budi@", "budi@example", "bu di@example.com", "@example.com"} {
		t.Run(email, func(t *testing.T) {
			fa := &fakeAuth{}
			form := NewRequestForm(fa)

			err := form.Submit(context.Background(), email)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, []string{validation.MsgEmailInvalid}, form.ValidationErrors)
			assert.Empty(t, fa.resetCalls)
			assert.False(t, form.Submitted)
		})
	}
}

func TestRequestForm_Submit(t *testing.T) {
	fa := &fakeAuth{}
	form := NewRequestForm(fa)

	require.NoError(t, form.Submit(context.Background(), "budi@example.com"))
	assert.True(t, form.Submitted)
	assert.Equal(t, "budi@example.com", form.Email)
	assert.Equal(t, []string{"budi@example.com"}, fa.resetCalls)

	require.NoError(t, form.Resend(context.Background()))
	assert.Equal(t, []string{"budi@example.com", "budi@example.com"}, fa.resetCalls)
}

func TestRequestForm_CollaboratorFailure(t *testing.T) {
	fa := &fakeAuth{failWith: errors.New("smtp down")}
	form := NewRequestForm(fa)

	require.Error(t, form.Submit(context.Background(), "budi@example.com"))
	assert.False(t, form.Submitted)
	assert.Equal(t, auth.MsgGenericFailure, form.Error)
}

func TestRequestForm_ResendRequiresSubmit(t *testing.T) {
	form := NewRequestForm(&fakeAuth{})
	assert.ErrorIs(t, form.Resend(context.Background()), ErrNotSubmitted)

	restored := RestoreSubmitted(&fakeAuth{}, "budi@example.com")
	assert.True(t, restored.Submitted)
	assert.NoError(t, restored.Resend(context.Background()))
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		pw   string
		want []string
	}{
		{"abc", []string{validation.MsgPasswordLength, validation.MsgPasswordUppercase, validation.MsgPasswordDigit}},
		{"Abcdefgh1", nil},
		{"ABCDEFGH1", []string{validation.MsgPasswordLowercase}},
		{"abcdefgh", []string{validation.MsgPasswordUppercase, validation.MsgPasswordDigit}},
	}
	for _, tt := range tests {
		t.Run(tt.pw, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePassword(tt.pw))
		})
	}
}

func TestConfirmForm_Invalid(t *testing.T) {
	assert.True(t, NewConfirmForm(&fakeAuth{}).Invalid())
	assert.False(t, NewConfirmForm(&fakeAuth{session: &auth.ResetSession{UserID: 1}}).Invalid())
}

func TestConfirmForm_Submit(t *testing.T) {
	tests := []struct {
		name       string
		pw, cpw    string
		wantErrs   []string
		wantCalled bool
	}{
		{"weak password reported before mismatch", "abc", "xyz", []string{validation.MsgPasswordLength, validation.MsgPasswordUppercase, validation.MsgPasswordDigit}, false},
		{"mismatch", "Abcdefgh1", "Abcdefgh2", []string{validation.MsgPasswordMismatch}, false},
		{"valid pair", "Abcdefgh1", "Abcdefgh1", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fa := &fakeAuth{session: &auth.ResetSession{UserID: 1}}
			form := NewConfirmForm(fa)

			err := form.Submit(context.Background(), tt.pw, tt.cpw)
			assert.Equal(t, tt.wantErrs, form.ValidationErrors)
			if tt.wantCalled {
				require.NoError(t, err)
				assert.True(t, form.Succeeded)
				assert.Equal(t, []string{tt.pw}, fa.updateCalls)
			} else {
				assert.ErrorIs(t, err, ErrValidation)
				assert.Empty(t, fa.updateCalls)
			}
		})
	}
}

func TestConfirmForm_CollaboratorFailureKeepsInput(t *testing.T) {
	fa := &fakeAuth{session: &auth.ResetSession{UserID: 1}, failWith: auth.ErrInvalidResetSession}
	form := NewConfirmForm(fa)

	require.Error(t, form.Submit(context.Background(), "Abcdefgh1", "Abcdefgh1"))
	assert.False(t, form.Succeeded)
	assert.Equal(t, auth.MsgInvalidResetLink, form.Error)
	assert.Equal(t, "Abcdefgh1", form.Password)
	assert.Equal(t, "Abcdefgh1", form.ConfirmPassword)
}
