package auth

import (
	"context"
	"errors"
	"sync"
)

const (
	MsgInvalidResetLink = "Link reset password tidak valid atau sudah kedaluwarsa"
	MsgWeakPassword     = "Password tidak memenuhi persyaratan keamanan"
	MsgGenericFailure   = "Terjadi kesalahan. Silakan coba lagi."
)

// Collaborator is the part of Service the per-request client drives
type Collaborator interface {
	ResetPassword(ctx context.Context, email string) error
	UpdatePassword(ctx context.Context, rs *ResetSession, newPassword string) error
}

// Client holds the auth state of one page: the reset session (if any),
// whether a call is in flight and the last failure as readable text.
type Client struct {
	svc     Collaborator
	session *ResetSession

	mu      sync.Mutex
	loading bool
	err     string
}

func NewClient(svc Collaborator, session *ResetSession) *Client {
	return &Client{svc: svc, session: session}
}

func (c *Client) ResetPassword(ctx context.Context, email string) error {
	c.begin()
	err := c.svc.ResetPassword(ctx, email)
	c.finish(err)
	return err
}

func (c *Client) UpdatePassword(ctx context.Context, newPassword string) error {
	if c.session == nil {
		c.finish(ErrNoResetSession)
		return ErrNoResetSession
	}
	c.begin()
	err := c.svc.UpdatePassword(ctx, c.session, newPassword)
	c.finish(err)
	return err
}

func (c *Client) Session() *ResetSession {
	return c.session
}

func (c *Client) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Client) Error() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *Client) ClearError() {
	c.mu.Lock()
	c.err = ""
	c.mu.Unlock()
}

func (c *Client) begin() {
	c.mu.Lock()
	c.loading = true
	c.err = ""
	c.mu.Unlock()
}

func (c *Client) finish(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.err = Message(err)
	}
}

// Message turns a service error into text that can be shown to the user
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidResetSession), errors.Is(err, ErrNoResetSession):
		return MsgInvalidResetLink
	case errors.Is(err, ErrWeakPassword):
		return MsgWeakPassword
	case errors.Is(err, ErrInvalidCredentials):
		return "Email atau password salah"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Permintaan dibatalkan. Silakan coba lagi."
	default:
		return MsgGenericFailure
	}
}
