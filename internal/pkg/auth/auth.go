package auth

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ManuelReschke/PropertiPro/app/models"
	"github.com/ManuelReschke/PropertiPro/app/repository"
	"github.com/ManuelReschke/PropertiPro/internal/pkg/validation"
)

const (
	DefaultTokenTTL = 24 * time.Hour
	// MinSecretLength is the shortest accepted HS256 signing key in bytes
	MinSecretLength = 32
)

var (
	ErrInvalidResetSession = errors.New("reset session is invalid or expired")
	ErrNoResetSession      = errors.New("no active reset session")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrWeakPassword        = errors.New("password does not meet the requirements")
	ErrWeakSecret          = fmt.Errorf("signing secret must be at least %d bytes", MinSecretLength)
)

// CheckSecret rejects empty or short signing keys
func CheckSecret(secret []byte) error {
	if len(secret) < MinSecretLength {
		return ErrWeakSecret
	}
	return nil
}

// TokenStore remembers issued reset token ids until they are used or expire
type TokenStore interface {
	Register(ctx context.Context, tokenID string, userID uint, ttl time.Duration) error
	Lookup(ctx context.Context, tokenID string) (uint, bool, error)
	Consume(ctx context.Context, tokenID string) error
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ResetSession is the temporary authorisation obtained from a reset link
type ResetSession struct {
	UserID    uint
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

type Config struct {
	Secret   []byte
	BaseURL  string
	TokenTTL time.Duration
	Now      func() time.Time
}

type resetClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service implements the password reset and sign-in operations on top of the user repository
type Service struct {
	users  repository.UserRepository
	tokens TokenStore
	mailer Mailer
	cfg    Config
}

func NewService(users repository.UserRepository, tokens TokenStore, mailer Mailer, cfg Config) *Service {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = DefaultTokenTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Service{users: users, tokens: tokens, mailer: mailer, cfg: cfg}
}

// ResetPassword mails a reset link to the account behind email.
// Unknown addresses succeed without sending anything.
func (s *Service) ResetPassword(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		slog.Info("[Auth] reset requested for unknown address")
		return nil
	}
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}
	if !user.IsActive() {
		slog.Info("[Auth] reset requested for inactive account", "user_id", user.ID)
		return nil
	}

	token, tokenID, err := s.issueToken(user)
	if err != nil {
		return err
	}
	if err := s.tokens.Register(ctx, tokenID, user.ID, s.cfg.TokenTTL); err != nil {
		return fmt.Errorf("register reset token: %w", err)
	}

	link := s.cfg.BaseURL + "/reset-password?token=" + url.QueryEscape(token)
	if err := s.mailer.Send(ctx, user.Email, "Reset Password Properti Pro", resetMailBody(user.Name, link)); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}
	slog.Info("[Auth] reset mail sent", "user_id", user.ID)
	return nil
}

func (s *Service) issueToken(user *models.User) (string, string, error) {
	now := s.cfg.Now()
	tokenID := uuid.NewString()
	claims := resetClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.Secret)
	if err != nil {
		return "", "", fmt.Errorf("sign reset token: %w", err)
	}
	return signed, tokenID, nil
}

// OpenResetSession verifies a reset link token and returns the session it grants
func (s *Service) OpenResetSession(ctx context.Context, token string) (*ResetSession, error) {
	if token == "" {
		return nil, ErrInvalidResetSession
	}
	claims := &resetClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.cfg.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.cfg.Now), jwt.WithExpirationRequired())
	if err != nil {
		slog.Debug("[Auth] reset token rejected", "error", err)
		return nil, ErrInvalidResetSession
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || claims.ID == "" {
		return nil, ErrInvalidResetSession
	}
	owner, ok, err := s.tokens.Lookup(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("lookup reset token: %w", err)
	}
	if !ok || owner != uint(userID) {
		return nil, ErrInvalidResetSession
	}

	return &ResetSession{
		UserID:    uint(userID),
		Email:     claims.Email,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}, nil
}

// UpdatePassword sets a new password for the session's user and consumes the reset token
func (s *Service) UpdatePassword(ctx context.Context, rs *ResetSession, newPassword string) error {
	if rs == nil {
		return ErrNoResetSession
	}
	if !s.cfg.Now().Before(rs.ExpiresAt) {
		return ErrInvalidResetSession
	}
	if len(validation.PasswordIssues(newPassword)) > 0 {
		return ErrWeakPassword
	}

	owner, ok, err := s.tokens.Lookup(ctx, rs.TokenID)
	if err != nil {
		return fmt.Errorf("lookup reset token: %w", err)
	}
	if !ok || owner != rs.UserID {
		return ErrInvalidResetSession
	}

	user, err := s.users.GetByID(ctx, rs.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrInvalidResetSession
		}
		return fmt.Errorf("load user: %w", err)
	}
	if err := user.SetPassword(newPassword); err != nil {
		return err
	}
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	if err := s.tokens.Consume(ctx, rs.TokenID); err != nil {
		slog.Error("[Auth] failed to consume reset token", "user_id", user.ID, "error", err)
	}
	slog.Info("[Auth] password updated via reset link", "user_id", user.ID)
	return nil
}

// Login checks the credentials of an active account
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if !user.IsActive() || !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	now := s.cfg.Now()
	user.LastLoginAt = &now
	if err := s.users.Update(ctx, user); err != nil {
		slog.Warn("[Auth] failed to stamp last login", "user_id", user.ID, "error", err)
	}
	return user, nil
}

func resetMailBody(name, link string) string {
	var b strings.Builder
	b.WriteString("<p>Halo ")
	b.WriteString(html.EscapeString(name))
	b.WriteString(",</p>")
	b.WriteString("<p>Kami menerima permintaan untuk mereset password akun Properti Pro Anda. ")
	b.WriteString("Klik tautan berikut untuk membuat password baru:</p>")
	b.WriteString(`<p><a href="` + html.EscapeString(link) + `">Reset Password</a></p>`)
	b.WriteString("<p>Tautan ini berlaku selama 24 jam. Abaikan email ini jika Anda tidak meminta reset password.</p>")
	return b.String()
}
