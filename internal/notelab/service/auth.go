package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nclabhq/notelab/internal/notelab/domain"
	"github.com/nclabhq/notelab/internal/notelab/store"
	"github.com/nclabhq/notelab/pkg/cryptox"
	"github.com/nclabhq/notelab/pkg/emailx"
	"github.com/nclabhq/notelab/pkg/idx"
	"github.com/nclabhq/notelab/pkg/slogx"
)

var (
	ErrInvalidCredentials   = errors.New("invalid_credentials")
	ErrInvalidEmail         = errors.New("invalid_email")
	ErrMissingFields        = errors.New("missing_fields")
	ErrRegisterKeyMissing   = errors.New("register_key_missing")
	ErrRegisterKeyMismatch  = errors.New("register_key_mismatch")
	ErrRegistrationDisabled = errors.New("registration_disabled")
)

// AuthService handles password login and gated email registration.
type AuthService struct {
	Store store.Store

	// RegistrationKey gates account creation when non-empty. It applies
	// to both email registration and first-time external sign-in.
	RegistrationKey string

	// AllowEmailRegister disables the email registration path entirely
	// when false; external sign-in is unaffected.
	AllowEmailRegister bool
}

// Authenticate verifies an email/password pair and returns the account.
//
// Unknown email, password-less (external-only) account and wrong
// password all collapse into ErrInvalidCredentials so the HTTP boundary
// cannot leak whether an account exists. Only a syntactically invalid
// email is reported distinctly, since that is an input error checked
// before any lookup.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	email, err := emailx.Normalize(email)
	if err != nil {
		return domain.User{}, ErrInvalidEmail
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("lookup user: %w", err)
	}

	if !user.IsLocal() {
		// Account exists but has no password (external-only).
		return domain.User{}, ErrInvalidCredentials
	}

	if err := cryptox.VerifyPassword(password, *user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			// Malformed stored hash. Still reported as invalid
			// credentials, but worth a server-side warning.
			l.Warn("stored password hash unusable", slog.String("user_id", user.ID))
		}
		return domain.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// RegisterParams are the inputs for email registration.
type RegisterParams struct {
	Email       string
	Password    string
	DisplayName string
	PhotoURL    string
	RegKey      string
}

// Register creates a local account, or returns the existing one with
// created=false when the email is already taken. The find-or-create runs
// inside one transaction; a concurrent loser recovers from the unique
// constraint by re-reading the winner row.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (domain.User, bool, error) {
	l := slogx.FromContext(ctx)

	if !s.AllowEmailRegister {
		return domain.User{}, false, ErrRegistrationDisabled
	}

	if err := checkRegisterKey(s.RegistrationKey, p.RegKey); err != nil {
		return domain.User{}, false, err
	}

	if strings.TrimSpace(p.Email) == "" || p.Password == "" {
		return domain.User{}, false, ErrMissingFields
	}

	email, err := emailx.Normalize(p.Email)
	if err != nil {
		return domain.User{}, false, ErrInvalidEmail
	}

	hash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return domain.User{}, false, fmt.Errorf("hash password: %w", err)
	}

	var (
		user    domain.User
		created bool
	)

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		existing, err := tx.Users().GetUserByEmail(ctx, email)
		if err == nil {
			user, created = existing, false
			return nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("lookup user: %w", err)
		}

		candidate := domain.User{
			ID:           idx.New().String(),
			Email:        &email,
			PasswordHash: &hash,
			Profile: domain.Profile{
				DisplayName: p.DisplayName,
				PhotoURL:    p.PhotoURL,
			},
			DeleteToken: cryptox.MustGenerateToken(cryptox.TokenSize128),
		}

		if err := tx.Users().CreateUser(ctx, candidate); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				// Lost the race; the winner's row is the account.
				winner, rerr := tx.Users().GetUserByEmail(ctx, email)
				if rerr != nil {
					return fmt.Errorf("re-read after conflict: %w", rerr)
				}
				user, created = winner, false
				return nil
			}
			return fmt.Errorf("create user: %w", err)
		}

		user, created = candidate, true
		return nil
	})
	if err != nil {
		return domain.User{}, false, err
	}

	if created {
		l.Info("user registered", slog.String("user_id", user.ID))
	}
	return user, created, nil
}

// checkRegisterKey is the single gate shared by email registration and
// first-time external sign-in. An empty configured key means open
// registration. Comparison is constant-time.
func checkRegisterKey(configured, supplied string) error {
	if configured == "" {
		return nil
	}
	if supplied == "" {
		return ErrRegisterKeyMissing
	}
	if !cryptox.ConstantTimeEquals(configured, supplied) {
		return ErrRegisterKeyMismatch
	}
	return nil
}
