package service

import (
	"fmt"
	"time"

	"github.com/nclabhq/notelab/internal/notelab/domain"
	"github.com/nclabhq/notelab/pkg/idx"
	"github.com/nclabhq/notelab/pkg/jwtx"
)

// SessionService mints the signed session tokens handed out after a
// successful login or callback.
type SessionService struct {
	Signer jwtx.Signer
	Issuer string
	TTL    time.Duration
}

// Lifetime returns the effective session duration.
func (s *SessionService) Lifetime() time.Duration {
	if s.TTL <= 0 {
		return jwtx.DefaultSessionTTL
	}
	return s.TTL
}

// Mint issues a session JWT for the given account.
func (s *SessionService) Mint(user domain.User) (string, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(
		user.ID,
		idx.New().String(),
		ttl,
		s.Issuer,
		[]string{s.Issuer},
		user.DisplayName(),
		user.Profile.PhotoURL,
		time.Now().UTC(),
	)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return token, nil
}
