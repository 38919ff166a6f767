package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nclabhq/notelab/internal/notelab/domain"
	"github.com/nclabhq/notelab/internal/notelab/provider"
	"github.com/nclabhq/notelab/internal/notelab/store"
	"github.com/nclabhq/notelab/pkg/cryptox"
	"github.com/nclabhq/notelab/pkg/idx"
	"github.com/nclabhq/notelab/pkg/slogx"
)

// DefaultStateTTL bounds how long a started external sign-in may take
// before the callback state expires.
const DefaultStateTTL = 10 * time.Minute

var ErrInvalidState = errors.New("invalid_state")

// LinkService resolves external identities to accounts and manages the
// OAuth state round trip.
type LinkService struct {
	Store store.Store

	// RegistrationKey gates first-time external account creation; it
	// never affects sign-in to an already-linked account.
	RegistrationKey string

	StateTTL time.Duration
}

// Begin mints a single-use OAuth state for the given provider, carrying
// the registration-key claim across the redirect. The returned opaque
// token goes to the provider as `state`; only its fingerprint is stored.
func (s *LinkService) Begin(ctx context.Context, providerID, regKeyClaim string) (string, error) {
	ttl := s.StateTTL
	if ttl <= 0 {
		ttl = DefaultStateTTL
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}

	state := domain.AuthState{
		ID:          idx.New().String(),
		TokenHash:   cryptox.FingerprintToken(token),
		Provider:    providerID,
		RegKeyClaim: regKeyClaim,
		ExpiresAt:   time.Now().UTC().Add(ttl),
	}
	if err := s.Store.AuthStates().CreateAuthState(ctx, state); err != nil {
		return "", fmt.Errorf("store state: %w", err)
	}

	return token, nil
}

// Resume redeems a callback state token. It returns the registration-key
// claim captured at Begin. A state can be redeemed once; an unknown,
// expired, or wrong-provider state is ErrInvalidState.
func (s *LinkService) Resume(ctx context.Context, providerID, stateToken string) (string, error) {
	if stateToken == "" {
		return "", ErrInvalidState
	}

	state, err := s.Store.AuthStates().ConsumeAuthStateByHash(ctx, cryptox.FingerprintToken(stateToken))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidState
		}
		return "", fmt.Errorf("consume state: %w", err)
	}

	if state.Provider != providerID {
		return "", ErrInvalidState
	}
	return state.RegKeyClaim, nil
}

// LinkOrCreate resolves a normalized provider identity to an account.
//
// An already-linked identity refreshes the stored profile and provider
// tokens, writing only when something actually changed, so an identical
// second callback is a no-op. A first-time identity creates the account,
// subject to the registration key gate. Creation races on external_id
// resolve to the winner row and fall through to the refresh path.
func (s *LinkService) LinkOrCreate(ctx context.Context, identity provider.Identity, regKeyClaim string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	var user domain.User

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		existing, err := tx.Users().GetUserByExternalID(ctx, identity.ProviderUserID)
		if err == nil {
			user, err = s.refresh(ctx, tx, existing, identity)
			return err
		}
		if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("lookup identity: %w", err)
		}

		if err := checkRegisterKey(s.RegistrationKey, regKeyClaim); err != nil {
			// An absent claim reads as a mismatch on this path; the
			// missing/mismatch distinction belongs to the local
			// registration form.
			if errors.Is(err, ErrRegisterKeyMissing) {
				return ErrRegisterKeyMismatch
			}
			return err
		}

		candidate := domain.User{
			ID:           idx.New().String(),
			ExternalID:   &identity.ProviderUserID,
			Profile:      identity.Profile,
			AccessToken:  identity.AccessToken,
			RefreshToken: identity.RefreshToken,
			DeleteToken:  cryptox.MustGenerateToken(cryptox.TokenSize128),
		}

		if err := tx.Users().CreateUser(ctx, candidate); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				// Concurrent first sign-in; the winner's row is the
				// account, so treat this as the refresh path.
				winner, rerr := tx.Users().GetUserByExternalID(ctx, identity.ProviderUserID)
				if rerr != nil {
					return fmt.Errorf("re-read after conflict: %w", rerr)
				}
				user, err = s.refresh(ctx, tx, winner, identity)
				return err
			}
			return fmt.Errorf("create user: %w", err)
		}

		l.Info("external account created",
			slog.String("user_id", candidate.ID),
			slog.String("external_id", identity.ProviderUserID),
		)
		user = candidate
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// refresh diffs the stored profile and provider tokens against the
// incoming identity and writes once only when something changed. The
// provider owns the profile of a linked account, so the incoming one
// replaces the stored one wholesale, cleared fields included.
func (s *LinkService) refresh(ctx context.Context, tx store.Tx, user domain.User, identity provider.Identity) (domain.User, error) {
	changed := !identity.Profile.Equal(user.Profile) ||
		!strPtrEqual(user.AccessToken, identity.AccessToken) ||
		!strPtrEqual(user.RefreshToken, identity.RefreshToken)
	if !changed {
		return user, nil
	}

	if err := tx.Users().UpdateExternalTokens(ctx, user.ID, identity.Profile, identity.AccessToken, identity.RefreshToken); err != nil {
		return domain.User{}, fmt.Errorf("refresh identity: %w", err)
	}

	user.Profile = identity.Profile
	user.AccessToken = identity.AccessToken
	user.RefreshToken = identity.RefreshToken
	return user, nil
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
