package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nclabhq/notelab/internal/notelab/domain"
	"github.com/nclabhq/notelab/internal/notelab/store"
	"github.com/nclabhq/notelab/pkg/cryptox"
	"github.com/nclabhq/notelab/pkg/slogx"
)

var (
	ErrExternalProfile    = errors.New("external_profile")
	ErrNothingToUpdate    = errors.New("nothing_to_update")
	ErrInvalidDeleteToken = errors.New("invalid_delete_token")
)

// AccountService covers the signed-in user's own account operations.
type AccountService struct {
	Store store.Store
}

// Me returns the account for the authenticated user.
func (s *AccountService) Me(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// UpdateProfile merge-updates the profile of a local account and
// optionally changes the password. Externally-linked accounts get their
// profile from the provider and cannot edit it here.
func (s *AccountService) UpdateProfile(
	ctx context.Context,
	userID string,
	password, displayName, photoURL *string,
) (domain.User, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	if !user.IsLocal() {
		return domain.User{}, ErrExternalProfile
	}

	merged := user.Profile.Merge(displayName, photoURL)
	profileChanged := !merged.Equal(user.Profile)
	passwordChanged := password != nil && *password != ""

	if !profileChanged && !passwordChanged {
		return domain.User{}, ErrNothingToUpdate
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if profileChanged {
			if err := tx.Users().UpdateProfile(ctx, userID, merged); err != nil {
				return fmt.Errorf("update profile: %w", err)
			}
		}
		if passwordChanged {
			hash, err := cryptox.HashPassword(*password)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			if err := tx.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
				return fmt.Errorf("update password: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	l.Info("profile updated", slog.String("user_id", userID))

	user.Profile = merged
	return user, nil
}

// SelfDelete removes the account, but only when the caller presents the
// delete token minted at account creation. The token is a capability;
// possessing a valid session alone is not enough.
func (s *AccountService) SelfDelete(ctx context.Context, userID, token string) error {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if token == "" || !cryptox.ConstantTimeEquals(user.DeleteToken, token) {
		return ErrInvalidDeleteToken
	}

	if err := s.Store.Users().DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	l.Info("account deleted", slog.String("user_id", userID))
	return nil
}
