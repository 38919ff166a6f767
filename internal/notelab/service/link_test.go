package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nclabhq/notelab/internal/notelab/domain"
	"github.com/nclabhq/notelab/internal/notelab/provider"
)

func identityFixture() provider.Identity {
	return provider.Identity{
		ProviderUserID: "github:1234",
		Profile: domain.Profile{
			DisplayName: "Octo Cat",
			PhotoURL:    "https://avatars.example.com/1234",
		},
		AccessToken:  strPtr("gho_access"),
		RefreshToken: strPtr("gho_refresh"),
	}
}

func TestLinkService_StateRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := &LinkService{Store: newTestStore(t)}

	t.Run("begin then resume", func(t *testing.T) {
		token, err := svc.Begin(ctx, "github", "the-claim")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claim, err := svc.Resume(ctx, "github", token)
		require.NoError(t, err)
		require.Equal(t, "the-claim", claim)
	})

	t.Run("state is single use", func(t *testing.T) {
		token, err := svc.Begin(ctx, "github", "")
		require.NoError(t, err)

		_, err = svc.Resume(ctx, "github", token)
		require.NoError(t, err)

		_, err = svc.Resume(ctx, "github", token)
		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("provider must match", func(t *testing.T) {
		token, err := svc.Begin(ctx, "github", "")
		require.NoError(t, err)

		_, err = svc.Resume(ctx, "google", token)
		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("unknown and empty tokens", func(t *testing.T) {
		_, err := svc.Resume(ctx, "github", "never-issued")
		require.ErrorIs(t, err, ErrInvalidState)

		_, err = svc.Resume(ctx, "github", "")
		require.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("expired state", func(t *testing.T) {
		tiny := &LinkService{Store: svc.Store, StateTTL: time.Millisecond}
		token, err := tiny.Begin(ctx, "github", "")
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)

		_, err = tiny.Resume(ctx, "github", token)
		require.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestLinkService_LinkOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("first sign-in creates the account", func(t *testing.T) {
		svc := &LinkService{Store: newTestStore(t)}

		user, err := svc.LinkOrCreate(ctx, identityFixture(), "")
		require.NoError(t, err)
		require.Equal(t, "github:1234", *user.ExternalID)
		require.Equal(t, "Octo Cat", user.Profile.DisplayName)
		require.Equal(t, "gho_access", *user.AccessToken)
		require.Nil(t, user.Email)
		require.Nil(t, user.PasswordHash)
		require.NotEmpty(t, user.DeleteToken)
	})

	t.Run("identical second callback is a no-op", func(t *testing.T) {
		svc := &LinkService{Store: newTestStore(t)}

		first, err := svc.LinkOrCreate(ctx, identityFixture(), "")
		require.NoError(t, err)

		stored, err := svc.Store.Users().GetUserByID(ctx, first.ID)
		require.NoError(t, err)

		second, err := svc.LinkOrCreate(ctx, identityFixture(), "")
		require.NoError(t, err)
		require.Equal(t, first.ID, second.ID)

		after, err := svc.Store.Users().GetUserByID(ctx, first.ID)
		require.NoError(t, err)
		require.Equal(t, stored.UpdatedAt, after.UpdatedAt)
	})

	t.Run("changed upstream profile refreshes the account", func(t *testing.T) {
		svc := &LinkService{Store: newTestStore(t)}

		first, err := svc.LinkOrCreate(ctx, identityFixture(), "")
		require.NoError(t, err)

		changed := identityFixture()
		changed.Profile.DisplayName = "Octo Renamed"
		changed.AccessToken = strPtr("gho_rotated")

		user, err := svc.LinkOrCreate(ctx, changed, "")
		require.NoError(t, err)
		require.Equal(t, first.ID, user.ID)
		require.Equal(t, "Octo Renamed", user.Profile.DisplayName)
		require.Equal(t, "gho_rotated", *user.AccessToken)

		stored, err := svc.Store.Users().GetUserByID(ctx, first.ID)
		require.NoError(t, err)
		require.Equal(t, "Octo Renamed", stored.Profile.DisplayName)
	})

	t.Run("cleared upstream field is persisted", func(t *testing.T) {
		svc := &LinkService{Store: newTestStore(t)}

		first, err := svc.LinkOrCreate(ctx, identityFixture(), "")
		require.NoError(t, err)

		// The provider removed the avatar; the stored profile follows.
		cleared := identityFixture()
		cleared.Profile.PhotoURL = ""

		user, err := svc.LinkOrCreate(ctx, cleared, "")
		require.NoError(t, err)
		require.Equal(t, first.ID, user.ID)
		require.Equal(t, "Octo Cat", user.Profile.DisplayName)
		require.Empty(t, user.Profile.PhotoURL)

		stored, err := svc.Store.Users().GetUserByID(ctx, first.ID)
		require.NoError(t, err)
		require.Empty(t, stored.Profile.PhotoURL)
	})

	t.Run("registration key gates creation but not sign-in", func(t *testing.T) {
		open := &LinkService{Store: newTestStore(t)}
		_, err := open.LinkOrCreate(ctx, identityFixture(), "")
		require.NoError(t, err)

		gated := &LinkService{Store: newTestStore(t), RegistrationKey: "secret"}

		// An absent claim is indistinguishable from a wrong one here.
		_, err = gated.LinkOrCreate(ctx, identityFixture(), "")
		require.ErrorIs(t, err, ErrRegisterKeyMismatch)

		_, err = gated.LinkOrCreate(ctx, identityFixture(), "wrong")
		require.ErrorIs(t, err, ErrRegisterKeyMismatch)

		user, err := gated.LinkOrCreate(ctx, identityFixture(), "secret")
		require.NoError(t, err)

		// The account exists now; returning without the key still works.
		again, err := gated.LinkOrCreate(ctx, identityFixture(), "")
		require.NoError(t, err)
		require.Equal(t, user.ID, again.ID)
	})
}
