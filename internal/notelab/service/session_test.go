package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nclabhq/notelab/internal/notelab/domain"
	"github.com/nclabhq/notelab/pkg/cryptox"
	"github.com/nclabhq/notelab/pkg/jwtx"
)

func TestSessionService_Mint(t *testing.T) {
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA("session-test", pemKey)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))
	verifier := jwtx.NewVerifierEdDSA(keys, "https://notes.example.com", []string{"https://notes.example.com"})

	svc := &SessionService{
		Signer: signer,
		Issuer: "https://notes.example.com",
		TTL:    time.Hour,
	}

	email := "sess@example.com"
	user := domain.User{
		ID:    "user-1",
		Email: &email,
		Profile: domain.Profile{
			DisplayName: "Sess Ion",
			PhotoURL:    "https://img.example.com/s",
		},
	}

	token, err := svc.Mint(user)
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "Sess Ion", claims.Name)
	require.Equal(t, "https://img.example.com/s", claims.Picture)
	require.NotEmpty(t, claims.SID)
	require.NoError(t, claims.ValidateExpiry())

	t.Run("session ids are unique per mint", func(t *testing.T) {
		second, err := svc.Mint(user)
		require.NoError(t, err)

		other, err := verifier.Verify(second)
		require.NoError(t, err)
		require.NotEqual(t, claims.SID, other.SID)
	})

	t.Run("display name falls back to email", func(t *testing.T) {
		plain := domain.User{ID: "user-2", Email: &email}

		token, err := svc.Mint(plain)
		require.NoError(t, err)

		claims, err := verifier.Verify(token)
		require.NoError(t, err)
		require.Equal(t, email, claims.Name)
	})
}
