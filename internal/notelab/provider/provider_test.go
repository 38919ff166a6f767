package provider_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nclabhq/notelab/internal/notelab/provider"
)

func TestRegistry(t *testing.T) {
	reg := provider.NewRegistry(
		provider.NewGitHub("id", "secret", "https://example.com/cb"),
		provider.NewGoogle("id", "secret", "https://example.com/cb"),
	)

	require.Equal(t, []string{"github", "google"}, reg.IDs())

	gh, err := reg.Get("github")
	require.NoError(t, err)
	require.Equal(t, "github", gh.ID())

	_, err = reg.Get("gitlab")
	require.ErrorIs(t, err, provider.ErrUnknownProvider)
}

func TestAuthCodeURL_CarriesState(t *testing.T) {
	gh := provider.NewGitHub("client-id", "secret", "https://example.com/cb")

	u := gh.AuthCodeURL("state-token-xyz")
	require.Contains(t, u, "github.com")
	require.Contains(t, u, "state=state-token-xyz")
	require.Contains(t, u, "client_id=client-id")
	require.True(t, strings.HasPrefix(u, "https://"))
}
