package notelab_test

import (
	"testing"

	"github.com/nclabhq/notelab/pkg/notelabsdk"
	"github.com/stretchr/testify/require"
)

// TestLivezEndpoint verifies the liveness check endpoint.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupNotelabContainer(t)
	defer cleanup()

	client := notelabsdk.NewSDKClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)
}

// TestReadyzEndpoint verifies the readiness check endpoint, including
// the database and signer checks.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupNotelabContainer(t)
	defer cleanup()

	client := notelabsdk.NewSDKClient(baseURL)

	health, err := client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Signer)
}

// TestJWKSEndpoint verifies the session verification keys are published.
func TestJWKSEndpoint(t *testing.T) {
	baseURL, cleanup := setupNotelabContainer(t)
	defer cleanup()

	client := notelabsdk.NewSDKClient(baseURL)

	jwks, err := client.GetJWKS(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, jwks.Keys, "JWKS should contain at least one key")

	for _, key := range jwks.Keys {
		require.Equal(t, "OKP", key.Kty)
		require.Equal(t, "EdDSA", key.Alg)
		require.Equal(t, "Ed25519", key.Crv)
		require.NotEmpty(t, key.Kid)
		require.NotEmpty(t, key.X)
	}
}
