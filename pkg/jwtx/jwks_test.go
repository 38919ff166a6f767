package jwtx_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nclabhq/notelab/pkg/jwtx"
)

func TestJWKS_PublishAndReset(t *testing.T) {
	signer := newTestSigner(t, "jwks-key")

	keys := jwtx.NewKeySet()
	require.False(t, keys.IsReady())
	require.NoError(t, keys.AddSigner(signer))
	require.True(t, keys.IsReady())

	jwks := keys.PublicJWKS()
	require.Len(t, jwks.Keys, 1)
	require.Equal(t, "OKP", jwks.Keys[0].Kty)
	require.Equal(t, "Ed25519", jwks.Keys[0].Crv)
	require.Equal(t, "jwks-key", jwks.Keys[0].Kid)

	// Simulate a client fetching the JWKS over the wire.
	raw, err := json.Marshal(jwks)
	require.NoError(t, err)

	var fetched jwtx.JWKS
	require.NoError(t, json.Unmarshal(raw, &fetched))

	clientKeys := jwtx.NewKeySet()
	require.NoError(t, clientKeys.ResetFromJWKS(fetched))

	claims := jwtx.NewSessionClaims("u", "s", time.Hour, "notelab", nil, "", "", time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier := jwtx.NewVerifierEdDSA(clientKeys, "notelab", nil)
	_, err = verifier.Verify(token)
	require.NoError(t, err)
}

func TestJWK_PEM(t *testing.T) {
	signer := newTestSigner(t, "pem-key")

	pemStr, err := signer.PublicJWK().PEM()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(pemStr, "-----BEGIN PUBLIC KEY-----"))
}

func TestJWK_PEM_UnsupportedKty(t *testing.T) {
	_, err := jwtx.JWK{Kty: "RSA"}.PEM()
	require.Error(t, err)
}
