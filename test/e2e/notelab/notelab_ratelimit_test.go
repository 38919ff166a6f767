package notelab_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/nclabhq/notelab/pkg/notelabsdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitLoginEndpoint verifies that the login endpoint is rate
// limited. It has strict limits (5 req/min) to slow down credential
// stuffing.
func TestRateLimitLoginEndpoint(t *testing.T) {
	baseURL, cleanup := setupNotelabContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := notelabsdk.NewSDKClient(baseURL)
	ctx := context.Background()

	// Make requests until we hit the rate limit (strict limit is 5 req/min)
	// We'll make 6 requests rapidly and expect the 6th to be rate limited
	var lastErr error
	for i := range 6 {
		_, err := client.Login(ctx, "nobody@example.com", "wrong-password")
		if i < 5 {
			// First 5 should fail with invalid credentials, not rate limit
			assertAPIError(t, err, http.StatusUnauthorized, notelabsdk.ErrorCodeInvalidCredentials)
		} else {
			lastErr = err
		}
	}

	assertAPIError(t, lastErr, http.StatusTooManyRequests, notelabsdk.ErrorCodeRateLimitExceeded)
}

// TestRateLimitRegisterEndpoint verifies that the register endpoint is
// rate limited to slow down bulk account creation.
func TestRateLimitRegisterEndpoint(t *testing.T) {
	baseURL, cleanup := setupNotelabContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := notelabsdk.NewSDKClient(baseURL)
	ctx := context.Background()

	// Invalid input still counts against the limit.
	var lastErr error
	for i := range 6 {
		_, err := client.Register(ctx, notelabsdk.RegisterParams{
			Email:    "not-an-email",
			Password: "whatever",
		})
		if i < 5 {
			assertAPIError(t, err, http.StatusBadRequest, notelabsdk.ErrorCodeInvalidEmail)
		} else {
			lastErr = err
		}
	}

	assertAPIError(t, lastErr, http.StatusTooManyRequests, notelabsdk.ErrorCodeRateLimitExceeded)
}

// TestRateLimitDoesNotAffectHealth verifies monitoring endpoints stay
// reachable while another endpoint is saturated.
func TestRateLimitDoesNotAffectHealth(t *testing.T) {
	baseURL, cleanup := setupNotelabContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := notelabsdk.NewSDKClient(baseURL)
	ctx := context.Background()

	for range 6 {
		_, _ = client.Login(ctx, "nobody@example.com", "wrong-password")
	}

	health, err := client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
}
