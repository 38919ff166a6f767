package notelab_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/nclabhq/notelab/pkg/notelabsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for notelab end-to-end tests.
 * This includes container setup, service operations, and assertions.
 */

const (
	testImageName = "notelab-test:latest"

	testEmail       = "alice@example.com"
	testPassword    = "CorrectHorse9!"
	testDisplayName = "Alice"

	registrationKey = "test-registration-key-12345"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building NoteLab Docker image...")

	// Build the Docker image once before all tests
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	// Run all tests
	exitCode := m.Run()

	// Clean up the Docker image after all tests complete
	fmt.Fprintf(os.Stdout, "Cleaning up NoteLab Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/notelab/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// baseEnv is the container environment shared by most setups. Rate
// limits are raised so rapid test requests do not trip the strict
// production defaults.
func baseEnv() map[string]string {
	return map[string]string{
		"NOTELAB_DATABASE_FILE":       "/notelab.db",
		"NOTELAB_PEPPER_FILE":         "/pepper",
		"NOTELAB_ISSUER":              "notelab-test",
		"ENV":                         "test",
		"LOG_LEVEL":                   "info",
		"LOG_FORMAT":                  "json",
		"RATELIMIT_STRICT_REQUESTS":   "1000",
		"RATELIMIT_STRICT_WINDOW_SEC": "60",
		"RATELIMIT_STRICT_BURST":      "1000",
		"RATELIMIT_MODERATE_REQUESTS": "1000",
		"RATELIMIT_MODERATE_BURST":    "1000",
	}
}

// startContainer starts the notelab service with the given environment
// and returns the base URL.
func startContainer(t *testing.T, env map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// setupNotelabContainer starts the service with open registration and
// relaxed rate limits.
func setupNotelabContainer(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, baseEnv())
}

// setupGatedContainer starts the service with a registration key.
func setupGatedContainer(t *testing.T) (string, func()) {
	t.Helper()
	env := baseEnv()
	env["NOTELAB_REGISTRATION_KEY"] = registrationKey
	return startContainer(t, env)
}

// setupClosedContainer starts the service with email registration off.
func setupClosedContainer(t *testing.T) (string, func()) {
	t.Helper()
	env := baseEnv()
	env["NOTELAB_ALLOW_EMAIL_REGISTER"] = "false"
	return startContainer(t, env)
}

// setupNotelabContainerWithDefaultRateLimits starts the service with
// DEFAULT rate limits. This is specifically for testing that rate
// limiting actually works; other tests use the relaxed setups.
func setupNotelabContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	env := map[string]string{
		"NOTELAB_DATABASE_FILE": "/notelab.db",
		"NOTELAB_PEPPER_FILE":   "/pepper",
		"NOTELAB_ISSUER":        "notelab-test",
		"ENV":                   "test",
		"LOG_LEVEL":             "info",
		"LOG_FORMAT":            "json",
		// NOTE: No rate limit overrides - using production defaults
	}
	return startContainer(t, env)
}

// registerTestUser registers the standard test account and returns its
// session.
func registerTestUser(t *testing.T, client *notelabsdk.SDKClient) *notelabsdk.Session {
	t.Helper()

	session, err := client.Register(t.Context(), notelabsdk.RegisterParams{
		Email:       testEmail,
		Password:    testPassword,
		DisplayName: testDisplayName,
	})
	require.NoError(t, err)
	require.NotNil(t, session)
	require.NotEmpty(t, session.Token())

	return session
}

// assertAPIError verifies that an error is an APIError with the given
// status and code.
func assertAPIError(t *testing.T, err error, statusCode int, code string) {
	t.Helper()
	require.Error(t, err)

	var apiErr *notelabsdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got: %v", err)
	require.Equal(t, statusCode, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health notelabsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
}
