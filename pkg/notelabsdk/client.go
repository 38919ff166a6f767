package notelabsdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the notelab service. It provides access to
// unauthenticated operations and creates authenticated Sessions via
// Login or Register.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new notelab client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewSessionFromToken creates an authenticated session from an existing
// session token, e.g. one stored from a previous login.
func (c *SDKClient) NewSessionFromToken(token string, expiresIn int) *Session {
	expiresAt := time.Now().Add(time.Duration(expiresIn) * time.Second)
	expiresAt = expiresAt.Add(-30 * time.Second) // expiry buffer

	return &Session{
		client:    c,
		token:     token,
		expiresAt: expiresAt,
	}
}
