package notelabsdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// RegisterParams are the inputs for email registration.
type RegisterParams struct {
	Email       string
	Password    string
	DisplayName string
	PhotoURL    string

	// RegKey is the deployment's registration key, when one is required.
	RegKey string
}

// Register creates a local account and returns an authenticated session
// for it.
func (c *SDKClient) Register(ctx context.Context, p RegisterParams) (*Session, error) {
	form := url.Values{}
	form.Set("email", p.Email)
	form.Set("password", p.Password)
	if p.DisplayName != "" {
		form.Set("display_name", p.DisplayName)
	}
	if p.PhotoURL != "" {
		form.Set("photo_url", p.PhotoURL)
	}
	if p.RegKey != "" {
		form.Set("regkey", p.RegKey)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/register",
		strings.NewReader(form.Encode()),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
	)
	if err != nil {
		return nil, err
	}

	var sessionResp SessionResponse
	if err := decodeJSON(resp, &sessionResp, http.StatusCreated); err != nil {
		return nil, err
	}

	return newSession(c, sessionResp), nil
}

// Login authenticates an email/password pair and returns a session.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/login",
		strings.NewReader(form.Encode()),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
	)
	if err != nil {
		return nil, err
	}

	var sessionResp SessionResponse
	if err := decodeJSON(resp, &sessionResp, http.StatusOK); err != nil {
		return nil, err
	}

	return newSession(c, sessionResp), nil
}
