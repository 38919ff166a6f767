package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/nclabhq/notelab/internal/notelab/domain"
)

const googleID = "google"

type googleAdapter struct {
	conf        *oauth2.Config
	httpClient  *http.Client
	userinfoURL string
}

// NewGoogle creates the Google identity adapter.
func NewGoogle(clientID, clientSecret, redirectURL string) Adapter {
	return &googleAdapter{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		userinfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
	}
}

func (a *googleAdapter) ID() string { return googleID }

func (a *googleAdapter) AuthCodeURL(state string) string {
	return a.conf.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (a *googleAdapter) Exchange(ctx context.Context, code string) (Identity, error) {
	tok, err := a.conf.Exchange(ctx, code)
	if err != nil {
		return Identity{}, ErrInvalidCode
	}

	u, err := a.fetchUser(ctx, tok.AccessToken)
	if err != nil {
		return Identity{}, fmt.Errorf("fetch google user: %w", err)
	}

	identity := Identity{
		ProviderUserID: qualify(googleID, u.ID),
		Profile: domain.Profile{
			DisplayName: u.Name,
			PhotoURL:    u.Picture,
		},
		AccessToken: &tok.AccessToken,
	}
	if tok.RefreshToken != "" {
		identity.RefreshToken = &tok.RefreshToken
	}
	return identity, nil
}

func (a *googleAdapter) fetchUser(ctx context.Context, accessToken string) (*gUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.userinfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google api returned status %d", resp.StatusCode)
	}

	var user gUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

type gUser struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

var _ Adapter = (*googleAdapter)(nil)
