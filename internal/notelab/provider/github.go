package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"

	"github.com/nclabhq/notelab/internal/notelab/domain"
)

const githubID = "github"

type githubAdapter struct {
	conf       *oauth2.Config
	httpClient *http.Client
	apiBase    string
}

// NewGitHub creates the GitHub identity adapter.
func NewGitHub(clientID, clientSecret, redirectURL string) Adapter {
	return &githubAdapter{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"read:user"},
			Endpoint:     github.Endpoint,
		},
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiBase:    "https://api.github.com",
	}
}

func (a *githubAdapter) ID() string { return githubID }

func (a *githubAdapter) AuthCodeURL(state string) string {
	return a.conf.AuthCodeURL(state)
}

func (a *githubAdapter) Exchange(ctx context.Context, code string) (Identity, error) {
	tok, err := a.conf.Exchange(ctx, code)
	if err != nil {
		// Treat exchange failures as an invalid code for the core flow.
		return Identity{}, ErrInvalidCode
	}

	u, err := a.fetchUser(ctx, tok.AccessToken)
	if err != nil {
		return Identity{}, fmt.Errorf("fetch github user: %w", err)
	}

	displayName := u.Name
	if displayName == "" {
		displayName = u.Login
	}

	identity := Identity{
		ProviderUserID: qualify(githubID, strconv.FormatInt(u.ID, 10)),
		Profile: domain.Profile{
			DisplayName: displayName,
			PhotoURL:    u.AvatarURL,
		},
		AccessToken: &tok.AccessToken,
	}
	if tok.RefreshToken != "" {
		identity.RefreshToken = &tok.RefreshToken
	}
	return identity, nil
}

func (a *githubAdapter) fetchUser(ctx context.Context, accessToken string) (*ghUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.apiBase+"/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github api returned status %d", resp.StatusCode)
	}

	var user ghUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

type ghUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

var _ Adapter = (*githubAdapter)(nil)
