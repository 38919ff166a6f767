package notelabsdk

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// ErrSessionExpired is returned when the session token has expired.
// Sessions do not refresh; log in again to obtain a new one.
var ErrSessionExpired = errors.New("notelabsdk: session expired")

// Session provides authenticated operations against the notelab
// service. Sessions are safe for concurrent use.
type Session struct {
	client *SDKClient

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
	user      UserResponse
}

func newSession(c *SDKClient, resp SessionResponse) *Session {
	expiresAt := time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	expiresAt = expiresAt.Add(-30 * time.Second) // expiry buffer

	return &Session{
		client:    c,
		token:     resp.Token,
		expiresAt: expiresAt,
		user:      resp.User,
	}
}

// Token returns the raw session token, e.g. for storage.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the account snapshot captured when the session was
// created or last refreshed via Me.
func (s *Session) User() UserResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) validToken() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.expiresAt.IsZero() && time.Now().After(s.expiresAt) {
		return "", ErrSessionExpired
	}
	return s.token, nil
}

// Me fetches the current account and updates the cached snapshot.
func (s *Session) Me(ctx context.Context) (UserResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/me", nil, nil)
	if err != nil {
		return UserResponse{}, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return UserResponse{}, err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	return user, nil
}

// UpdateProfile changes the display name, photo URL or password of a
// local account. Nil fields are left unchanged.
func (s *Session) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (UserResponse, error) {
	form := url.Values{}
	if req.DisplayName != nil {
		form.Set("display_name", *req.DisplayName)
	}
	if req.PhotoURL != nil {
		form.Set("photo_url", *req.PhotoURL)
	}
	if req.Password != nil {
		form.Set("password", *req.Password)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/me/profile",
		strings.NewReader(form.Encode()),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
	)
	if err != nil {
		return UserResponse{}, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return UserResponse{}, err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	return user, nil
}

// SelfDelete permanently removes the account. The delete token from the
// account response authorizes the deletion; a session alone does not.
func (s *Session) SelfDelete(ctx context.Context, deleteToken string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete,
		"/v1/me/"+url.PathEscape(deleteToken), nil, nil)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}

// MyNotes lists the account's own notes, newest change first.
func (s *Session) MyNotes(ctx context.Context) ([]NoteEntry, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/notes/mine", nil, nil)
	if err != nil {
		return nil, err
	}

	var notesResp NotesResponse
	if err := decodeJSON(resp, &notesResp, http.StatusOK); err != nil {
		return nil, err
	}

	return notesResp.Notes, nil
}
