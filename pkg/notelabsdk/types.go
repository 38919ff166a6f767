package notelabsdk

import (
	"time"

	"github.com/nclabhq/notelab/pkg/jwtx"
)

// ErrorResponse is the standard error body returned by every endpoint.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "invalid_credentials")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// SessionResponse is returned by login, registration and the OAuth
// callback. The token authenticates subsequent requests as a Bearer
// token.
type SessionResponse struct {
	// Token is the signed session JWT
	Token string `json:"token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the session token
	ExpiresIn int `json:"expires_in"`

	// User is the account the session belongs to
	User UserResponse `json:"user"`
}

// UserResponse describes an account.
type UserResponse struct {
	// UserID is the account's unique identifier
	UserID string `json:"user_id"`

	// Email is set for locally-registered accounts only
	Email string `json:"email,omitempty"`

	// Provider is "email" for local accounts, otherwise the external
	// provider id (e.g., "github")
	Provider string `json:"provider"`

	// DisplayName is the profile display name, falling back to the email
	DisplayName string `json:"display_name"`

	// PhotoURL is the profile picture URL, if any
	PhotoURL string `json:"photo_url,omitempty"`

	// DeleteToken authorizes self-deletion of this account. Only
	// returned to the account owner.
	DeleteToken string `json:"delete_token,omitempty"`
}

// UpdateProfileRequest carries a profile update. Nil fields are left
// unchanged; empty strings never clear an existing value.
type UpdateProfileRequest struct {
	DisplayName *string
	PhotoURL    *string
	Password    *string
}

// NoteEntry is one row of a note listing.
type NoteEntry struct {
	// NoteID identifies the note
	NoteID string `json:"note_id"`

	// Title is the note title
	Title string `json:"title"`

	// Time is the last change time, or creation time for untouched notes
	Time time.Time `json:"time"`

	// Tags are parsed from the note's tags header line
	Tags []string `json:"tags,omitempty"`

	// OwnerName is the owner's display name. Only set in shared listings.
	OwnerName string `json:"owner_name,omitempty"`
}

// NotesResponse is a note listing.
type NotesResponse struct {
	Notes []NoteEntry `json:"notes"`
}

// JWKSResponse contains the public keys used to verify session tokens.
type JWKSResponse jwtx.JWKS

// HealthChecks reports per-dependency status in readiness responses.
type HealthChecks struct {
	Database string `json:"database,omitempty"`
	Signer   string `json:"signer,omitempty"`
}

// HealthResponse is returned by the health check endpoints.
type HealthResponse struct {
	// Status is "ok" or "degraded"
	Status string `json:"status"`

	// Uptime is how long the service has been running
	Uptime string `json:"uptime"`

	// Version is the build version
	Version string `json:"version"`

	// Checks holds per-dependency results (readiness only)
	Checks *HealthChecks `json:"checks,omitempty"`
}
