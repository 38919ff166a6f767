package domain

import "time"

// User is a single account. Local accounts carry Email + PasswordHash;
// externally-linked accounts carry ExternalID plus the provider tokens.
// The two identities live on the same table but are independent lookup
// keys; neither implies the other.
type User struct {
	ID           string
	Email        *string // unique when present; local accounts only
	PasswordHash *string // argon2 encoded; local accounts only
	ExternalID   *string // unique when present; "<provider>:<subject>"
	Profile      Profile
	AccessToken  *string // provider access token (external accounts)
	RefreshToken *string // provider refresh token (external accounts)
	DeleteToken  string  // capability token for self-deletion
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLocal reports whether the account can authenticate with a password.
func (u User) IsLocal() bool {
	return u.Email != nil && u.PasswordHash != nil
}

// DisplayName returns the effective display name, falling back to the
// email local part for local accounts that never set one.
func (u User) DisplayName() string {
	if u.Profile.DisplayName != "" {
		return u.Profile.DisplayName
	}
	if u.Email != nil {
		return *u.Email
	}
	return ""
}
