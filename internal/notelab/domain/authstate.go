package domain

import "time"

// AuthState is a single-use OAuth state record. It fixes the provider
// the flow started with, carries the registration-key claim across the
// redirect, and doubles as CSRF protection for the callback.
type AuthState struct {
	ID          string
	TokenHash   string // SHA-256 fingerprint of the opaque state token
	Provider    string
	RegKeyClaim string
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

// Expired reports whether the state is past its expiry.
func (s AuthState) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
