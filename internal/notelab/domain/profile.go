package domain

// Profile holds the user-facing presentation fields of an account.
type Profile struct {
	DisplayName string
	PhotoURL    string
}

// Merge returns a profile where each supplied field replaces the
// existing value. Absent or empty fields keep what is already there; an
// existing value is never clobbered to the empty string.
func (p Profile) Merge(displayName, photoURL *string) Profile {
	out := p
	if displayName != nil && *displayName != "" {
		out.DisplayName = *displayName
	}
	if photoURL != nil && *photoURL != "" {
		out.PhotoURL = *photoURL
	}
	return out
}

// Equal reports whether two profiles carry the same values.
func (p Profile) Equal(other Profile) bool {
	return p.DisplayName == other.DisplayName && p.PhotoURL == other.PhotoURL
}
