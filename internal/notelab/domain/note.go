package domain

import "time"

// Note permission levels. Anything other than private shows up in the
// shared listing.
const (
	PermissionPrivate  = "private"
	PermissionLimited  = "limited"
	PermissionEditable = "editable"
	PermissionFreely   = "freely"
)

// Note is a stored document. Only the listing metadata matters here;
// the realtime editing engine lives elsewhere.
type Note struct {
	ID         string
	OwnerID    string
	Title      string
	Content    string
	Permission string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	// LastChangeAt is when the content last changed, as opposed to any
	// row update. Nil for notes never edited after creation.
	LastChangeAt *time.Time
}

// ListTime returns the timestamp shown in listings: last content change
// when there is one, creation time otherwise.
func (n Note) ListTime() time.Time {
	if n.LastChangeAt != nil {
		return *n.LastChangeAt
	}
	return n.CreatedAt
}
