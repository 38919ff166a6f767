package store

import (
	"context"
	"errors"

	"github.com/nclabhq/notelab/internal/notelab/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. It exposes sub-repositories to keep concerns
// tidy and testable, and to stop callers from accidentally opening
// transactions within transactions.
type Store interface {
	Users() Users
	Notes() Notes
	AuthStates() AuthStates

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g.,
	// find-or-create during registration). The caller MUST call Commit()
	// or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction. If fn returns an
	// error, the transaction is rolled back; otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during password login. Email must already be
	// normalized (lowercase).
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByExternalID looks up an externally-linked account by its
	// provider-qualified id.
	GetUserByExternalID(ctx context.Context, externalID string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// A duplicate email or external_id returns ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateProfile replaces the profile fields and bumps updated_at.
	UpdateProfile(ctx context.Context, userID string, p domain.Profile) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// UpdateExternalTokens replaces the stored provider tokens and the
	// profile in one write, bumping updated_at.
	UpdateExternalTokens(ctx context.Context, userID string, p domain.Profile, accessToken, refreshToken *string) error

	// DeleteUser cascades to notes (per schema).
	DeleteUser(ctx context.Context, userID string) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Notes interface {
	// CreateNote inserts a note row (id is ULID).
	CreateNote(ctx context.Context, n domain.Note) error

	// ListNotesByOwner returns every note owned by the user, newest
	// change first.
	ListNotesByOwner(ctx context.Context, ownerID string) ([]domain.Note, error)

	// ListVisibleNotes returns every note whose permission is not
	// private, across all owners, newest change first, with the owner's
	// display name joined in.
	ListVisibleNotes(ctx context.Context) ([]NoteWithOwner, error)

	// CountNotes returns the total number of notes.
	CountNotes(ctx context.Context) (int64, error)
}

// NoteWithOwner is a note joined with its owner's display name, for the
// shared listing.
type NoteWithOwner struct {
	Note      domain.Note
	OwnerName string
}

type AuthStates interface {
	// CreateAuthState stores a fingerprinted single-use OAuth state.
	CreateAuthState(ctx context.Context, s domain.AuthState) error

	// ConsumeAuthStateByHash fetches and deletes the state in one step so
	// it can only ever be redeemed once. Expired states are not returned.
	ConsumeAuthStateByHash(ctx context.Context, tokenHash string) (domain.AuthState, error)

	// DeleteExpiredAuthStates is housekeeping.
	DeleteExpiredAuthStates(ctx context.Context) error
}
