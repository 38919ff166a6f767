package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nclabhq/notelab/internal/notelab/domain"
	"github.com/nclabhq/notelab/internal/notelab/store"
	"github.com/nclabhq/notelab/pkg/idx"
)

func seedNote(t *testing.T, st store.Store, ownerID, title, content, permission string, lastChange *time.Time) domain.Note {
	t.Helper()

	note := domain.Note{
		ID:           idx.New().String(),
		OwnerID:      ownerID,
		Title:        title,
		Content:      content,
		Permission:   permission,
		LastChangeAt: lastChange,
	}
	require.NoError(t, st.Notes().CreateNote(context.Background(), note))
	return note
}

func TestNotesService_ListOwn(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	auth := &AuthService{Store: st, AllowEmailRegister: true}
	owner, _, err := auth.Register(ctx, RegisterParams{Email: "writer@example.com", Password: "pw-pw-pw"})
	require.NoError(t, err)
	other, _, err := auth.Register(ctx, RegisterParams{Email: "other@example.com", Password: "pw-pw-pw"})
	require.NoError(t, err)

	recent := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	seedNote(t, st, owner.ID, "Old", "tags: go, notes\nbody", domain.PermissionPrivate, nil)
	seedNote(t, st, owner.ID, "Fresh", "no header here", domain.PermissionEditable, &recent)
	seedNote(t, st, other.ID, "Not mine", "", domain.PermissionFreely, nil)

	svc := &NotesService{Store: st}

	entries, err := svc.ListOwn(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest change first; entries carry parsed tags.
	require.Equal(t, "Fresh", entries[0].Title)
	require.Empty(t, entries[0].Tags)
	require.Equal(t, "Old", entries[1].Title)
	require.Equal(t, []string{"go", "notes"}, entries[1].Tags)
}

func TestNotesService_ListShared(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	auth := &AuthService{Store: st, AllowEmailRegister: true}
	named, _, err := auth.Register(ctx, RegisterParams{
		Email: "named@example.com", Password: "pw-pw-pw", DisplayName: "Named Writer",
	})
	require.NoError(t, err)
	anon, _, err := auth.Register(ctx, RegisterParams{Email: "anon@example.com", Password: "pw-pw-pw"})
	require.NoError(t, err)

	seedNote(t, st, named.ID, "Public", "tags: shared\n", domain.PermissionFreely, nil)
	seedNote(t, st, named.ID, "Hidden", "", domain.PermissionPrivate, nil)
	seedNote(t, st, anon.ID, "Also public", "", domain.PermissionLimited, nil)

	svc := &NotesService{Store: st}

	entries, err := svc.ListShared(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byTitle := make(map[string]SharedNoteEntry, len(entries))
	for _, e := range entries {
		byTitle[e.Title] = e
	}

	require.NotContains(t, byTitle, "Hidden")
	require.Equal(t, "Named Writer", byTitle["Public"].OwnerName)
	require.Equal(t, []string{"shared"}, byTitle["Public"].Tags)

	// Owners with no display name fall back to their email.
	require.Equal(t, "anon@example.com", byTitle["Also public"].OwnerName)
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"no header", "just a note\nwith lines", nil},
		{"simple list", "tags: go, http, sqlite\nbody", []string{"go", "http", "sqlite"}},
		{"whitespace trimmed", "tags:  a ,\tb , c \n", []string{"a", "b", "c"}},
		{"duplicates collapsed", "tags: a, b, a, c, b", []string{"a", "b", "c"}},
		{"empty entries skipped", "tags: a,, ,b", []string{"a", "b"}},
		{"only first header counts", "tags: first\ntags: second", []string{"first"}},
		{"header after content", "title line\ntags: late", []string{"late"}},
		{"crlf line endings", "tags: a, b\r\nbody", []string{"a", "b"}},
		{"empty content", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseTags(tt.content)
			if tt.want == nil {
				require.Empty(t, got)
				return
			}
			require.Equal(t, tt.want, got)
		})
	}
}
