package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nclabhq/notelab/internal/notelab/store"
)

// NoteEntry is one row of a note listing.
type NoteEntry struct {
	NoteID string
	Title  string
	Time   time.Time
	Tags   []string
}

// SharedNoteEntry adds the owner's display name for the public listing.
type SharedNoteEntry struct {
	NoteEntry
	OwnerName string
}

// NotesService produces the note listings shown on the home and explore
// pages. The editing engine itself lives elsewhere.
type NotesService struct {
	Store store.Store
}

// ListOwn returns every note owned by the user, newest change first.
func (s *NotesService) ListOwn(ctx context.Context, userID string) ([]NoteEntry, error) {
	notes, err := s.Store.Notes().ListNotesByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list own notes: %w", err)
	}

	entries := make([]NoteEntry, 0, len(notes))
	for _, n := range notes {
		entries = append(entries, NoteEntry{
			NoteID: n.ID,
			Title:  n.Title,
			Time:   n.ListTime(),
			Tags:   parseTags(n.Content),
		})
	}
	return entries, nil
}

// ListShared returns every non-private note across all owners.
func (s *NotesService) ListShared(ctx context.Context) ([]SharedNoteEntry, error) {
	notes, err := s.Store.Notes().ListVisibleNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shared notes: %w", err)
	}

	entries := make([]SharedNoteEntry, 0, len(notes))
	for _, n := range notes {
		entries = append(entries, SharedNoteEntry{
			NoteEntry: NoteEntry{
				NoteID: n.Note.ID,
				Title:  n.Note.Title,
				Time:   n.Note.ListTime(),
				Tags:   parseTags(n.Note.Content),
			},
			OwnerName: n.OwnerName,
		})
	}
	return entries, nil
}

// parseTags extracts the comma-separated `tags:` header line from note
// content. Only the first such line counts; tags are trimmed and
// deduplicated, preserving first-seen order.
func parseTags(content string) []string {
	for line := range strings.Lines(content) {
		line = strings.TrimRight(line, "\r\n")
		rest, ok := strings.CutPrefix(line, "tags:")
		if !ok {
			continue
		}

		var tags []string
		seen := make(map[string]struct{})
		for _, tag := range strings.Split(rest, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
		return tags
	}
	return nil
}
