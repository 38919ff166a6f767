package sqlite

import (
	"context"

	"github.com/nclabhq/notelab/internal/notelab/domain"
	"github.com/nclabhq/notelab/internal/notelab/store"
	"github.com/nclabhq/notelab/internal/notelab/store/drivers/sqlite/gen"
)

type notesRepo struct {
	q *gen.Queries
}

func (r *notesRepo) CreateNote(ctx context.Context, n domain.Note) error {
	return mapConflict(r.q.CreateNote(ctx, gen.CreateNoteParams{
		ID:           n.ID,
		OwnerID:      n.OwnerID,
		Title:        n.Title,
		Content:      n.Content,
		Permission:   n.Permission,
		LastchangeAt: mapOptionalTime(n.LastChangeAt),
	}))
}

func (r *notesRepo) ListNotesByOwner(ctx context.Context, ownerID string) ([]domain.Note, error) {
	rows, err := r.q.ListNotesByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	notes := make([]domain.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, mapNote(row))
	}
	return notes, nil
}

func (r *notesRepo) ListVisibleNotes(ctx context.Context) ([]store.NoteWithOwner, error) {
	rows, err := r.q.ListVisibleNotes(ctx)
	if err != nil {
		return nil, err
	}

	notes := make([]store.NoteWithOwner, 0, len(rows))
	for _, row := range rows {
		ownerName := row.OwnerDisplayName
		if ownerName == "" && row.OwnerEmail.Valid {
			ownerName = row.OwnerEmail.String
		}
		notes = append(notes, store.NoteWithOwner{
			Note: domain.Note{
				ID:           row.ID,
				OwnerID:      row.OwnerID,
				Title:        row.Title,
				Content:      row.Content,
				Permission:   row.Permission,
				LastChangeAt: mapNullTimePtr(row.LastchangeAt),
				CreatedAt:    row.CreatedAt,
				UpdatedAt:    row.UpdatedAt,
			},
			OwnerName: ownerName,
		})
	}
	return notes, nil
}

func (r *notesRepo) CountNotes(ctx context.Context) (int64, error) {
	return r.q.CountNotes(ctx)
}
