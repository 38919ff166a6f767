package http

import (
	"net/http"

	"github.com/nclabhq/notelab/internal/notelab/service"
	"github.com/nclabhq/notelab/pkg/httpx"
	"github.com/nclabhq/notelab/pkg/notelabsdk"
	"github.com/nclabhq/notelab/pkg/slogx"
)

type NotesHandler struct {
	NotesService *service.NotesService
}

// HandleMine godoc
//
//	@Summary		Own Notes Endpoint
//	@Description	Lists the authenticated user's notes, newest change first.
//	@Tags			Notes
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	notelabsdk.NotesResponse	"notes"
//	@Failure		401	{object}	notelabsdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		500	{object}	notelabsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/notes/mine [get].
func (h *NotesHandler) HandleMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		notelabsdk.ErrInvalidToken.WriteError(w)
		return
	}

	entries, err := h.NotesService.ListOwn(ctx, userID)
	if err != nil {
		log.Error("failed to list notes", "user_id", userID, "err", err)
		notelabsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, notelabsdk.NotesResponse{Notes: noteEntries(entries)})
}

// HandleShared godoc
//
//	@Summary		Shared Notes Endpoint
//	@Description	Lists every non-private note across all accounts, with owner names.
//	@Tags			Notes
//	@Produce		json
//	@Success		200	{object}	notelabsdk.NotesResponse	"notes"
//	@Failure		500	{object}	notelabsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/notes/shared [get].
func (h *NotesHandler) HandleShared(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	entries, err := h.NotesService.ListShared(ctx)
	if err != nil {
		log.Error("failed to list shared notes", "err", err)
		notelabsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, notelabsdk.NotesResponse{Notes: sharedNoteEntries(entries)})
}
