package http

import (
	"net/http"
	"strings"

	"github.com/nclabhq/notelab/internal/notelab/domain"
	"github.com/nclabhq/notelab/internal/notelab/service"
	"github.com/nclabhq/notelab/pkg/httpx"
	"github.com/nclabhq/notelab/pkg/notelabsdk"
)

// userResponse maps an account to its API shape. The delete token is a
// deletion capability and is only included for the account owner.
func userResponse(user domain.User, owner bool) notelabsdk.UserResponse {
	resp := notelabsdk.UserResponse{
		UserID:      user.ID,
		Provider:    "email",
		DisplayName: user.DisplayName(),
		PhotoURL:    user.Profile.PhotoURL,
	}

	if user.Email != nil {
		resp.Email = *user.Email
	}
	if user.ExternalID != nil {
		// External ids are "provider:subject".
		resp.Provider, _, _ = strings.Cut(*user.ExternalID, ":")
	}
	if owner {
		resp.DeleteToken = user.DeleteToken
	}

	return resp
}

// writeSession mints a session token for the account and writes the
// session response.
func writeSession(
	w http.ResponseWriter,
	status int,
	sessions *service.SessionService,
	user domain.User,
) error {
	token, err := sessions.Mint(user)
	if err != nil {
		return err
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, status, notelabsdk.SessionResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int(sessions.Lifetime().Seconds()),
		User:      userResponse(user, true),
	})
	return nil
}

func noteEntries(entries []service.NoteEntry) []notelabsdk.NoteEntry {
	out := make([]notelabsdk.NoteEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, notelabsdk.NoteEntry{
			NoteID: e.NoteID,
			Title:  e.Title,
			Time:   e.Time,
			Tags:   e.Tags,
		})
	}
	return out
}

func sharedNoteEntries(entries []service.SharedNoteEntry) []notelabsdk.NoteEntry {
	out := make([]notelabsdk.NoteEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, notelabsdk.NoteEntry{
			NoteID:    e.NoteID,
			Title:     e.Title,
			Time:      e.Time,
			Tags:      e.Tags,
			OwnerName: e.OwnerName,
		})
	}
	return out
}
