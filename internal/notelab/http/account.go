package http

import (
	"errors"
	"net/http"

	"github.com/nclabhq/notelab/internal/notelab/service"
	"github.com/nclabhq/notelab/internal/notelab/store"
	"github.com/nclabhq/notelab/pkg/httpx"
	"github.com/nclabhq/notelab/pkg/notelabsdk"
	"github.com/nclabhq/notelab/pkg/slogx"
)

type AccountHandler struct {
	AccountService *service.AccountService
}

// HandleGet godoc
//
//	@Summary		Get Account Endpoint
//	@Description	Returns the authenticated user's account, including the delete token.
//	@Tags			Account
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	notelabsdk.UserResponse		"user_id, email, provider, display_name, photo_url, delete_token"
//	@Failure		401	{object}	notelabsdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		500	{object}	notelabsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/me [get].
func (h *AccountHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		notelabsdk.ErrInvalidToken.WriteError(w)
		return
	}

	user, err := h.AccountService.Me(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Token for a since-deleted account.
			notelabsdk.ErrInvalidToken.WriteError(w)
			return
		}
		log.Warn("failed to load user", "user_id", userID, "err", err)
		notelabsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, userResponse(user, true))
}

// HandleUpdateProfile godoc
//
//	@Summary		Update Profile Endpoint
//	@Description	Update the display name, photo URL or password of a local account.
//	@Description	Omitted fields keep their current value; empty strings never clear a set field.
//	@Description	Externally-linked accounts cannot edit their profile here.
//	@Tags			Account
//	@Security		BearerAuth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			display_name	formData	string						false	"New display name"
//	@Param			photo_url		formData	string						false	"New profile picture URL"
//	@Param			password		formData	string						false	"New password"
//	@Success		200				{object}	notelabsdk.UserResponse		"Updated account"
//	@Failure		400				{object}	notelabsdk.ErrorResponse	"nothing to update"
//	@Failure		401				{object}	notelabsdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		403				{object}	notelabsdk.ErrorResponse	"externally-managed profile"
//	@Failure		500				{object}	notelabsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/me/profile [post].
func (h *AccountHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		notelabsdk.ErrInvalidToken.WriteError(w)
		return
	}

	if err := r.ParseForm(); err != nil {
		notelabsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	// Only fields present in the form are considered for update.
	user, err := h.AccountService.UpdateProfile(ctx, userID,
		formValuePtr(r, "password"),
		formValuePtr(r, "display_name"),
		formValuePtr(r, "photo_url"),
	)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			notelabsdk.ErrInvalidToken.WriteError(w)
		case errors.Is(err, service.ErrExternalProfile):
			notelabsdk.ErrExternalProfile.WriteError(w)
		case errors.Is(err, service.ErrNothingToUpdate):
			notelabsdk.ErrNothingToUpdate.WriteError(w)
		default:
			log.Error("failed to update profile", "user_id", userID, "err", err)
			notelabsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, userResponse(user, true))
}

// HandleDelete godoc
//
//	@Summary		Delete Account Endpoint
//	@Description	Permanently delete the authenticated user's account and all of its notes.
//	@Description	Requires the account's delete token; a valid session alone is not enough.
//	@Tags			Account
//	@Security		BearerAuth
//	@Param			token	path	string	true	"Delete token from the account response"
//	@Success		204		"Account deleted"
//	@Failure		401		{object}	notelabsdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		403		{object}	notelabsdk.ErrorResponse	"invalid delete token"
//	@Failure		500		{object}	notelabsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/me/{token} [delete].
func (h *AccountHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		notelabsdk.ErrInvalidToken.WriteError(w)
		return
	}

	err := h.AccountService.SelfDelete(ctx, userID, r.PathValue("token"))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			notelabsdk.ErrInvalidToken.WriteError(w)
		case errors.Is(err, service.ErrInvalidDeleteToken):
			notelabsdk.ErrInvalidDeleteToken.WriteError(w)
		default:
			log.Error("failed to delete account", "user_id", userID, "err", err)
			notelabsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// formValuePtr distinguishes an absent form field (nil) from a present
// but empty one.
func formValuePtr(r *http.Request, key string) *string {
	if !r.PostForm.Has(key) {
		return nil
	}
	v := r.PostForm.Get(key)
	return &v
}
