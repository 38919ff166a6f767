package http

import (
	"errors"
	"net/http"

	"github.com/nclabhq/notelab/internal/notelab/service"
	"github.com/nclabhq/notelab/pkg/notelabsdk"
	"github.com/nclabhq/notelab/pkg/slogx"
)

type RegisterHandler struct {
	AuthService    *service.AuthService
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Register Endpoint
//	@Description	Create a local account with an email and password, and sign it in.
//	@Description	Deployments may require a registration key or disable email registration entirely.
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			email			formData	string						true	"Email address (account identifier)"
//	@Param			password		formData	string						true	"Password"
//	@Param			display_name	formData	string						false	"Profile display name"
//	@Param			photo_url		formData	string						false	"Profile picture URL"
//	@Param			regkey			formData	string						false	"Registration key, when the deployment requires one"
//	@Success		201				{object}	notelabsdk.SessionResponse	"token, token_type, expires_in, user"
//	@Failure		400				{object}	notelabsdk.ErrorResponse	"error, error_description"
//	@Failure		403				{object}	notelabsdk.ErrorResponse	"registration disabled or key required"
//	@Failure		409				{object}	notelabsdk.ErrorResponse	"email already registered"
//	@Failure		500				{object}	notelabsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		notelabsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, created, err := h.AuthService.Register(ctx, service.RegisterParams{
		Email:       r.FormValue("email"),
		Password:    r.FormValue("password"),
		DisplayName: r.FormValue("display_name"),
		PhotoURL:    r.FormValue("photo_url"),
		RegKey:      r.FormValue("regkey"),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRegistrationDisabled):
			notelabsdk.ErrRegistrationDisabled.WriteError(w)
		case errors.Is(err, service.ErrRegisterKeyMissing):
			notelabsdk.ErrRegisterKeyMissing.WriteError(w)
		case errors.Is(err, service.ErrRegisterKeyMismatch):
			notelabsdk.ErrRegisterKeyMismatch.WriteError(w)
		case errors.Is(err, service.ErrMissingFields):
			notelabsdk.ErrMissingFields.WriteError(w)
		case errors.Is(err, service.ErrInvalidEmail):
			notelabsdk.ErrInvalidEmail.WriteError(w)
		default:
			log.Error("failed to register user", "err", err)
			notelabsdk.ErrServerError.WriteError(w)
		}
		return
	}

	// The email already has an account. Registration does not reveal or
	// touch the existing account beyond this conflict.
	if !created {
		notelabsdk.ErrEmailTaken.WriteError(w)
		return
	}

	if err := writeSession(w, http.StatusCreated, h.SessionService, user); err != nil {
		log.Error("failed to mint session", "user_id", user.ID, "err", err)
		notelabsdk.ErrServerError.WriteError(w)
	}
}
