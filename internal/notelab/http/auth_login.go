package http

import (
	"errors"
	"net/http"

	"github.com/nclabhq/notelab/internal/notelab/service"
	"github.com/nclabhq/notelab/pkg/notelabsdk"
	"github.com/nclabhq/notelab/pkg/slogx"
)

type LoginHandler struct {
	AuthService    *service.AuthService
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate an email/password pair and return a session token.
//	@Description	Unknown accounts and wrong passwords produce the same 401 response.
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			email		formData	string						true	"Email address"
//	@Param			password	formData	string						true	"Password"
//	@Success		200			{object}	notelabsdk.SessionResponse	"token, token_type, expires_in, user"
//	@Failure		400			{object}	notelabsdk.ErrorResponse	"error, error_description"
//	@Failure		401			{object}	notelabsdk.ErrorResponse	"invalid credentials"
//	@Failure		500			{object}	notelabsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		notelabsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.AuthService.Authenticate(ctx, r.FormValue("email"), r.FormValue("password"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			notelabsdk.ErrInvalidEmail.WriteError(w)
		case errors.Is(err, service.ErrInvalidCredentials):
			notelabsdk.ErrInvalidCredentials.WriteError(w)
		default:
			log.Error("failed to authenticate user", "err", err)
			notelabsdk.ErrServerError.WriteError(w)
		}
		return
	}

	if err := writeSession(w, http.StatusOK, h.SessionService, user); err != nil {
		log.Error("failed to mint session", "user_id", user.ID, "err", err)
		notelabsdk.ErrServerError.WriteError(w)
	}
}
