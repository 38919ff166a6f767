package http

import (
	"errors"
	"net/http"

	"github.com/nclabhq/notelab/internal/notelab/provider"
	"github.com/nclabhq/notelab/internal/notelab/service"
	"github.com/nclabhq/notelab/pkg/notelabsdk"
	"github.com/nclabhq/notelab/pkg/slogx"
)

type ExternalAuthHandler struct {
	Providers      *provider.Registry
	LinkService    *service.LinkService
	SessionService *service.SessionService
}

// HandleBegin godoc
//
//	@Summary		External Sign-In Endpoint
//	@Description	Start sign-in via an external provider (e.g., github, google).
//	@Description	Redirects the browser to the provider's consent page with a single-use state.
//	@Tags			Auth
//	@Param			provider	path	string	true	"Provider id"
//	@Param			regkey		query	string	false	"Registration key, carried through to first-time account creation"
//	@Success		302			"Redirect to the provider"
//	@Failure		404			{object}	notelabsdk.ErrorResponse	"unknown provider"
//	@Failure		500			{object}	notelabsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/{provider} [get].
func (h *ExternalAuthHandler) HandleBegin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	adapter, err := h.Providers.Get(r.PathValue("provider"))
	if err != nil {
		notelabsdk.ErrUnknownProvider.WriteError(w)
		return
	}

	state, err := h.LinkService.Begin(ctx, adapter.ID(), r.URL.Query().Get("regkey"))
	if err != nil {
		log.Error("failed to begin external sign-in", "provider", adapter.ID(), "err", err)
		notelabsdk.ErrServerError.WriteError(w)
		return
	}

	http.Redirect(w, r, adapter.AuthCodeURL(state), http.StatusFound)
}

// HandleCallback godoc
//
//	@Summary		External Sign-In Callback Endpoint
//	@Description	Complete external sign-in. Exchanges the authorization code, links or
//	@Description	creates the account, and returns a session token.
//	@Tags			Auth
//	@Produce		json
//	@Param			provider	path		string						true	"Provider id"
//	@Param			code		query		string						true	"Authorization code from the provider"
//	@Param			state		query		string						true	"State issued at the start of the flow"
//	@Success		200			{object}	notelabsdk.SessionResponse	"token, token_type, expires_in, user"
//	@Failure		400			{object}	notelabsdk.ErrorResponse	"invalid state or code"
//	@Failure		403			{object}	notelabsdk.ErrorResponse	"registration key required for first sign-in"
//	@Failure		404			{object}	notelabsdk.ErrorResponse	"unknown provider"
//	@Failure		500			{object}	notelabsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/{provider}/callback [get].
func (h *ExternalAuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	adapter, err := h.Providers.Get(r.PathValue("provider"))
	if err != nil {
		notelabsdk.ErrUnknownProvider.WriteError(w)
		return
	}

	regKeyClaim, err := h.LinkService.Resume(ctx, adapter.ID(), r.URL.Query().Get("state"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidState) {
			notelabsdk.ErrInvalidState.WriteError(w)
			return
		}
		log.Error("failed to resume external sign-in", "provider", adapter.ID(), "err", err)
		notelabsdk.ErrServerError.WriteError(w)
		return
	}

	identity, err := adapter.Exchange(ctx, r.URL.Query().Get("code"))
	if err != nil {
		if errors.Is(err, provider.ErrInvalidCode) {
			notelabsdk.ErrInvalidRequest.WriteError(w)
			return
		}
		log.Error("failed to exchange authorization code", "provider", adapter.ID(), "err", err)
		notelabsdk.ErrServerError.WriteError(w)
		return
	}

	user, err := h.LinkService.LinkOrCreate(ctx, identity, regKeyClaim)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRegisterKeyMismatch):
			notelabsdk.ErrRegisterKeyMismatch.WriteError(w)
		default:
			log.Error("failed to link external identity", "provider", adapter.ID(), "err", err)
			notelabsdk.ErrServerError.WriteError(w)
		}
		return
	}

	if err := writeSession(w, http.StatusOK, h.SessionService, user); err != nil {
		log.Error("failed to mint session", "user_id", user.ID, "err", err)
		notelabsdk.ErrServerError.WriteError(w)
	}
}
