package http

import (
	"net/http"

	"github.com/nclabhq/notelab/pkg/httpx"
	"github.com/nclabhq/notelab/pkg/jwtx"
	"github.com/nclabhq/notelab/pkg/notelabsdk"
)

// JWKSHandler exposes the JSON Web Key Set for public key discovery.
//
//	@Summary		Get JWKS
//	@Description	Returns the JSON Web Key Set used to verify session JWTs.
//	@Tags			well-known
//	@Produce		json
//	@Success		200	{object}	notelabsdk.JWKSResponse	"The JSON Web Key Set"
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, notelabsdk.JWKSResponse(keys.PublicJWKS()))
	}
}
