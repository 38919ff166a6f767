package notelabsdk

import (
	"context"
	"net/http"
)

// SharedNotes lists every non-private note across all accounts. This
// endpoint requires no authentication.
func (c *SDKClient) SharedNotes(ctx context.Context) ([]NoteEntry, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/notes/shared", nil, nil)
	if err != nil {
		return nil, err
	}

	var notesResp NotesResponse
	if err := decodeJSON(resp, &notesResp, http.StatusOK); err != nil {
		return nil, err
	}

	return notesResp.Notes, nil
}

// GetJWKS fetches the public keys used to verify session tokens.
func (c *SDKClient) GetJWKS(ctx context.Context) (JWKSResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/.well-known/jwks.json", nil, nil)
	if err != nil {
		return JWKSResponse{}, err
	}

	var jwks JWKSResponse
	if err := decodeJSON(resp, &jwks, http.StatusOK); err != nil {
		return JWKSResponse{}, err
	}

	return jwks, nil
}

// GetLiveness checks the liveness probe endpoint.
func (c *SDKClient) GetLiveness(ctx context.Context) (HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil, nil)
	if err != nil {
		return HealthResponse{}, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return HealthResponse{}, err
	}

	return health, nil
}

// GetReadiness checks the readiness probe endpoint, including the
// database and signer checks.
func (c *SDKClient) GetReadiness(ctx context.Context) (HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil, nil)
	if err != nil {
		return HealthResponse{}, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return HealthResponse{}, err
	}

	return health, nil
}
