package notelab_test

import (
	"net/http"
	"testing"

	"github.com/nclabhq/notelab/pkg/notelabsdk"
	"github.com/stretchr/testify/require"
)

// TestNotesListings verifies the listing endpoints and their auth
// requirements. Note creation happens through the editing engine, so a
// fresh deployment lists nothing.
func TestNotesListings(t *testing.T) {
	baseURL, cleanup := setupNotelabContainer(t)
	defer cleanup()

	client := notelabsdk.NewSDKClient(baseURL)
	session := registerTestUser(t, client)

	mine, err := session.MyNotes(t.Context())
	require.NoError(t, err)
	require.Empty(t, mine)

	// The shared listing is public.
	shared, err := client.SharedNotes(t.Context())
	require.NoError(t, err)
	require.Empty(t, shared)

	// The personal listing is not.
	resp, err := http.Get(baseURL + "/v1/notes/mine")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
