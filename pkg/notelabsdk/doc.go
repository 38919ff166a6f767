/*
Package notelabsdk provides a client SDK for the notelab service.

# SDKClient vs Session

The package is organized around two types:

  - SDKClient: unauthenticated operations and session creation
  - Session: authenticated operations bound to one account

Create an SDKClient for public endpoints and to sign in:

	client := notelabsdk.NewSDKClient("https://notes.example.com")

	// Check service health
	health, err := client.GetLiveness(ctx)

	// Browse the public note listing
	notes, err := client.SharedNotes(ctx)

	// Sign in to create a session
	session, err := client.Login(ctx, "alice@example.com", "password")

Use the Session for account-bound operations:

	me, err := session.Me(ctx)
	notes, err := session.MyNotes(ctx)

# Registration

Register creates a local account and signs it in:

	session, err := client.Register(ctx, notelabsdk.RegisterParams{
		Email:    "alice@example.com",
		Password: "password",
		RegKey:   "deployment-key", // only when the deployment requires one
	})

External sign-in (GitHub, Google) is a browser redirect flow and is not
driven through this SDK; the callback hands the browser the same
SessionResponse, and NewSessionFromToken turns a stored token back into
a Session.

# Account deletion

Deleting an account requires the delete token returned alongside the
account, not just a valid session:

	me, err := session.Me(ctx)
	err = session.SelfDelete(ctx, me.DeleteToken)

# Error handling

API failures are returned as *APIError with the HTTP status and the
machine-readable code:

	session, err := client.Login(ctx, email, password)
	var apiErr *notelabsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == notelabsdk.ErrorCodeInvalidCredentials {
		// wrong email or password
	}

Sessions do not auto-refresh; an expired session returns
ErrSessionExpired and the caller should log in again.
*/
package notelabsdk
