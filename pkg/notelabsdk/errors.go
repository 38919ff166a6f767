package notelabsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nclabhq/notelab/pkg/httpx"
)

// Error codes returned by the notelab API.
const (
	ErrorCodeInvalidRequest       = "invalid_request"
	ErrorCodeInvalidCredentials   = "invalid_credentials"
	ErrorCodeInvalidEmail         = "invalid_email"
	ErrorCodeMissingFields        = "missing_fields"
	ErrorCodeEmailTaken           = "email_taken"
	ErrorCodeRegistrationDisabled = "registration_disabled"
	ErrorCodeRegisterKeyMissing   = "register_key_missing"
	ErrorCodeRegisterKeyMismatch  = "register_key_mismatch"
	ErrorCodeExternalProfile      = "external_profile"
	ErrorCodeNothingToUpdate      = "nothing_to_update"
	ErrorCodeInvalidDeleteToken   = "invalid_delete_token"
	ErrorCodeInvalidState         = "invalid_state"
	ErrorCodeUnknownProvider      = "unknown_provider"
	ErrorCodeInvalidToken         = "invalid_token"
	ErrorCodeRateLimitExceeded    = "rate_limit_exceeded"
	ErrorCodeServerError          = "server_error"
)

// APIError represents an error response from the notelab API. It
// implements the error interface and is used both by the server to
// write HTTP responses and by the SDK client to represent failures.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g., "invalid_credentials")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

// Predefined API errors.
var (
	// ErrInvalidRequest is returned when the request is malformed or
	// missing required parameters.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrInvalidCredentials is returned for any failed login attempt.
	// The same response covers unknown accounts and wrong passwords.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid email or password",
	}

	// ErrInvalidEmail is returned when the supplied email address is not
	// syntactically usable as an account identifier.
	ErrInvalidEmail = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidEmail,
		Description: "the email address is not valid",
	}

	// ErrMissingFields is returned when registration input is incomplete.
	ErrMissingFields = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeMissingFields,
		Description: "email and password are required",
	}

	// ErrEmailTaken is returned when registering an email that already
	// has an account.
	ErrEmailTaken = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeEmailTaken,
		Description: "an account with this email already exists",
	}

	// ErrRegistrationDisabled is returned when email registration is
	// turned off on this deployment.
	ErrRegistrationDisabled = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeRegistrationDisabled,
		Description: "email registration is disabled",
	}

	// ErrRegisterKeyMissing is returned when the deployment requires a
	// registration key and none was supplied.
	ErrRegisterKeyMissing = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeRegisterKeyMissing,
		Description: "a registration key is required",
	}

	// ErrRegisterKeyMismatch is returned when the supplied registration
	// key is wrong.
	ErrRegisterKeyMismatch = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeRegisterKeyMismatch,
		Description: "the registration key is incorrect",
	}

	// ErrExternalProfile is returned when editing the profile of an
	// externally-linked account. Those profiles come from the provider.
	ErrExternalProfile = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeExternalProfile,
		Description: "profiles of externally-linked accounts are managed by the provider",
	}

	// ErrNothingToUpdate is returned when a profile update carries no
	// effective change.
	ErrNothingToUpdate = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeNothingToUpdate,
		Description: "no fields to update",
	}

	// ErrInvalidDeleteToken is returned when account deletion is
	// attempted without the correct delete token.
	ErrInvalidDeleteToken = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeInvalidDeleteToken,
		Description: "the delete token is invalid",
	}

	// ErrInvalidState is returned when an OAuth callback state is
	// unknown, expired, or already used.
	ErrInvalidState = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidState,
		Description: "the sign-in state is invalid or has expired",
	}

	// ErrUnknownProvider is returned for sign-in via a provider this
	// deployment does not have configured.
	ErrUnknownProvider = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeUnknownProvider,
		Description: "unknown sign-in provider",
	}

	// ErrInvalidToken is returned when the session token is missing,
	// invalid or expired.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the session token is missing, invalid or expired",
	}

	// ErrServerError is returned when the service hit an unexpected
	// condition. Details stay in the server log.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// NewAPIError creates an APIError with a custom description.
func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{
		StatusCode:  statusCode,
		Code:        code,
		Description: description,
	}
}

// parseErrorResponse turns a non-2xx HTTP response into a typed error.
// Returns nil for success responses.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
