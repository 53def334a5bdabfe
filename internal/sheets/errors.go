package sheets

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingConfig means the service-account key environment variable is not set.
var ErrMissingConfig = errors.New("missing GOOGLE_SERVICE_ACCOUNT_KEY_BASE64")

// KeyFormatError means the service-account blob or its private key could not
// be parsed.
type KeyFormatError struct {
	Reason string
	Err    error
}

func (e *KeyFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service account key: %s: %v", e.Reason, e.Err)
	}
	return "service account key: " + e.Reason
}

func (e *KeyFormatError) Unwrap() error { return e.Err }

// AuthExchangeError means the OAuth token request failed or returned no
// token. Status carries the upstream HTTP status for diagnostics.
type AuthExchangeError struct {
	Status int
	Body   string
}

func (e *AuthExchangeError) Error() string {
	return fmt.Sprintf("token exchange failed: status %d: %s", e.Status, e.Body)
}

// SheetFetchError means the spreadsheet values read failed.
type SheetFetchError struct {
	Status int
}

func (e *SheetFetchError) Error() string {
	return fmt.Sprintf("sheet fetch failed: status %d", e.Status)
}

// PermissionDenied reports whether the upstream rejected the service
// account's access to the sheet.
func (e *SheetFetchError) PermissionDenied() bool { return e.Status == http.StatusForbidden }
