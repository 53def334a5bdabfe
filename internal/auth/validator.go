package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/marcus/talent-radar/internal/sheets"
)

var (
	// ErrInvalidCredentials means the request was well formed but no row matched.
	ErrInvalidCredentials = errors.New("wrong login name or password")
	// ErrInvalidSchema means the login sheet is missing an expected header column.
	ErrInvalidSchema = errors.New("login sheet missing required columns")
	// ErrNoCredentials means the login sheet has no data rows to check against.
	ErrNoCredentials = errors.New("no credential rows in login sheet")
)

const (
	loginNameHeader = "login name"
	passwordHeader  = "password"
)

// ValidateCredentials scans the login sheet top to bottom for a row matching
// the supplied pair. Header lookup is a case-insensitive exact match, no
// alias fallback. Stored passwords are compared verbatim, except cells
// holding a bcrypt hash, which are verified with constant-time comparison.
func ValidateCredentials(grid sheets.Grid, loginName, password string) error {
	if len(grid) < 2 {
		return ErrNoCredentials
	}

	loginIdx, passIdx := -1, -1
	for i, h := range grid[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case loginNameHeader:
			if loginIdx < 0 {
				loginIdx = i
			}
		case passwordHeader:
			if passIdx < 0 {
				passIdx = i
			}
		}
	}
	if loginIdx < 0 || passIdx < 0 {
		return ErrInvalidSchema
	}

	for _, row := range grid[1:] {
		if loginIdx >= len(row) || passIdx >= len(row) {
			continue
		}
		if strings.TrimSpace(row[loginIdx]) != loginName {
			continue
		}
		if passwordMatches(strings.TrimSpace(row[passIdx]), password) {
			return nil
		}
	}

	return ErrInvalidCredentials
}

func passwordMatches(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	// Plain-text comparison against spreadsheet-stored credentials; kept for
	// compatibility with existing sheets. New rows should store bcrypt hashes.
	return stored == supplied
}
