// Package emailx validates and normalizes email addresses for use as
// account identifiers.
package emailx

import (
	"errors"
	"net/mail"
	"strings"
)

var ErrInvalid = errors.New("emailx: invalid email address")

// Valid reports whether value is a usable RFC 5322 address for a web
// account. net/mail accepts a few shapes (display names, dotless
// domains) that are not wanted here, so the parsed address gets a
// second pass.
func Valid(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	// Reject display-name forms like `Name <a@b.com>`.
	if addr.Address != value {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}

	local, domain := parts[0], parts[1]
	if local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	if strings.Contains(domain, "..") {
		return false
	}

	return true
}

// Normalize lowercases and trims an address so that lookups are
// case-insensitive. It returns ErrInvalid when the address does not
// pass Valid.
func Normalize(value string) (string, error) {
	value = strings.TrimSpace(value)
	if !Valid(value) {
		return "", ErrInvalid
	}
	return strings.ToLower(value), nil
}
