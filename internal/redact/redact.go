// Package redact removes sensitive values from strings before they are
// logged or echoed in error responses, so credentials, bcrypt digests, and
// bearer tokens never leak through error text.
package redact

import "regexp"

// RedactionPlaceholder replaces any matched sensitive value.
const RedactionPlaceholder = "[REDACTED]"

var (
	// JWT tokens: the standard three-part base64url format.
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// bcrypt digests.
	bcryptRegex = regexp.MustCompile(`\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53}`)

	// password=..., password: '...' and friends.
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?)[^'"&\s]{3,}`)

	// Key/secret assignments.
	secretRegex = regexp.MustCompile(`(?i)(api[_-]?key|secret|token)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`)

	// Email addresses.
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
)

var patterns = []*regexp.Regexp{
	jwtTokenRegex,
	bcryptRegex,
	passwordRegex,
	secretRegex,
	emailRegex,
}

// String redacts all sensitive values found in s.
func String(s string) string {
	for _, p := range patterns {
		s = p.ReplaceAllString(s, RedactionPlaceholder)
	}
	return s
}

// Error redacts the message of err. A nil error yields an empty string.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
