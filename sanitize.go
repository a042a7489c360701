package authy

import "strings"

// digitsOnly strips every non-digit rune from s. Identifiers and
// tokens are interpolated into URL path segments; stripping keeps
// unexpected input from producing a malformed path.
func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// tokenValid reports whether a one-time token has an accepted number
// of digits after discarding non-digit characters. This is a length
// check, not a cryptographic validation.
func (c *Client) tokenValid(token string) bool {
	n := len(digitsOnly(token))
	return n >= c.minTokenDigits && n <= c.maxTokenDigits
}
