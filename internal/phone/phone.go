// Package phone normalizes free-form phone input to a WhatsApp-dialable
// international form before it is sent to the core API.
package phone

import (
	"errors"
	"regexp"
	"strings"
)

// DefaultCountryCode is used for local numbers with a leading zero (Indonesia).
const DefaultCountryCode = "62"

var (
	ErrEmpty   = errors.New("phone is required")
	ErrInvalid = errors.New("phone must be a valid international number")
)

// e164Re: + followed by 6 to 15 digits, no leading zero after the +.
var e164Re = regexp.MustCompile(`^\+[1-9]\d{5,14}$`)

// Normalize converts a human-entered phone string into +<country><number>.
// Local numbers starting with 0 get countryCode; the 00 international
// prefix becomes +. The more specific "00" and "+0" corrections must run
// before the plain leading-zero and missing-plus fallbacks.
func Normalize(raw, countryCode string) (string, error) {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}

	// Keep digits and pluses, then drop every + that is not leading.
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if i := strings.IndexByte(s, '+'); i >= 0 {
		s = strings.ReplaceAll(s, "+", "")
		if i == 0 {
			s = "+" + s
		}
	}

	switch {
	case s == "":
		return "", ErrEmpty
	case strings.HasPrefix(s, "00"):
		s = "+" + s[2:]
	case strings.HasPrefix(s, "+0"):
		s = "+" + countryCode + s[2:]
	case strings.HasPrefix(s, "0"):
		s = "+" + countryCode + s[1:]
	case !strings.HasPrefix(s, "+"):
		s = "+" + s
	}

	if !e164Re.MatchString(s) {
		return "", ErrInvalid
	}
	return s, nil
}
