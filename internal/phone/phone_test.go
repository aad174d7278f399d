package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		cc   string
		want string
		err  error
	}{
		{"local with spaces", "0812 3456 789", "62", "+628123456789", nil},
		{"already international", "+62 812-3456-789", "62", "+628123456789", nil},
		{"double zero prefix", "0062 8123456789", "62", "+628123456789", nil},
		{"foreign number kept", "+44 20 1234 5678", "62", "+442012345678", nil},
		{"plus then local zero", "+0812 3456 789", "62", "+628123456789", nil},
		{"bare country code", "628123456789", "62", "+628123456789", nil},
		{"leading whitespace before plus", "  +62 8123456789", "62", "+628123456789", nil},
		{"stray plus dropped", "62+8123456789", "62", "+628123456789", nil},
		{"empty", "", "62", "", ErrEmpty},
		{"letters only", "abc", "62", "", ErrEmpty},
		{"too short", "0812", "62", "", ErrInvalid},
		{"too long", "081234567890123456", "62", "", ErrInvalid},
		{"default country code fallback", "0812345678", "", "+62812345678", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.raw, tc.cc)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.Empty(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Whatever comes out of Normalize must match +[1-9] followed by 5..14 digits.
func TestNormalizeFormatInvariant(t *testing.T) {
	inputs := []string{
		"0812 3456 789", "+62 812", "00 44 20 1234 5678", "+0 81 23 45 67 89",
		"9", "0", "00", "+", "123456", "غير رقم 0812345678",
	}
	for _, raw := range inputs {
		got, err := Normalize(raw, "62")
		if err != nil {
			continue
		}
		assert.Regexp(t, `^\+[1-9]\d{5,14}$`, got, "input %q", raw)
	}
}
