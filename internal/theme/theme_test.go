package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommend(t *testing.T) {
	cases := []struct {
		name    string
		samples []int
		want    Suggestion
		ok      bool
	}{
		{"no samples", nil, "", false},
		{"night leads by two", []int{22, 23, 2, 10}, Dark, true},
		{"day leads by one only", []int{9, 14, 23}, "", false},
		{"day leads by two exactly", []int{9, 14}, Light, true},
		{"balanced", []int{9, 22}, "", false},
		{"one off balance", []int{9, 14, 22}, "", false},
		{"boundary hours", []int{5, 6, 17, 18}, "", false},
		{"early morning is night", []int{0, 1, 2, 3}, Dark, true},
		{"out of range ignored", []int{-3, 42, 21, 22}, Dark, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Recommend(tc.samples)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
