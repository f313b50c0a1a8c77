package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractProductID(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{"explicit label", "product id: MTR_01ABCDEF please", "MTR_01ABCDEF", true},
		{"underscore label", "product_id MTR_01ABCDEF", "MTR_01ABCDEF", true},
		{"short id label", "id: abc-789", "abc-789", true},
		{"hash prefix", "interested in #ELC_777", "ELC_777", true},
		{"bare token on own line", "MTR_01ABCDEF\nis this still available?", "MTR_01ABCDEF", true},
		{"bare token too short", "abc12", "", false},
		{"plain chat", "is this still available?", "", false},
		{"empty", "   ", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, found := ExtractProductID(tc.text)
			assert.Equal(t, tc.found, found)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractProductIDPrefersExplicitLabel(t *testing.T) {
	got, found := ExtractProductID("product id: ABC-789 please ship to #999999")

	assert.True(t, found)
	assert.Equal(t, "ABC-789", got)
}

func TestStripProductID(t *testing.T) {
	got := StripProductID("MTR_01ABCDEF is this still available?", "MTR_01ABCDEF")

	assert.Equal(t, "is this still available?", got)
}
