package subscriber_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperpress/newsletter/internal/core/domain/subscriber"
)

func TestParseName_Valid(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"plain name", "le guin", "le guin"},
		{"trims surrounding whitespace", "  Ursula K. Le Guin  ", "Ursula K. Le Guin"},
		{"exactly 256 characters", strings.Repeat("a", 256), strings.Repeat("a", 256)},
		{"unicode name", "Björk Guðmundsdóttir", "Björk Guðmundsdóttir"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := subscriber.ParseName(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestParseName_GraphemesNotBytes(t *testing.T) {
	// 256 two-byte runes: over 256 bytes but exactly 256 user-perceived
	// characters, so it is accepted.
	name := strings.Repeat("ё", 256)
	_, err := subscriber.ParseName(name)
	assert.NoError(t, err)
}

func TestParseName_Invalid(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace only", "   \t  "},
		{"257 characters", strings.Repeat("a", 257)},
		{"forward slash", "a/b"},
		{"parenthesis", "name (nickname)"},
		{"double quote", `say "hi"`},
		{"angle brackets", "<script>"},
		{"backslash", `back\slash`},
		{"curly braces", "{name}"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := subscriber.ParseName(tc.raw)
			assert.Error(t, err)
		})
	}
}
