package subscriber_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperpress/newsletter/internal/core/domain/subscriber"
)

func TestParseEmail_Valid(t *testing.T) {
	cases := []string{
		"ursula_le_guin@gmail.com",
		"a@b.co",
		"first.last@sub.example.org",
		"user+tag@example.com",
	}

	for _, raw := range cases {
		t.Run(raw, func(t *testing.T) {
			got, err := subscriber.ParseEmail(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, got.String())
		})
	}
}

func TestParseEmail_Invalid(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"missing at", "ursulagmail.com"},
		{"missing local part", "@gmail.com"},
		{"missing domain", "ursula@"},
		{"display name form", "Ursula <ursula@gmail.com>"},
		{"embedded spaces", "ursula le guin@gmail.com"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := subscriber.ParseEmail(tc.raw)
			assert.Error(t, err)
		})
	}
}
