package subscriber

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// maxNameGraphemes is the length cap on subscriber names, counted in
// user-perceived characters rather than bytes or runes.
const maxNameGraphemes = 256

// forbiddenNameRunes are characters rejected anywhere in a subscriber name.
const forbiddenNameRunes = `/()"<>\{}`

var (
	ErrNameEmpty   = errors.New("subscriber name must not be empty or whitespace")
	ErrNameTooLong = fmt.Errorf("subscriber name must not exceed %d characters", maxNameGraphemes)
)

// Name is a validated subscriber name. The zero value is invalid; use
// ParseName to construct one.
type Name struct {
	value string
}

// ParseName validates raw input into a Name. The input is trimmed, must be
// non-empty, at most 256 grapheme clusters long, and free of forbidden
// characters.
func ParseName(raw string) (Name, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Name{}, ErrNameEmpty
	}
	if uniseg.GraphemeClusterCount(trimmed) > maxNameGraphemes {
		return Name{}, ErrNameTooLong
	}
	if i := strings.IndexAny(trimmed, forbiddenNameRunes); i >= 0 {
		return Name{}, fmt.Errorf("subscriber name contains forbidden character %q", trimmed[i])
	}
	return Name{value: trimmed}, nil
}

func (n Name) String() string {
	return n.value
}
