package subscriber

import (
	"fmt"
	"net/mail"
	"strings"
)

// Email is a validated subscriber email address. The zero value is invalid;
// use ParseEmail to construct one.
type Email struct {
	value string
}

// ParseEmail validates raw input against the standard mailbox-address grammar.
// Display names and angle-bracket forms are rejected; only a bare address is
// accepted.
func ParseEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Email{}, fmt.Errorf("subscriber email must not be empty")
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil {
		return Email{}, fmt.Errorf("%q is not a valid email address", trimmed)
	}
	if addr.Name != "" || addr.Address != trimmed {
		return Email{}, fmt.Errorf("%q is not a valid email address", trimmed)
	}
	return Email{value: addr.Address}, nil
}

func (e Email) String() string {
	return e.value
}
