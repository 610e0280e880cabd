package subscriber

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// TokenLength is the length of a confirmation token in characters.
const TokenLength = 25

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateToken returns a fresh confirmation token: 25 case-sensitive
// alphanumeric characters drawn from a cryptographically secure source.
func GenerateToken() (string, error) {
	buf := make([]byte, TokenLength)
	alphabetSize := big.NewInt(int64(len(tokenAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("generate subscription token: %w", err)
		}
		buf[i] = tokenAlphabet[n.Int64()]
	}
	return string(buf), nil
}

// ValidateToken checks that a token received from a client has the shape of a
// generated token. It says nothing about whether the token exists.
func ValidateToken(token string) error {
	if token == "" {
		return errors.New("subscription token is missing")
	}
	if len(token) != TokenLength {
		return fmt.Errorf("subscription token must be %d characters long", TokenLength)
	}
	for _, r := range token {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !isAlnum {
			return errors.New("subscription token contains invalid characters")
		}
	}
	return nil
}
