package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

const tokenBytes = 32

func GenerateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// BearerToken extracts the token from an Authorization header value: the
// text between "Bearer " and the next space. It reports false when the
// header is not a Bearer credential or that text is empty, so padded values
// like "Bearer  abc" are rejected.
func BearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := header[len(prefix):]
	if i := strings.IndexByte(token, ' '); i >= 0 {
		token = token[:i]
	}
	if token == "" {
		return "", false
	}
	return token, true
}
