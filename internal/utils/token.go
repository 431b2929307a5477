package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	sessionTokenBytes = 32
	bearerPrefix      = "Bearer "
)

// GenerateSessionToken returns 256 random bits encoded as unpadded base64url
func GenerateSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// ExtractBearerToken strips the "Bearer " prefix from an Authorization header
func ExtractBearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", false
	}
	return token, true
}
