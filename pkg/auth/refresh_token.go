package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateRefreshToken creates a cryptographically secure opaque refresh
// token in the format rf_{random} (32 random bytes, hex encoded).
func GenerateRefreshToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return "rf_" + hex.EncodeToString(bytes), nil
}
