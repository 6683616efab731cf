package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateSecurePassword creates a random secure password of the specified
// length. Used when an admin creates a staff account without choosing a
// password; the generated one is emailed to the user.
func GenerateSecurePassword(length int) string {
	// Ensure minimum length
	if length < 8 {
		length = 8
	}

	// Generate more random bytes than the final length because of base64 encoding
	b := make([]byte, length*2)

	_, err := rand.Read(b)
	if err != nil {
		// In case of error, return a hardcoded but reasonably secure fallback
		return "Temp@Password123"
	}

	password := base64.StdEncoding.EncodeToString(b)
	if len(password) > length {
		password = password[:length]
	}

	return password
}
