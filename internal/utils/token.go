package utils

import (
	"time" // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// TokenType is returned next to every access token
const TokenType = "bearer"

// LegacyToken builds the opaque pseudo-token older clients expect:
// the username and the first ten characters of the stored hash. It is not verifiable.
func LegacyToken(username, passwordHash string) string {
	prefix := passwordHash
	if len(prefix) > 10 {
		prefix = prefix[:10]
	}
	return username + ":" + prefix
}

// JWT Claims
type Claims struct {
	UserID               uint `json:"user_id"` // Custom claim for user ID
	RoleID               uint `json:"role_id"` // Role at issue time
	jwt.RegisteredClaims      // Standard JWT claims
}

// GenerateJWT creates a signed token for a given user
func GenerateJWT(userID, roleID uint, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RoleID: roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)), // Token expiry
			IssuedAt:  jwt.NewNumericDate(now),          // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}
