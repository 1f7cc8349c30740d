// Package auth implements password hashing and the signed session token
// carried in the login cookie.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/s7eamy/learn2-api/config"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// PBKDF2 parameters. Changing these invalidates stored hashes.
	kdfIterations = 210000
	saltLength    = 16
	keyLength     = 32

	// SessionTTL is how long a login session stays valid.
	SessionTTL = 24 * time.Hour
)

// GenerateSalt returns a fresh random salt for a new user.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// HashPassword derives the stored hash from a password and salt.
func HashPassword(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, kdfIterations, keyLength, sha256.New)
}

// VerifyPassword recomputes the hash and compares in constant time.
func VerifyPassword(password string, salt, hash []byte) bool {
	computed := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(computed, hash) == 1
}

// CreateSessionToken signs a token carrying the session ID.
func CreateSessionToken(sessionID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"sid": sessionID,
			"exp": time.Now().Add(SessionTTL).Unix(),
		})

	tokenString, err := token.SignedString(config.Env.SessionSecret)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// ParseSessionToken verifies a token and returns the session ID it carries.
func ParseSessionToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return config.Env.SessionSecret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", fmt.Errorf("token has no session ID")
	}
	return sid, nil
}
