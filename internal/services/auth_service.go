package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/localnerve/boardsdb/internal/types"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL bounds how long an issued credential stays valid.
const tokenTTL = 72 * time.Hour

// HashPassword derives a one-way bcrypt hash for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IssueToken signs an identity into a bearer credential.
func IssueToken(secret string, identity types.Identity) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   identity.ID,
		"name": identity.Name,
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ParseToken verifies a bearer credential and decodes the caller identity.
// It never rejects a request by itself; rejection is the authorization
// gate's job.
func ParseToken(secret, tokenString string) (*types.Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid credential: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid credential claims")
	}

	id, ok := claims["id"].(float64)
	if !ok || id < 1 {
		return nil, fmt.Errorf("invalid credential subject")
	}
	name, _ := claims["name"].(string)

	return &types.Identity{ID: uint64(id), Name: name}, nil
}
