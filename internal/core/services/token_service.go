package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrWrongPIN = errors.New("wrong pin")

// ownerSubject is the only identity the engine knows; this is a single-user
// application.
const ownerSubject = "owner"

// TokenService issues and validates the owner's access token. Authentication
// is a bcrypt-hashed PIN configured at deploy time; there are no accounts.
type TokenService struct {
	pinHash       string
	secretKey     []byte
	issuer        string
	tokenDuration time.Duration
}

func NewTokenService(pinHash, secretKey, issuer string, tokenDuration time.Duration) *TokenService {
	return &TokenService{
		pinHash:       pinHash,
		secretKey:     []byte(secretKey),
		issuer:        issuer,
		tokenDuration: tokenDuration,
	}
}

// HashPIN produces the bcrypt hash to place in the config.
func HashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), 12)
	if err != nil {
		return "", fmt.Errorf("failed to hash pin: %w", err)
	}
	return string(hash), nil
}

// Authenticate checks the PIN and returns a signed token.
func (s *TokenService) Authenticate(pin string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.pinHash), []byte(pin)); err != nil {
		return "", ErrWrongPIN
	}

	claims := jwt.MapClaims{
		"sub": ownerSubject,
		"exp": time.Now().Add(s.tokenDuration).Unix(),
		"iat": time.Now().Unix(),
		"iss": s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("token service: failed to sign token: %w", err)
	}
	return signedToken, nil
}

// ValidateToken verifies the signature, issuer and subject.
func (s *TokenService) ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return fmt.Errorf("invalid token claims")
	}
	if iss, ok := claims["iss"].(string); !ok || iss != s.issuer {
		return fmt.Errorf("invalid token issuer")
	}
	if sub, ok := claims["sub"].(string); !ok || sub != ownerSubject {
		return fmt.Errorf("invalid token subject")
	}
	return nil
}
