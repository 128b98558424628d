package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/krish-027/safar-guardian-pilot/internal/config"
)

// ErrInvalidCredentials is returned for a failed officer login.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService authenticates the configured officer account and issues JWTs.
// The demo has a single principal; there is no user table.
type AuthService struct {
	username     string
	passwordHash []byte
	jwtSecret    []byte
	tokenTTL     time.Duration
}

// NewAuthService hashes the configured officer password at startup so the
// plaintext never lives past construction.
func NewAuthService(cfg *config.Config) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.OfficerPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash officer password: %w", err)
	}
	return &AuthService{
		username:     cfg.OfficerUsername,
		passwordHash: hash,
		jwtSecret:    []byte(cfg.JWTSecret),
		tokenTTL:     24 * time.Hour,
	}, nil
}

// Login validates credentials and returns a signed token.
func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.username {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub":  username,
		"role": "officer",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a token and returns the subject.
func (s *AuthService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidCredentials
	}
	sub, _ := claims["sub"].(string)
	return sub, nil
}
