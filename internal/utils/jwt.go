package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/Kostiantyn78/ImageHub/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

const (
	ScopeAccessToken  = "access_token"
	ScopeRefreshToken = "refresh_token"
)

// Claims carries the token subject (the account email) plus a scope
// discriminator so an access token can never be presented as a refresh
// token or vice versa. Email confirmation tokens carry no scope.
type Claims struct {
	Scope string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

func getSecret() []byte {
	return []byte(config.Get().JWT.Secret)
}

func signingMethod() jwt.SigningMethod {
	if config.Get().JWT.Algorithm == "HS512" {
		return jwt.SigningMethodHS512
	}
	return jwt.SigningMethodHS256
}

func generate(email, scope string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			Issuer:    "imagehub",
		},
	}
	token := jwt.NewWithClaims(signingMethod(), claims)
	return token.SignedString(getSecret())
}

func GenerateAccessToken(email string, duration time.Duration) (string, error) {
	return generate(email, ScopeAccessToken, duration)
}

func GenerateRefreshToken(email string, duration time.Duration) (string, error) {
	return generate(email, ScopeRefreshToken, duration)
}

func GenerateEmailToken(email string, duration time.Duration) (string, error) {
	return generate(email, "", duration)
}

func parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// ParseAccessToken verifies the token and returns the subject email.
// Tokens with any other scope are rejected.
func ParseAccessToken(tokenString string) (string, error) {
	claims, err := parse(tokenString)
	if err != nil {
		return "", err
	}
	if claims.Scope != ScopeAccessToken {
		return "", errors.New("invalid scope for token")
	}
	return claims.Subject, nil
}

// ParseRefreshToken verifies the token and returns the subject email.
func ParseRefreshToken(tokenString string) (string, error) {
	claims, err := parse(tokenString)
	if err != nil {
		return "", err
	}
	if claims.Scope != ScopeRefreshToken {
		return "", errors.New("invalid scope for token")
	}
	return claims.Subject, nil
}

// ParseEmailToken verifies a confirmation token and returns the subject email.
func ParseEmailToken(tokenString string) (string, error) {
	claims, err := parse(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
