package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"lipo/config"
)

// secretKey reads the signing secret from the loaded config on every call,
// so tokens honor config changes instead of whatever the environment held at
// process start.
func secretKey() []byte {
	if s := config.AppConfig.JWTSecret; s != "" {
		return []byte(s)
	}
	return []byte("lipo-dev-secret")
}

// GenerateToken creates a signed JWT token with the given subject (a customer
// or provider id) and role. The token expires after the specified duration.
func GenerateToken(subject, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// SubjectAndRole extracts the subject and role claims from a validated token.
func SubjectAndRole(token *jwt.Token) (string, string, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" {
		return "", "", errors.New("token missing subject")
	}
	return sub, role, nil
}
