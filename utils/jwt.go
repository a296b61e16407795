package utils

import (
	"fmt"
	"time"

	"ticketly/config"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken signs a JWT carrying the user id, expiring per configuration.
func GenerateToken(userID string) (string, error) {
	expire := time.Duration(config.AppConfig.JWTExpireHours) * time.Hour
	claims := jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(expire).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// GenerateResetToken signs a short-lived token authorizing a password reset
// for the given email after OTP verification.
func GenerateResetToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"scope": "reset",
		"exp":   time.Now().Add(15 * time.Minute).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign reset token: %w", err)
	}
	return signed, nil
}

// ExtractEmailFromResetToken validates a reset token and returns the email it
// was issued for.
func ExtractEmailFromResetToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid reset token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["scope"] != "reset" {
		return "", fmt.Errorf("invalid reset token")
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", fmt.Errorf("reset token missing email")
	}
	return email, nil
}

// ExtractUserIDFromToken validates the token signature and expiry and returns
// the embedded user id.
func ExtractUserIDFromToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}
	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("token missing user id")
	}
	return id, nil
}
