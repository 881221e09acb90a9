package security

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func SignAccessToken(userID string) (string, error) {
	secret := os.Getenv("JWT_ACCESS_SECRET")
	if secret == "" {
		return "", errors.New("JWT_ACCESS_SECRET not set")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"exp":  time.Now().Add(15 * time.Minute).Unix(),
		"iat":  time.Now().Unix(),
		"type": "access",
	})
	return token.SignedString([]byte(secret))
}

func SignRefreshToken(userID string) (string, error) {
	secret := os.Getenv("JWT_REFRESH_SECRET")
	if secret == "" {
		return "", errors.New("JWT_REFRESH_SECRET not set")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"exp":  time.Now().Add(7 * 24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
		"type": "refresh",
	})
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken parses and validates an access token and returns the
// user id it was issued for.
func VerifyAccessToken(tokenStr string) (string, error) {
	return verifyToken(tokenStr, os.Getenv("JWT_ACCESS_SECRET"), "access")
}

// VerifyRefreshToken parses and validates a refresh token and returns the
// user id it was issued for.
func VerifyRefreshToken(tokenStr string) (string, error) {
	return verifyToken(tokenStr, os.Getenv("JWT_REFRESH_SECRET"), "refresh")
}

func verifyToken(tokenStr, secret, wantType string) (string, error) {
	if secret == "" {
		return "", errors.New("JWT secret not set")
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != wantType {
		return "", errors.New("invalid token type")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("missing subject")
	}

	return sub, nil
}
