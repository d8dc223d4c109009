package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"moneybox/internal/config"
	"moneybox/internal/models"
)

// GenerateToken signs an access token for the given user claims. The signing
// secret comes from the JWT_SECRET environment variable.
func GenerateToken(claims *models.UserClaims) (string, error) {
	jwtSecret := config.GetEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		return "", errors.New("JWT_SECRET not configured")
	}

	now := time.Now()
	accessClaims := models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(15 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "moneybox-api",
			Subject:   strconv.FormatUint(uint64(claims.UserID), 10),
		},
		UserID: claims.UserID,
		Email:  claims.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	return token.SignedString([]byte(jwtSecret))
}

// ParseToken parses and validates a token string and returns its claims.
func ParseToken(tokenStr string) (*models.UserClaims, error) {
	jwtSecret := config.GetEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET not configured")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.UserClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
