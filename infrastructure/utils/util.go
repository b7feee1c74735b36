package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"trending-ingest/infrastructure/logger"
)

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}

// GenerateToken signs payload as an HS256 JWT.
func GenerateToken(payload map[string]interface{}, secretKey string) (string, error) {
	var claims jwt.MapClaims = payload
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while generate token")
		return "", err
	}
	return tokenString, nil
}

// GenerateTriggerToken returns a token for subject that expires after ttl.
func GenerateTriggerToken(subject string, ttl time.Duration, secretKey string) (string, error) {
	now := GetCurrentTime()
	return GenerateToken(map[string]interface{}{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}, secretKey)
}
