package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"campwise/config"
	"campwise/models"
)

// GenerateCapabilityToken signs a bearer token carrying the caller's
// scheduling capabilities. Role-to-capability mapping happens in the auth
// collaborator; this is used by it and by tests.
func GenerateCapabilityToken(subject string, capability models.Capability, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":          subject,
		"canEdit":      capability.CanEdit,
		"canDeleteDay": capability.CanDeleteDay,
		"iat":          time.Now().Unix(),
		"exp":          time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ParseCapabilityToken validates a token string and extracts the capability
// claims. Absent claims default to false, so an unrelated but valid token
// yields a read-only capability.
func ParseCapabilityToken(tokenString string) (models.Capability, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return models.Capability{}, err
	}
	if !token.Valid {
		return models.Capability{}, errors.New("invalid token")
	}

	capability := models.Capability{}
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if v, ok := claims["canEdit"].(bool); ok {
			capability.CanEdit = v
		}
		if v, ok := claims["canDeleteDay"].(bool); ok {
			capability.CanDeleteDay = v
		}
	}
	return capability, nil
}
