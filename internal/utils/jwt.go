package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/dashboard-server/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned by [InspectToken] when the token is not a
// well-formed JWT.
var ErrNotJWT = errors.New("token is not a JWT")

// InspectToken decodes the claims of tokenString without verifying its
// signature. The dashboard never holds the signing key; the claims are only
// used to report the subject and expiry of the configured access token.
//
// Expired is computed against now. A token without an exp claim never
// expires.
//
// Example usage:
//
//	info, err := utils.InspectToken(accessToken, time.Now())
//	if err == nil && info.Expired {
//	    // warn about a stale token
//	}
func InspectToken(tokenString string, now time.Time) (models.TokenInfo, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return models.TokenInfo{}, ErrNotJWT
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return models.TokenInfo{}, fmt.Errorf("%w: %w", ErrNotJWT, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.TokenInfo{}, fmt.Errorf("%w: invalid token claims", ErrNotJWT)
	}

	info := models.TokenInfo{IsJWT: true}

	if info.Subject, err = claims.GetSubject(); err != nil {
		return models.TokenInfo{}, fmt.Errorf("error reading subject: %w", err)
	}
	if info.Issuer, err = claims.GetIssuer(); err != nil {
		return models.TokenInfo{}, fmt.Errorf("error reading issuer: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return models.TokenInfo{}, fmt.Errorf("error reading expiration time: %w", err)
	}
	if exp != nil {
		expiresAt := exp.UTC()
		info.ExpiresAt = &expiresAt
		info.Expired = !now.Before(expiresAt)
	}

	return info, nil
}
