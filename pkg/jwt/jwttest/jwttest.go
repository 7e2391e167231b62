// Package jwttest signs access tokens shaped like the identity service's,
// for tests of code that only validates them.
package jwttest

import (
	"testing"
	"time"

	"productivity-service/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessToken returns an HS256 access token for the user and session
func AccessToken(t testing.TB, secret, issuer string, userID, sessionID uuid.UUID, ttl time.Duration) string {
	t.Helper()
	now := time.Now()

	claims := &jwt.Claims{
		UserID:    userID,
		TokenType: jwt.AccessToken,
		SessionID: sessionID,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  gojwt.NewNumericDate(now),
			NotBefore: gojwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   userID.String(),
			ID:        uuid.New().String(),
		},
	}

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign access token: %v", err)
	}
	return token
}
