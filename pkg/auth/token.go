package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo summarises the claims carried by a bearer token.
type TokenInfo struct {
	Subject   string
	Issuer    string
	ExpiresAt *time.Time
	Expired   bool
}

// Inspect decodes the bearer token without verifying its signature. The
// client never enforces expiry; an expired token still goes to the wire and
// fails there like any other request. This exists only so operators can see
// who they are logged in as.
func Inspect(token string) (*TokenInfo, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer"))
	if trimmed == "" {
		return nil, fmt.Errorf("no token configured")
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(trimmed, claims); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}

	info := &TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if iss, err := claims.GetIssuer(); err == nil {
		info.Issuer = iss
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		info.ExpiresAt = &t
		info.Expired = t.Before(time.Now())
	}

	return info, nil
}
