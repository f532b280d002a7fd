package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo describes the stored credential without verifying it; the
// client does not hold the signing key.
type TokenInfo struct {
	Present   bool
	JWT       bool
	ExpiresAt time.Time
}

func (t TokenInfo) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && now.After(t.ExpiresAt)
}

// TokenInfo reads the durable slot and decodes the token's claims when it
// is a JWT. Opaque tokens are reported as present with JWT false.
func (s *Store) TokenInfo(ctx context.Context) (TokenInfo, error) {
	tok, err := s.tokens.Get(ctx)
	if err != nil {
		return TokenInfo{}, storageFailure("token info", err)
	}
	if tok == "" {
		return TokenInfo{}, nil
	}
	return inspectToken(tok), nil
}

func inspectToken(tok string) TokenInfo {
	info := TokenInfo{Present: true}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return info
	}
	info.JWT = true
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info
}

func (t TokenInfo) String() string {
	switch {
	case !t.Present:
		return "no token"
	case !t.JWT:
		return "opaque token"
	case t.ExpiresAt.IsZero():
		return "JWT without expiry"
	default:
		return fmt.Sprintf("JWT expiring %s", t.ExpiresAt.Format(time.RFC3339))
	}
}
