package jwt

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims are the fields the gateway reads from marketplace access tokens. The id claim is
// numeric upstream but some deployments encode it as a string.
type Claims struct {
	UserID any    `json:"id,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) NumericUserID() (int64, bool) {
	switch v := c.UserID.(type) {
	case float64:
		return int64(v), true
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		return id, err == nil
	}
	if c.Subject != "" {
		id, err := strconv.ParseInt(c.Subject, 10, 64)
		return id, err == nil
	}
	return 0, false
}

// Inspector reads claims without verifying the signature. The marketplace owns the signing
// key and verifies every call; the gateway only needs exp to decide when to refresh.
type Inspector struct {
	parser *jwt.Parser
}

func NewInspector() *Inspector {
	return &Inspector{parser: jwt.NewParser()}
}

func (i *Inspector) Inspect(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := i.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ExpiresAt returns the token expiry; ok is false for tokens without an exp claim.
func (i *Inspector) ExpiresAt(tokenString string) (time.Time, bool, error) {
	claims, err := i.Inspect(tokenString)
	if err != nil {
		return time.Time{}, false, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false, nil
	}
	return claims.ExpiresAt.Time, true, nil
}

// NeedsRefresh reports whether the token expires before now+leeway.
func (i *Inspector) NeedsRefresh(tokenString string, now time.Time, leeway time.Duration) (bool, error) {
	exp, ok, err := i.ExpiresAt(tokenString)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return !now.Add(leeway).Before(exp), nil
}
