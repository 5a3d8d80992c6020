package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The portal issues exactly one kind of token: a shared "metrics" scope for
// the browser/portal pair. There is no per-user identity and no revocation
// store; compromise response is rotating the shared secret.
const (
	TokenSubject = "metrics-portal"
	TokenScope   = "metrics"
)

var (
	// ErrTokenExpired means the token was well-formed and correctly signed
	// but its expiry has passed.
	ErrTokenExpired = errors.New("session expired")

	// ErrTokenInvalid covers every other verification failure. Malformed
	// payloads and bad signatures are deliberately indistinguishable so the
	// error cannot be used as an oracle.
	ErrTokenInvalid = errors.New("invalid authentication")
)

type PortalClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

func IssueToken(secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := PortalClaims{
		Scope: TokenScope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   TokenSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}
	return signed, nil
}

func ParseToken(tokenStr string, secret string) (*PortalClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &PortalClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*PortalClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
