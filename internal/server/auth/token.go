// Package auth implements the session token codec and the password hashing
// primitive. The codec is pure and stateless: possession of a well-formed,
// correctly signed, unexpired token is the proof of authentication, so
// nothing here ever touches storage.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dvelasco/recetario/internal/common"
)

// Codec signs and verifies session tokens (HS256). The signing secret and
// validity window are fixed at construction; a Codec is safe for concurrent
// use.
type Codec struct {
	secret   []byte
	validity time.Duration
}

func NewCodec(secret []byte, validity time.Duration) *Codec {
	return &Codec{secret: secret, validity: validity}
}

// Issue produces a signed token for the given subject identity with
// issued-at now and expiry now+validity.
func (c *Codec) Issue(subject string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.validity)),
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", err
	}

	return signed, nil
}

// Verify parses and validates a token and returns its subject identity.
// Failures map onto the sentinel taxonomy: common.ErrMalformedToken for
// anything that does not parse into the expected claim shape,
// common.ErrBadSignature for a signature mismatch, common.ErrTokenExpired
// once the expiry has passed, and common.ErrMissingSubject when the subject
// claim is absent.
func (c *Codec) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", common.ErrBadSignature
		default:
			return "", common.ErrMalformedToken
		}
	}

	if !token.Valid || claims.IssuedAt == nil {
		return "", common.ErrMalformedToken
	}
	if claims.Subject == "" {
		return "", common.ErrMissingSubject
	}

	return claims.Subject, nil
}
