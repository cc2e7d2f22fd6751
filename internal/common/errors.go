// Package common defines shared constants and sentinel errors used across
// the recetario server layers. Callers should use errors.Is to match these
// values; the HTTP layer maps each of them to exactly one status family.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")

	// Credential issuer errors.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token verification errors, each distinct so the authenticator can
	// react per class (expired prompts a re-login, the rest do not).
	ErrMissingToken   = errors.New("missing token")
	ErrMalformedToken = errors.New("malformed token")
	ErrBadSignature   = errors.New("bad token signature")
	ErrTokenExpired   = errors.New("token expired")
	ErrMissingSubject = errors.New("token subject missing")

	// Authorization errors.
	ErrForbidden = errors.New("forbidden")

	// Input validation errors.
	ErrValidation = errors.New("validation error")

	// Anything unexpected. Detail is logged server-side only.
	ErrInternal = errors.New("internal error")
)
