// Package common defines shared constants and sentinel errors used across
// client and server layers of ragrelay. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Transport credential errors.
	ErrDecoding       = errors.New("invalid credential encoding")
	ErrAuthentication = errors.New("credential authentication failed")
	ErrInvalidKey     = errors.New("invalid transport key")

	// Downstream credential errors.
	ErrKeyLoad = errors.New("public key unavailable")

	// Downstream API errors.
	ErrMalformedResponse    = errors.New("malformed downstream response")
	ErrMissingAuthorization = errors.New("missing Authorization header")
	ErrEmptyToken           = errors.New("response carries no token")
)
