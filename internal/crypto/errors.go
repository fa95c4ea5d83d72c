package crypto

import "errors"

// Sentinel errors returned by the key vault and the cipher codec. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrKeyUnavailable is returned when the secure store cannot be read,
	// holds corrupted material, or holds a key with the wrong parameters.
	// Callers must not fall back to a non-sealed key.
	ErrKeyUnavailable = errors.New("backup key is unavailable")

	// ErrAuthenticationFailed is returned when a blob does not verify under
	// the key: the payload was tampered with, truncated, or sealed under a
	// different key.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrMalformedBlob is returned when a decoded blob is too short to hold
	// a nonce and an authentication tag.
	ErrMalformedBlob = errors.New("malformed encrypted blob")

	// ErrNilKey is returned when a codec operation is called without a key.
	ErrNilKey = errors.New("secret key is nil")
)

// Secure store errors.
var (
	// ErrKeyNotFound is returned by [SecureStore.Load] when nothing is sealed
	// under the alias.
	ErrKeyNotFound = errors.New("no key sealed under alias")

	// ErrKeyExists is returned by [SecureStore.Seal] when another key is
	// already sealed under the alias.
	ErrKeyExists = errors.New("key already sealed under alias")

	// ErrInvalidAlias is returned for empty or path-like aliases.
	ErrInvalidAlias = errors.New("invalid key alias")
)
