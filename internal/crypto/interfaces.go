package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyVault hands out the single long-lived backup key of the installation.
//
// The key is sealed in a [SecureStore] under a fixed alias. The vault never
// exposes raw key material: callers receive an opaque [SecretKey] handle that
// can only be used through a [CipherCodec].
type KeyVault interface {
	// GetOrCreateKey returns the sealed key, generating and sealing a new
	// AES-256 key on first use. The call is idempotent. It fails with
	// [ErrKeyUnavailable] if the store is unreachable or corrupted.
	GetOrCreateKey(ctx context.Context) (*SecretKey, error)

	// Close drops the cached key handle. A later GetOrCreateKey reloads it
	// from the store.
	Close() error
}

// CipherCodec performs authenticated encryption of opaque payloads and
// produces self-contained, text-encoded blobs:
//
//	base64( nonce (12 bytes) ‖ ciphertext ‖ tag (16 bytes) )
type CipherCodec interface {
	// Encrypt seals plaintext under key with a fresh random nonce and
	// returns the base64-encoded blob.
	Encrypt(plaintext []byte, key *SecretKey) (string, error)

	// Decrypt decodes and opens a blob produced by Encrypt. It fails with
	// [ErrMalformedBlob] if the blob is too short and with
	// [ErrAuthenticationFailed] if the text is corrupted or the tag does not
	// verify. It never returns partial plaintext.
	Decrypt(blob string, key *SecretKey) ([]byte, error)

	// LooksEncrypted reports whether text should be treated as an encrypted
	// blob rather than a plaintext JSON document.
	LooksEncrypted(text string) bool
}

// SecureStore is the platform facility that holds key material. Real
// targets back it with a hardware keystore; this module ships a file-backed
// and an in-memory implementation.
type SecureStore interface {
	// Load returns the key material and parameters sealed under alias, or
	// [ErrKeyNotFound].
	Load(ctx context.Context, alias string) ([]byte, KeyParams, error)

	// Seal stores key under alias if and only if nothing is sealed there
	// yet; otherwise it returns [ErrKeyExists]. The operation is atomic.
	Seal(ctx context.Context, alias string, key []byte, params KeyParams) error
}
