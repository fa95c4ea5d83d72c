package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// blobEncoding rejects non-canonical padding bits so that every change to
// the text changes the decoded bytes or fails decoding.
var blobEncoding = base64.StdEncoding.Strict()

// aesGCMCodec is the AES-256-GCM implementation of [CipherCodec].
type aesGCMCodec struct {
	random io.Reader
}

// NewCipherCodec constructs the AES-256-GCM [CipherCodec].
func NewCipherCodec() CipherCodec {
	return &aesGCMCodec{random: rand.Reader}
}

// Encrypt implements [CipherCodec]. The blob is
// base64(nonce ‖ ciphertext ‖ tag) with no associated data.
func (c *aesGCMCodec) Encrypt(plaintext []byte, key *SecretKey) (string, error) {
	if key == nil {
		return "", ErrNilKey
	}

	blob := make([]byte, NonceSize, NonceSize+len(plaintext)+TagSize)
	if _, err := io.ReadFull(c.random, blob); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob = key.aead.Seal(blob, blob[:NonceSize], plaintext, nil)
	return blobEncoding.EncodeToString(blob), nil
}

// Decrypt implements [CipherCodec].
func (c *aesGCMCodec) Decrypt(encoded string, key *SecretKey) ([]byte, error) {
	if key == nil {
		return nil, ErrNilKey
	}

	blob, err := blobEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrAuthenticationFailed, err)
	}

	if len(blob) < NonceSize+TagSize {
		return nil, fmt.Errorf("%w: %d bytes, want at least %d", ErrMalformedBlob, len(blob), NonceSize+TagSize)
	}

	nonce, ciphertext := blob[:NonceSize], blob[NonceSize:]
	plaintext, err := key.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	return plaintext, nil
}

// LooksEncrypted implements [CipherCodec]. Text whose trimmed form starts
// with a JSON object delimiter is plaintext; anything else is a blob.
func (c *aesGCMCodec) LooksEncrypted(text string) bool {
	return !strings.HasPrefix(strings.TrimSpace(text), "{")
}
