// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// keyWrapper protects key material at rest in the file keystore. A
// key-encryption key (KEK) is derived from the device secret and a per-key
// salt with Argon2id; the key is then sealed with AES-256-GCM under the KEK,
// bound to its alias as associated data:
//
//	KEK     = Argon2id(deviceSecret, salt)
//	wrapped = nonce ‖ AES-GCM(KEK, key, aad = alias)
type keyWrapper struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

const saltSize = 16

// newKeyWrapper returns a wrapper with the Argon2id parameters recommended
// by OWASP (2024): 1 iteration, 64 MiB, 4 threads.
func newKeyWrapper() keyWrapper {
	return keyWrapper{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}
}

// generateSalt reads a fresh random salt. The salt is not secret.
func (w keyWrapper) generateSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// deriveKEK derives the 256-bit key-encryption key for salt.
func (w keyWrapper) deriveKEK(deviceSecret string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(deviceSecret),
		salt,
		w.argonTime,
		w.argonMemory,
		w.argonThreads,
		KeySize,
	)
}

// wrap seals key under kek; the result is nonce ‖ ciphertext.
func (w keyWrapper) wrap(key, kek []byte, alias string) ([]byte, error) {
	gcm, err := newGCM(kek)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, key, []byte(alias)), nil
}

// unwrap opens a blob produced by wrap. An error here almost always means
// a wrong device secret or a file moved to another alias.
func (w keyWrapper) unwrap(wrapped, kek []byte, alias string) ([]byte, error) {
	gcm, err := newGCM(kek)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(wrapped) < nonceSize {
		return nil, fmt.Errorf("wrapped key too short")
	}

	nonce, ciphertext := wrapped[:nonceSize], wrapped[nonceSize:]
	key, err := gcm.Open(nil, nonce, ciphertext, []byte(alias))
	if err != nil {
		return nil, fmt.Errorf("unwrap key: %w", err)
	}

	return key, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
