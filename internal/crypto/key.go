// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

const (
	// KeySize is the length of the backup key in bytes (AES-256).
	KeySize = 32

	// NonceSize is the length of the GCM nonce in bytes.
	NonceSize = 12

	// TagSize is the length of the GCM authentication tag in bytes.
	TagSize = 16
)

// KeyPurpose is a bit set of operations a sealed key may be used for.
type KeyPurpose uint8

const (
	PurposeEncrypt KeyPurpose = 1 << iota
	PurposeDecrypt
)

// KeyParams describes how a sealed key is configured. Backup keys are
// AES-256 keys restricted to GCM without padding, usable for both encryption
// and decryption, and usable without user re-authentication so that backups
// can be created in the background.
type KeyParams struct {
	Algorithm                  string     `json:"algorithm"`
	SizeBits                   int        `json:"size_bits"`
	BlockMode                  string     `json:"block_mode"`
	Padding                    string     `json:"padding"`
	Purposes                   KeyPurpose `json:"purposes"`
	UserAuthenticationRequired bool       `json:"user_authentication_required"`
}

// BackupKeyParams returns the parameters every backup key is sealed with.
func BackupKeyParams() KeyParams {
	return KeyParams{
		Algorithm: "AES",
		SizeBits:  KeySize * 8,
		BlockMode: "GCM",
		Padding:   "NoPadding",
		Purposes:  PurposeEncrypt | PurposeDecrypt,
	}
}

// SecretKey is an opaque handle to the backup key. The raw key bytes are
// consumed when the handle is built and are not reachable from it.
type SecretKey struct {
	alias string
	aead  cipher.AEAD
}

// Alias returns the alias the key is sealed under.
func (k *SecretKey) Alias() string {
	return k.alias
}

// newSecretKey builds the AEAD for raw and wipes raw afterwards.
func newSecretKey(alias string, raw []byte) (*SecretKey, error) {
	defer wipe(raw)

	if len(raw) != KeySize {
		return nil, fmt.Errorf("invalid key length: %d", len(raw))
	}

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &SecretKey{alias: alias, aead: gcm}, nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
