// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-shift-keeper/internal/logger"
)

// keyVault is the default implementation of [KeyVault]. The key handle is
// created lazily on the first GetOrCreateKey call and cached until Close.
type keyVault struct {
	store  SecureStore
	alias  string
	random io.Reader
	logger *logger.Logger

	mu  sync.Mutex
	key *SecretKey
}

// NewKeyVault constructs a [KeyVault] that seals its key in store under
// alias.
func NewKeyVault(store SecureStore, alias string, log *logger.Logger) KeyVault {
	return &keyVault{
		store:  store,
		alias:  alias,
		random: rand.Reader,
		logger: log,
	}
}

// GetOrCreateKey implements [KeyVault].
func (v *keyVault) GetOrCreateKey(ctx context.Context) (*SecretKey, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.key != nil {
		return v.key, nil
	}

	key, err := v.loadOrCreate(ctx)
	if err != nil {
		v.logger.Err(err).
			Str("func", "keyVault.GetOrCreateKey").
			Str("alias", v.alias).
			Msg("backup key is unavailable")
		return nil, err
	}

	v.key = key
	return key, nil
}

func (v *keyVault) loadOrCreate(ctx context.Context) (*SecretKey, error) {
	key, err := v.load(ctx)
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		return nil, err
	}

	raw := make([]byte, KeySize)
	if _, err := io.ReadFull(v.random, raw); err != nil {
		return nil, fmt.Errorf("%w: generate key: %w", ErrKeyUnavailable, err)
	}

	sealErr := v.store.Seal(ctx, v.alias, raw, BackupKeyParams())
	switch {
	case sealErr == nil:
		v.logger.Info().
			Str("func", "keyVault.loadOrCreate").
			Str("alias", v.alias).
			Msg("new backup key sealed")
		return v.toSecretKey(raw)
	case errors.Is(sealErr, ErrKeyExists):
		// another creator sealed first; its key is the one to use
		wipe(raw)
		return v.load(ctx)
	default:
		wipe(raw)
		return nil, fmt.Errorf("%w: seal key: %w", ErrKeyUnavailable, sealErr)
	}
}

func (v *keyVault) load(ctx context.Context) (*SecretKey, error) {
	raw, params, err := v.store.Load(ctx, v.alias)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: load key: %w", ErrKeyUnavailable, err)
	}

	if params != BackupKeyParams() {
		wipe(raw)
		return nil, fmt.Errorf("%w: key %q is not configured for AES-256-GCM backups", ErrKeyUnavailable, v.alias)
	}

	return v.toSecretKey(raw)
}

func (v *keyVault) toSecretKey(raw []byte) (*SecretKey, error) {
	key, err := newSecretKey(v.alias, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyUnavailable, err)
	}
	return key, nil
}

// Close implements [KeyVault].
func (v *keyVault) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.key = nil
	return nil
}
