// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const keyFileVersion = 1

// keyFile is the on-disk layout of one sealed key.
type keyFile struct {
	Version int       `json:"version"`
	Params  KeyParams `json:"params"`
	Salt    []byte    `json:"salt"`
	Wrapped []byte    `json:"wrapped"`
}

// fileSecureStore is a directory keystore: every alias is one file holding
// the key parameters and the key wrapped under a KEK derived from the device
// secret. It stands in for the platform keystore on desktop targets.
type fileSecureStore struct {
	dir          string
	deviceSecret string
	wrapper      keyWrapper
}

// FileStoreOption customises a file-backed [SecureStore].
type FileStoreOption func(*fileSecureStore)

// WithArgon2Params overrides the Argon2id cost parameters used to derive
// the key-encryption key.
func WithArgon2Params(time, memoryKiB uint32, threads uint8) FileStoreOption {
	return func(s *fileSecureStore) {
		s.wrapper = keyWrapper{argonTime: time, argonMemory: memoryKiB, argonThreads: threads}
	}
}

// NewFileSecureStore returns a [SecureStore] rooted at dir.
func NewFileSecureStore(dir, deviceSecret string, opts ...FileStoreOption) (SecureStore, error) {
	if dir == "" {
		return nil, errors.New("keystore directory is empty")
	}
	if deviceSecret == "" {
		return nil, errors.New("device secret is empty")
	}

	s := &fileSecureStore{
		dir:          dir,
		deviceSecret: deviceSecret,
		wrapper:      newKeyWrapper(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *fileSecureStore) path(alias string) string {
	return filepath.Join(s.dir, alias+".key")
}

func (s *fileSecureStore) Load(ctx context.Context, alias string) ([]byte, KeyParams, error) {
	if err := validateAlias(alias); err != nil {
		return nil, KeyParams{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, KeyParams{}, err
	}

	data, err := os.ReadFile(s.path(alias))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, KeyParams{}, ErrKeyNotFound
		}
		return nil, KeyParams{}, fmt.Errorf("read key file: %w", err)
	}

	var kf keyFile
	if err := json.Unmarshal(data, &kf); err != nil {
		return nil, KeyParams{}, fmt.Errorf("decode key file: %w", err)
	}
	if kf.Version != keyFileVersion {
		return nil, KeyParams{}, fmt.Errorf("unsupported key file version %d", kf.Version)
	}

	kek := s.wrapper.deriveKEK(s.deviceSecret, kf.Salt)
	defer wipe(kek)

	key, err := s.wrapper.unwrap(kf.Wrapped, kek, alias)
	if err != nil {
		return nil, KeyParams{}, err
	}

	return key, kf.Params, nil
}

// Seal writes the key file to a temporary path and hard-links it into
// place; the link fails if the alias is already taken, which makes creation
// atomic across processes.
func (s *fileSecureStore) Seal(ctx context.Context, alias string, key []byte, params KeyParams) error {
	if err := validateAlias(alias); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create keystore dir: %w", err)
	}

	salt, err := s.wrapper.generateSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	kek := s.wrapper.deriveKEK(s.deviceSecret, salt)
	defer wipe(kek)

	wrapped, err := s.wrapper.wrap(key, kek, alias)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(keyFile{
		Version: keyFileVersion,
		Params:  params,
		Salt:    salt,
		Wrapped: wrapped,
	})
	if err != nil {
		return fmt.Errorf("encode key file: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+alias+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp key file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp key file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp key file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp key file: %w", err)
	}

	if err := os.Link(tmpPath, s.path(alias)); err != nil {
		if errors.Is(err, os.ErrExist) {
			return ErrKeyExists
		}
		return fmt.Errorf("link key file: %w", err)
	}

	return nil
}

func validateAlias(alias string) error {
	if alias == "" || alias == "." || alias == ".." ||
		strings.ContainsAny(alias, `/\`) || strings.HasPrefix(alias, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidAlias, alias)
	}
	return nil
}
