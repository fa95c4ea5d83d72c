package crypto

import (
	"context"
	"sync"
)

type memoryEntry struct {
	key    []byte
	params KeyParams
}

// memorySecureStore keeps sealed keys in process memory. It backs tests and
// ephemeral sessions; nothing survives a restart.
type memorySecureStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

// NewMemorySecureStore returns an empty in-memory [SecureStore].
func NewMemorySecureStore() SecureStore {
	return &memorySecureStore{entries: make(map[string]memoryEntry)}
}

func (m *memorySecureStore) Load(_ context.Context, alias string) ([]byte, KeyParams, error) {
	if err := validateAlias(alias); err != nil {
		return nil, KeyParams{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[alias]
	if !ok {
		return nil, KeyParams{}, ErrKeyNotFound
	}
	return append([]byte(nil), entry.key...), entry.params, nil
}

func (m *memorySecureStore) Seal(_ context.Context, alias string, key []byte, params KeyParams) error {
	if err := validateAlias(alias); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[alias]; ok {
		return ErrKeyExists
	}
	m.entries[alias] = memoryEntry{key: append([]byte(nil), key...), params: params}
	return nil
}
