package crypto

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MKhiriev/go-shift-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap Argon2id parameters keep the tests fast
func newTestFileStore(t *testing.T, dir, secret string) SecureStore {
	t.Helper()
	s, err := NewFileSecureStore(dir, secret, WithArgon2Params(1, 1024, 1))
	require.NoError(t, err)
	return s
}

func TestFileSecureStore_SealAndLoad(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := newTestFileStore(t, dir, "device")
	key := bytes.Repeat([]byte{0x42}, KeySize)

	require.NoError(t, store.Seal(ctx, "backup", key, BackupKeyParams()))

	got, params, err := store.Load(ctx, "backup")
	require.NoError(t, err)
	assert.Equal(t, key, got)
	assert.Equal(t, BackupKeyParams(), params)

	data, err := os.ReadFile(filepath.Join(dir, "backup.key"))
	require.NoError(t, err)
	assert.False(t, bytes.Contains(data, key), "raw key must not be stored in the clear")
}

func TestFileSecureStore_LoadMissing(t *testing.T) {
	store := newTestFileStore(t, t.TempDir(), "device")

	_, _, err := store.Load(context.Background(), "backup")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFileSecureStore_SealTwice(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t, t.TempDir(), "device")

	require.NoError(t, store.Seal(ctx, "backup", make([]byte, KeySize), BackupKeyParams()))
	err := store.Seal(ctx, "backup", bytes.Repeat([]byte{1}, KeySize), BackupKeyParams())
	assert.ErrorIs(t, err, ErrKeyExists)

	got, _, err := store.Load(ctx, "backup")
	require.NoError(t, err)
	assert.Equal(t, make([]byte, KeySize), got, "first sealed key must be kept")
}

func TestFileSecureStore_NoTempFilesLeft(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := newTestFileStore(t, dir, "device")

	require.NoError(t, store.Seal(ctx, "backup", make([]byte, KeySize), BackupKeyParams()))
	_ = store.Seal(ctx, "backup", make([]byte, KeySize), BackupKeyParams())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "backup.key", entries[0].Name())
}

func TestFileSecureStore_WrongDeviceSecret(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	require.NoError(t, newTestFileStore(t, dir, "device-a").Seal(ctx, "backup", make([]byte, KeySize), BackupKeyParams()))

	_, _, err := newTestFileStore(t, dir, "device-b").Load(ctx, "backup")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrKeyNotFound)
}

func TestFileSecureStore_MovedToOtherAlias(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := newTestFileStore(t, dir, "device")

	require.NoError(t, store.Seal(ctx, "a", make([]byte, KeySize), BackupKeyParams()))
	require.NoError(t, os.Rename(filepath.Join(dir, "a.key"), filepath.Join(dir, "b.key")))

	_, _, err := store.Load(ctx, "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unwrap key")
}

func TestFileSecureStore_CorruptedFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "backup.key"), []byte("garbage"), 0o600))

	_, _, err := newTestFileStore(t, dir, "device").Load(ctx, "backup")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode key file")
}

func TestFileSecureStore_UnsupportedVersion(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "backup.key"), []byte(`{"version":99}`), 0o600))

	_, _, err := newTestFileStore(t, dir, "device").Load(ctx, "backup")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported key file version")
}

func TestFileSecureStore_InvalidAlias(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t, t.TempDir(), "device")

	for _, alias := range []string{"", ".", "..", "../x", `a\b`, ".hidden"} {
		assert.ErrorIs(t, store.Seal(ctx, alias, make([]byte, KeySize), BackupKeyParams()), ErrInvalidAlias, alias)
		_, _, err := store.Load(ctx, alias)
		assert.ErrorIs(t, err, ErrInvalidAlias, alias)
	}
}

func TestFileSecureStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := newTestFileStore(t, t.TempDir(), "device")

	assert.ErrorIs(t, store.Seal(ctx, "backup", make([]byte, KeySize), BackupKeyParams()), context.Canceled)
	_, _, err := store.Load(ctx, "backup")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewFileSecureStore_Validation(t *testing.T) {
	_, err := NewFileSecureStore("", "secret")
	assert.Error(t, err)

	_, err = NewFileSecureStore(t.TempDir(), "")
	assert.Error(t, err)
}

func TestFileSecureStore_ConcurrentVaultsAgreeOnKey(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	codec := NewCipherCodec()

	var wg sync.WaitGroup
	keys := make([]*SecretKey, 4)
	for i := range keys {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			vault := NewKeyVault(newTestFileStore(t, dir, "device"), "backup", logger.Nop())
			k, err := vault.GetOrCreateKey(ctx)
			assert.NoError(t, err)
			keys[i] = k
		}(i)
	}
	wg.Wait()

	blob, err := codec.Encrypt([]byte("shared"), keys[0])
	require.NoError(t, err)
	for _, k := range keys[1:] {
		got, err := codec.Decrypt(blob, k)
		require.NoError(t, err)
		assert.Equal(t, []byte("shared"), got)
	}
}

func TestMemorySecureStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySecureStore()
	key := bytes.Repeat([]byte{7}, KeySize)

	require.NoError(t, store.Seal(ctx, "backup", key, BackupKeyParams()))
	key[0] = 0

	got, _, err := store.Load(ctx, "backup")
	require.NoError(t, err)
	assert.Equal(t, byte(7), got[0])

	got[1] = 0
	again, _, err := store.Load(ctx, "backup")
	require.NoError(t, err)
	assert.Equal(t, byte(7), again[1])
}
