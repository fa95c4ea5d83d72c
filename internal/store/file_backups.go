package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-shift-keeper/internal/logger"
)

const (
	backupPrefix = "backup-"
	backupSuffix = ".bak"

	// backupTimeLayout sorts lexicographically in chronological order.
	backupTimeLayout = "20060102T150405.000000000Z"
)

// backupFileStorage is the filesystem implementation of [BackupFileStorage].
// Backups are written to a hidden temp file in the same directory and renamed
// into place, so a crash or cancellation never leaves a partial backup
// behind under a backup name.
type backupFileStorage struct {
	dir    string
	now    func() time.Time
	logger *logger.Logger
}

// NewBackupFileStorage returns a [BackupFileStorage] rooted at dir. The
// directory is created on first write.
func NewBackupFileStorage(dir string, log *logger.Logger) BackupFileStorage {
	return newBackupFileStorage(dir, time.Now, log)
}

func newBackupFileStorage(dir string, now func() time.Time, log *logger.Logger) *backupFileStorage {
	return &backupFileStorage{dir: dir, now: now, logger: log}
}

// BackupFileName returns the name of a backup taken at t.
func BackupFileName(t time.Time) string {
	return backupPrefix + t.UTC().Format(backupTimeLayout) + backupSuffix
}

func (b *backupFileStorage) WriteAtomic(ctx context.Context, data []byte) (path string, err error) {
	log := logger.FromContext(ctx)

	if err = ctx.Err(); err != nil {
		return "", err
	}
	if err = os.MkdirAll(b.dir, 0o700); err != nil {
		log.Err(err).Str("func", "backupFileStorage.WriteAtomic").Msg("failed to create backup dir")
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	tmpPath := filepath.Join(b.dir, ".backup-"+uuid.NewString()+".tmp")
	tmp, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		log.Err(err).Str("func", "backupFileStorage.WriteAtomic").Msg("failed to create temp file")
		return "", fmt.Errorf("create temp file: %w", err)
	}

	// from here on every failure removes the temp file
	defer func() {
		if err != nil {
			tmp.Close()
			if rmErr := os.Remove(tmpPath); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
				log.Err(rmErr).Str("func", "backupFileStorage.WriteAtomic").Str("tmp", tmpPath).Msg("failed to remove temp file")
			}
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return "", fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	// last chance to give up without publishing anything
	if err = ctx.Err(); err != nil {
		return "", err
	}

	path = filepath.Join(b.dir, BackupFileName(b.now()))
	if err = os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("rename temp file: %w", err)
	}

	log.Info().Str("func", "backupFileStorage.WriteAtomic").Str("path", path).Int("bytes", len(data)).Msg("backup file written")
	return path, nil
}

func (b *backupFileStorage) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrBackupNotFound, path)
		}
		return nil, fmt.Errorf("read backup file: %w", err)
	}
	return data, nil
}

func (b *backupFileStorage) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(b.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read backup dir: %w", err)
	}

	type backup struct {
		path  string
		taken time.Time
	}

	backups := make([]backup, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		taken, ok := parseBackupFileName(entry.Name())
		if !ok {
			continue
		}
		backups = append(backups, backup{path: filepath.Join(b.dir, entry.Name()), taken: taken})
	}

	slices.SortFunc(backups, func(x, y backup) int {
		if c := y.taken.Compare(x.taken); c != 0 {
			return c
		}
		return strings.Compare(y.path, x.path)
	})

	paths := make([]string, len(backups))
	for i, bk := range backups {
		paths[i] = bk.path
	}
	return paths, nil
}

func parseBackupFileName(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, backupSuffix) {
		return time.Time{}, false
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, backupPrefix), backupSuffix)
	t, err := time.Parse(backupTimeLayout, stamp)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
