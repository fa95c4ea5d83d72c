// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.KeyAlias == "" {
		return fmt.Errorf("%w: key alias is empty", ErrInvalidAppConfigs)
	}
	if cfg.App.DeviceSecret == "" {
		return fmt.Errorf("%w: device secret is empty", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database dsn is empty", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Files.BackupDir == "" || cfg.Storage.Files.KeystoreDir == "" {
		return fmt.Errorf("%w: backup and keystore directories are required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Files.BackupDir == cfg.Storage.Files.KeystoreDir {
		return fmt.Errorf("%w: keystore must not share the backup directory", ErrInvalidStorageConfigs)
	}

	if cfg.Workers.OperationTimeout < 0 {
		return fmt.Errorf("%w: negative operation timeout", ErrInvalidWorkerConfigs)
	}

	return nil
}
