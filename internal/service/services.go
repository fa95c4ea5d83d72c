package service

import (
	"github.com/MKhiriev/go-shift-keeper/internal/crypto"
	"github.com/MKhiriev/go-shift-keeper/internal/logger"
	"github.com/MKhiriev/go-shift-keeper/internal/snapshot"
	"github.com/MKhiriev/go-shift-keeper/internal/store"
	"github.com/MKhiriev/go-shift-keeper/internal/validators"
)

type Services struct {
	BackupEngine BackupEngine
}

// NewServices wires the backup engine of userID with the production codec,
// serializer and validator.
func NewServices(userID int64, storages *store.Storages, vault crypto.KeyVault, logger *logger.Logger, opts ...EngineOption) *Services {
	return &Services{
		BackupEngine: NewBackupEngine(
			userID,
			storages,
			vault,
			crypto.NewCipherCodec(),
			snapshot.NewSerializer(),
			validators.NewSnapshotValidator(),
			logger,
			opts...,
		),
	}
}
