package snapshot

import "github.com/MKhiriev/go-shift-keeper/models"

// Serializer encodes and decodes [models.Snapshot] documents.
type Serializer interface {
	// Serialize builds a snapshot of the given records for userID and encodes
	// it. Soft-deleted records are expected to be part of the input.
	Serialize(userID int64, shifts []models.Shift, expenses []models.Expense, settings *models.UserSettings) ([]byte, error)

	// Deserialize decodes data produced by Serialize. Documents with a
	// missing or unknown format version fail with [ErrUnsupportedFormat].
	Deserialize(data []byte) (models.Snapshot, error)
}
