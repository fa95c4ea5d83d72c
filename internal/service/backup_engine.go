package service

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/MKhiriev/go-shift-keeper/internal/crypto"
	"github.com/MKhiriev/go-shift-keeper/internal/logger"
	"github.com/MKhiriev/go-shift-keeper/internal/snapshot"
	"github.com/MKhiriev/go-shift-keeper/internal/store"
	"github.com/MKhiriev/go-shift-keeper/internal/validators"
	"github.com/MKhiriev/go-shift-keeper/models"
)

// Observer receives every state transition of the engine. It is called
// synchronously and must not block.
type Observer func(models.StateChange)

// EngineOption customises a [BackupEngine].
type EngineOption func(*backupEngine)

// WithObserver registers fn to receive state transitions.
func WithObserver(fn Observer) EngineOption {
	return func(e *backupEngine) {
		e.observer = fn
	}
}

type backupEngine struct {
	userID int64

	shifts   store.ShiftRepository
	expenses store.ExpenseRepository
	settings store.SettingsRepository
	files    store.BackupFileStorage

	vault      crypto.KeyVault
	codec      crypto.CipherCodec
	serializer snapshot.Serializer
	validator  validators.Validator

	observer Observer
	logger   *logger.Logger

	// one backup and one restore may run at the same time
	backupMu  sync.Mutex
	restoreMu sync.Mutex

	stateMu sync.RWMutex
	states  map[models.BackupOperation]models.BackupState
}

// NewBackupEngine returns the [BackupEngine] of userID.
func NewBackupEngine(
	userID int64,
	storages *store.Storages,
	vault crypto.KeyVault,
	codec crypto.CipherCodec,
	serializer snapshot.Serializer,
	validator validators.Validator,
	log *logger.Logger,
	opts ...EngineOption,
) BackupEngine {
	e := &backupEngine{
		userID:     userID,
		shifts:     storages.ShiftRepository,
		expenses:   storages.ExpenseRepository,
		settings:   storages.SettingsRepository,
		files:      storages.BackupFiles,
		vault:      vault,
		codec:      codec,
		serializer: serializer,
		validator:  validator,
		logger:     log,
		states: map[models.BackupOperation]models.BackupState{
			models.OperationBackup:  models.StateIdle,
			models.OperationRestore: models.StateIdle,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *backupEngine) State(op models.BackupOperation) models.BackupState {
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()

	if s, ok := e.states[op]; ok {
		return s
	}
	return models.StateIdle
}

func (e *backupEngine) CreateBackup(ctx context.Context) (string, error) {
	op := models.OperationBackup
	if !e.backupMu.TryLock() {
		return "", &BackupError{Kind: KindBusy, Op: op}
	}
	defer e.backupMu.Unlock()

	log := e.logger.WithOperation(string(op), e.userID)
	ctx = log.ToContext(ctx)
	e.begin(op)

	// Collecting
	e.transition(ctx, op, models.StateCollecting)
	shifts, err := e.shifts.ListAll(ctx, e.userID, true)
	if err != nil {
		return "", e.fail(ctx, op, KindStorage, err)
	}
	expenses, err := e.expenses.ListAll(ctx, e.userID, true)
	if err != nil {
		return "", e.fail(ctx, op, KindStorage, err)
	}
	allSettings, err := e.settings.ListAll(ctx, e.userID, true)
	if err != nil {
		return "", e.fail(ctx, op, KindStorage, err)
	}
	if err = ctx.Err(); err != nil {
		return "", e.fail(ctx, op, KindCancelled, err)
	}

	// Serializing
	e.transition(ctx, op, models.StateSerializing)
	settings := latestSettings(allSettings)
	// restore runs the same validation; a backup it would reject is never written
	collected := models.Snapshot{
		FormatVersion: models.CurrentSnapshotFormat,
		UserID:        e.userID,
		Shifts:        shifts,
		Expenses:      expenses,
		Settings:      settings,
	}
	if err = e.validator.Validate(ctx, collected); err != nil {
		return "", e.fail(ctx, op, KindUnsupportedFormat, err)
	}
	plaintext, err := e.serializer.Serialize(e.userID, shifts, expenses, settings)
	if err != nil {
		return "", e.fail(ctx, op, KindUnsupportedFormat, err)
	}
	if err = ctx.Err(); err != nil {
		return "", e.fail(ctx, op, KindCancelled, err)
	}

	// Encrypting
	e.transition(ctx, op, models.StateEncrypting)
	key, err := e.vault.GetOrCreateKey(ctx)
	if err != nil {
		return "", e.fail(ctx, op, KindKeyUnavailable, err)
	}
	blob, err := e.codec.Encrypt(plaintext, key)
	if err != nil {
		// a valid key only fails to encrypt when the random source does
		kind := KindStorage
		if errors.Is(err, crypto.ErrNilKey) {
			kind = KindKeyUnavailable
		}
		return "", e.fail(ctx, op, kind, err)
	}
	if err = ctx.Err(); err != nil {
		return "", e.fail(ctx, op, KindCancelled, err)
	}

	// Writing
	e.transition(ctx, op, models.StateWriting)
	path, err := e.files.WriteAtomic(ctx, []byte(blob))
	if err != nil {
		return "", e.fail(ctx, op, KindStorage, err)
	}

	e.transition(ctx, op, models.StateDone)
	log.Info().
		Str("func", "backupEngine.CreateBackup").
		Str("path", path).
		Int("shifts", len(shifts)).
		Int("expenses", len(expenses)).
		Msg("backup created")

	return path, nil
}

func (e *backupEngine) RestoreBackup(ctx context.Context, path string) (int, error) {
	op := models.OperationRestore
	if !e.restoreMu.TryLock() {
		return 0, &BackupError{Kind: KindBusy, Op: op}
	}
	defer e.restoreMu.Unlock()

	log := e.logger.WithOperation(string(op), e.userID)
	ctx = log.ToContext(ctx)
	e.begin(op)

	// Reading
	e.transition(ctx, op, models.StateReading)
	data, err := e.files.Read(ctx, path)
	if err != nil {
		return 0, e.fail(ctx, op, KindStorage, err)
	}

	plaintext := data
	if e.codec.LooksEncrypted(string(data)) {
		// Decrypting
		e.transition(ctx, op, models.StateDecrypting)
		key, err := e.vault.GetOrCreateKey(ctx)
		if err != nil {
			return 0, e.fail(ctx, op, KindKeyUnavailable, err)
		}
		plaintext, err = e.codec.Decrypt(string(data), key)
		if err != nil {
			kind := KindAuthenticationFailed
			if errors.Is(err, crypto.ErrMalformedBlob) {
				kind = KindUnsupportedFormat
			}
			return 0, e.fail(ctx, op, kind, err)
		}
	} else {
		log.Warn().
			Str("func", "backupEngine.RestoreBackup").
			Str("path", path).
			Msg("restoring legacy plaintext backup")
	}
	if err = ctx.Err(); err != nil {
		return 0, e.fail(ctx, op, KindCancelled, err)
	}

	// Deserializing
	e.transition(ctx, op, models.StateDeserializing)
	snap, err := e.serializer.Deserialize(plaintext)
	if err != nil {
		return 0, e.fail(ctx, op, KindUnsupportedFormat, err)
	}

	// Validating
	e.transition(ctx, op, models.StateValidating)
	if err = e.validator.Validate(ctx, snap); err != nil {
		return 0, e.fail(ctx, op, KindUnsupportedFormat, err)
	}

	// Merging
	e.transition(ctx, op, models.StateMerging)
	applied, err := e.merge(ctx, snap)
	if err != nil {
		log.Warn().
			Str("func", "backupEngine.RestoreBackup").
			Int("applied", applied).
			Msg("restore stopped during merge")
		return applied, e.fail(ctx, op, KindStorage, err)
	}

	e.transition(ctx, op, models.StateDone)
	log.Info().
		Str("func", "backupEngine.RestoreBackup").
		Str("path", path).
		Int("records", snap.RecordCount()).
		Int("applied", applied).
		Msg("backup restored")

	return applied, nil
}

func (e *backupEngine) GetAvailableBackups(ctx context.Context) ([]string, error) {
	paths, err := e.files.List(ctx)
	if err != nil {
		kind := KindStorage
		if isContextErr(err) {
			kind = KindCancelled
		}
		return nil, &BackupError{Kind: kind, Op: models.OperationBackup, Err: err}
	}
	return paths, nil
}

// begin resets the state of op for a new run.
func (e *backupEngine) begin(op models.BackupOperation) {
	e.stateMu.Lock()
	e.states[op] = models.StateIdle
	e.stateMu.Unlock()
}

func (e *backupEngine) transition(ctx context.Context, op models.BackupOperation, to models.BackupState) {
	e.publish(ctx, op, to, nil)
}

// fail moves op to Failed and wraps err. Context errors always surface as
// [KindCancelled], whatever step noticed them.
func (e *backupEngine) fail(ctx context.Context, op models.BackupOperation, kind ErrorKind, err error) error {
	if isContextErr(err) || (ctx.Err() != nil && kind == KindStorage) {
		kind = KindCancelled
	}

	bErr := &BackupError{Kind: kind, Op: op, Err: err}
	e.publish(ctx, op, models.StateFailed, bErr)

	logger.FromContext(ctx).Err(err).
		Str("func", "backupEngine.fail").
		Str("kind", kind.String()).
		Msg("operation failed")

	return bErr
}

func (e *backupEngine) publish(ctx context.Context, op models.BackupOperation, to models.BackupState, err error) {
	e.stateMu.Lock()
	from := e.states[op]
	e.states[op] = to
	e.stateMu.Unlock()

	logger.FromContext(ctx).Debug().
		Str("func", "backupEngine.transition").
		Str("from", string(from)).
		Str("to", string(to)).
		Msg("state changed")

	if e.observer != nil {
		e.observer(models.StateChange{Operation: op, From: from, To: to, Err: err})
	}
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// latestSettings picks the most recently updated settings record; a user
// normally has exactly one.
func latestSettings(all []models.UserSettings) *models.UserSettings {
	if len(all) == 0 {
		return nil
	}
	latest := slices.MaxFunc(all, func(a, b models.UserSettings) int {
		return a.UpdatedAt.Compare(b.UpdatedAt)
	})
	return &latest
}
