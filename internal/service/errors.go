package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shift-keeper/models"
)

// ErrorKind classifies the failures of the backup engine.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota

	// KindKeyUnavailable: the secure store is unavailable or holds no usable
	// key. There is no fallback key.
	KindKeyUnavailable

	// KindAuthenticationFailed: the backup was tampered with, is corrupted,
	// or was encrypted under another key.
	KindAuthenticationFailed

	// KindUnsupportedFormat: the decrypted content is not a snapshot this
	// version can read.
	KindUnsupportedFormat

	// KindStorage: reading or writing the live store or the backup directory
	// failed. The only retryable kind.
	KindStorage

	// KindCancelled: the caller cancelled the operation.
	KindCancelled

	// KindBusy: an operation of the same type is already running.
	KindBusy
)

// Sentinels matched with [errors.Is]; every [BackupError] unwraps to the
// sentinel of its kind.
var (
	ErrKeyUnavailable       = errors.New("backup key unavailable")
	ErrAuthenticationFailed = errors.New("backup authentication failed")
	ErrUnsupportedFormat    = errors.New("unsupported backup format")
	ErrStorage              = errors.New("backup storage failure")
	ErrCancelled            = errors.New("backup operation cancelled")
	ErrBusy                 = errors.New("backup operation already in progress")
)

func (k ErrorKind) String() string {
	switch k {
	case KindKeyUnavailable:
		return "key unavailable"
	case KindAuthenticationFailed:
		return "authentication failed"
	case KindUnsupportedFormat:
		return "unsupported format"
	case KindStorage:
		return "storage"
	case KindCancelled:
		return "cancelled"
	case KindBusy:
		return "busy"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindKeyUnavailable:
		return ErrKeyUnavailable
	case KindAuthenticationFailed:
		return ErrAuthenticationFailed
	case KindUnsupportedFormat:
		return ErrUnsupportedFormat
	case KindStorage:
		return ErrStorage
	case KindCancelled:
		return ErrCancelled
	case KindBusy:
		return ErrBusy
	default:
		return nil
	}
}

// BackupError is returned by every failing [BackupEngine] operation.
type BackupError struct {
	Kind ErrorKind
	Op   models.BackupOperation
	Err  error
}

func (e *BackupError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes both the kind sentinel and the cause.
func (e *BackupError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf returns the kind of the first [BackupError] in err's chain.
func KindOf(err error) ErrorKind {
	var be *BackupError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindUnknown
}

// IsRetryable reports whether repeating the failed operation may succeed.
// Crypto and format failures are permanent for a given file and key.
func IsRetryable(err error) bool {
	return KindOf(err) == KindStorage
}
