// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing wording of the shiftbackup CLI.
//
// All Msg* constants are human-readable strings printed to the terminal when
// a backup operation fails. Keeping them in one place keeps the wording
// consistent between commands.
package app

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-shift-keeper/internal/service"
)

const (
	// MsgKeyUnavailable is printed when the backup key cannot be loaded
	// from or created in the keystore.
	MsgKeyUnavailable = "backup key is unavailable, check the keystore directory and device secret"

	// MsgAuthenticationFailed is printed when a backup was tampered with,
	// is corrupted, or was encrypted on another device.
	MsgAuthenticationFailed = "backup cannot be decrypted: it is corrupted or was made with another key"

	// MsgUnsupportedFormat is printed when the backup content is not a
	// snapshot this version can read.
	MsgUnsupportedFormat = "backup format is not supported"

	// MsgStorage is printed on database or filesystem failures.
	MsgStorage = "storage error, try again"

	// MsgCancelled is printed when the operation was interrupted.
	MsgCancelled = "operation cancelled"

	// MsgBusy is printed when the same operation is already running.
	MsgBusy = "operation already in progress"

	// MsgUnexpected is printed for errors outside the backup taxonomy.
	MsgUnexpected = "unexpected error"

	// MsgUsage lists the supported commands.
	MsgUsage = "usage: shiftbackup [flags] create | restore <path> | list"
)

var kindMessages = map[service.ErrorKind]string{
	service.KindKeyUnavailable:       MsgKeyUnavailable,
	service.KindAuthenticationFailed: MsgAuthenticationFailed,
	service.KindUnsupportedFormat:    MsgUnsupportedFormat,
	service.KindStorage:              MsgStorage,
	service.KindCancelled:            MsgCancelled,
	service.KindBusy:                 MsgBusy,
}

// Describe returns the message shown to the user for err. Context errors
// that never reached the engine, such as an interrupt before the task
// started, read as a cancellation.
func Describe(err error) string {
	var be *service.BackupError
	if !errors.As(err, &be) {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return MsgCancelled
		}
		return MsgUnexpected
	}
	if msg, ok := kindMessages[be.Kind]; ok {
		return msg
	}
	return MsgUnexpected
}
