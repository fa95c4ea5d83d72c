// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the shiftbackup command-line application.
//
// It wires configuration, the live store, the keystore and the backup engine
// into a single process and runs one command per invocation: create,
// restore or list. Engine operations run as asynchronous tasks bounded by the
// configured operation timeout and cancelled by the caller's context.
package client
