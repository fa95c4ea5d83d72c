// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks decoded data against the domain rules before it
// is allowed to reach storage.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values. Supports
//     optional field-level scoping so callers can run a subset of the rules.
//   - SnapshotValidator: rules for backup snapshots and the shifts, expenses
//     and settings inside them.
//
// Restore runs the snapshot validator after decoding and before merging, so
// a structurally broken backup leaves live data untouched.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks and
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
