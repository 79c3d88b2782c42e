// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks untrusted input against business rules before it
// reaches storage.
//
// Core concepts:
//   - FieldUpdateValidator: validates a partial update given as a flat map of
//     field names to values. Unknown names are skipped, so callers can pass a
//     decoded JSON body as is.
//   - FieldRule: one rule per field name, kept in a registry. New fields are
//     supported by registering a rule; dispatch never changes.
//   - Errors: an accumulator of (field, code, message) entries. Rules never
//     stop at the first problem of another field; the caller rejects the
//     whole update if anything was recorded.
//   - StructValidator: presence checks on request bodies via `validate` tags.
package validators

import (
	"context"

	"github.com/MKhiriev/zephyr-centrum/models"
)

// FieldUpdateValidator validates partial updates of a record.
type FieldUpdateValidator interface {
	// SupportsField reports whether a rule is registered for name.
	SupportsField(name string) bool

	// ValidateFields runs the registered rule of every supported key in
	// fields and records problems in errs. currentRecordID identifies the
	// record being updated (zero for a new record) so that uniqueness checks
	// can ignore it. The returned error is reserved for lookup failures.
	ValidateFields(ctx context.Context, fields map[string]any, currentRecordID int64, errs *Errors) error
}

// FieldRule validates a single value of the field it is registered for.
type FieldRule func(ctx context.Context, field string, value any, currentRecordID int64, errs *Errors) error

// UserLookup is the read-only slice of the user store needed for
// uniqueness checks. Both methods return store.ErrNoUserWasFound when no
// record matches.
type UserLookup interface {
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}
