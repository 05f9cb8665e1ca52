// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks caller-supplied values before they reach the
// backend API.
//
// A Validator accepts any value it knows how to check and, optionally, the
// names of the fields to restrict the check to. Values of an unknown type are
// rejected with [ErrUnsupportedType].
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates obj. When fields is empty every field of obj is
	// checked, otherwise only the named ones.
	Validate(ctx context.Context, obj any, fields ...string) error
}
