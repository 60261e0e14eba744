// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the boundary checks applied to request bodies
// before they reach the services.
//
// The checks are presence checks only: a field is valid when it is not the
// empty string. Formats (email shape, password strength) are not inspected.
//
// Validators are used by the validation wrappers in the service package and
// can be scoped to a subset of fields by passing field names to Validate.
package validators

import "context"

// Validator validates an arbitrary request value.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
