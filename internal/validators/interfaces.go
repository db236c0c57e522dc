// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators validates and normalizes account-operation payloads
// (registration and login) before they reach any business logic.
//
// Core concepts:
//   - Profile: a named, immutable allow-list plus an ordered rule chain per
//     declared field. Register and Login are compiled in.
//   - Rule: one step of a field chain. Normalizing rules rewrite the value,
//     checking rules report failures.
//   - Outcome: every failure collected across the payload, in declared field
//     order, plus the normalized payload when nothing failed.
//   - Validator: the context-aware entry point used by services. It accepts
//     payloads or account request models and reports a *ValidationError.
//
// Validation is a pure function of the payload: it performs no I/O and
// profiles are safe for concurrent use.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input against the named profile. When
	// no name is given the profile is chosen from the input type.
	Validate(context.Context, any, ...string) error
}

// PayloadValidator validates a decoded request payload against one operation.
type PayloadValidator interface {
	// Name returns the operation name the validator enforces.
	Name() string

	// Validate runs every configured check against payload and returns the
	// aggregated outcome. It never returns a partial success.
	Validate(payload Payload) Outcome
}
