// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading request bodies. Callers can match
// against them with [errors.Is].
var (
	// ErrRequestBodyTooLarge is returned when a body exceeds the configured
	// Server.MaxBodyBytes limit.
	ErrRequestBodyTooLarge = errors.New("request body too large")

	// ErrUnreadableRequestBody is returned when the body stream fails before
	// it is fully read (for example, corrupt gzip data).
	ErrUnreadableRequestBody = errors.New("request body could not be read")
)
