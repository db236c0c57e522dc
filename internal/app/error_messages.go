// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// gateway's validators and HTTP handlers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of a request. Keeping them in
// one place ensures consistent wording throughout the API.
package app

const (
	// MsgValidationFailed is the top-level message of every response that
	// rejects a payload.
	MsgValidationFailed = "Validation failed"

	// MsgInvalidFieldsPrefix starts the single error reported when a payload
	// carries keys outside an operation's allow-list. The offending keys
	// follow, comma-separated, in the order they were received.
	MsgInvalidFieldsPrefix = "Invalid fields: "
)
