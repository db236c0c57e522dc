// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, trace IDs,
// HTTP response writing and HTTP client initialization.
package utils

import (
	"context"

	"github.com/MKhiriev/go-account-gate/internal/validators"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// TraceIDCtxKey stores the request trace ID so that outgoing upstream
	// calls can propagate it.
	TraceIDCtxKey = contextKey("traceID")

	// NormalizedPayloadCtxKey stores the normalized payload produced by a
	// successful validation.
	NormalizedPayloadCtxKey = contextKey("normalizedPayload")
)

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext retrieves the trace ID stored by WithTraceID.
// ok is false when no trace ID is present or it has an unexpected type.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}

// WithNormalizedPayload returns a copy of ctx carrying payload.
func WithNormalizedPayload(ctx context.Context, payload validators.Payload) context.Context {
	return context.WithValue(ctx, NormalizedPayloadCtxKey, payload)
}

// GetNormalizedPayloadFromContext retrieves the payload stored by
// WithNormalizedPayload.
//
// Example usage:
//
//	payload, ok := utils.GetNormalizedPayloadFromContext(r.Context())
//	if !ok {
//	    // the validation middleware did not run for this route
//	}
func GetNormalizedPayloadFromContext(ctx context.Context) (validators.Payload, bool) {
	payload, ok := ctx.Value(NormalizedPayloadCtxKey).(validators.Payload)
	return payload, ok
}
