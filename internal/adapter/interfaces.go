// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used to reach the upstream account
// service.
//
// The primary abstraction is [AccountAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPAccountAdapter]).
//
// The adapter never interprets the account service's answer: any HTTP status
// comes back as a [models.UpstreamResponse]. Only transport failures are
// reported as errors, mapped to the sentinel values in errors.go so that
// callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-account-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/account_adapter_mock.go -package=mock

// AccountAdapter forwards normalized account payloads to the upstream
// account service.
type AccountAdapter interface {
	// Register forwards a validated registration payload. The trace ID held
	// in ctx, if any, is propagated in the X-Trace-ID header.
	Register(ctx context.Context, req models.RegisterRequest) (models.UpstreamResponse, error)

	// Login forwards a validated login payload.
	Login(ctx context.Context, req models.LoginRequest) (models.UpstreamResponse, error)
}
