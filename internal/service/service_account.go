// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-gate/internal/adapter"
	"github.com/MKhiriev/go-account-gate/internal/logger"
	"github.com/MKhiriev/go-account-gate/models"
)

// accountService is the concrete implementation of AccountService.
// It relays requests through an AccountAdapter and logs what the account
// service answered.
type accountService struct {
	// adapter is the transport to the upstream account service.
	adapter adapter.AccountAdapter

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAccountService constructs an AccountService that forwards through
// accountAdapter.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAccountService(accountAdapter adapter.AccountAdapter, logger *logger.Logger) AccountService {
	return &accountService{
		adapter: accountAdapter,
		logger:  logger,
	}
}

// Register forwards req to the account service.
//
// Returns the upstream answer for any HTTP status, or a wrapped adapter
// error (see adapter.ErrUpstreamUnavailable) when the account service could
// not be reached.
func (a *accountService) Register(ctx context.Context, req models.RegisterRequest) (models.UpstreamResponse, error) {
	log := logger.FromContext(ctx)

	resp, err := a.adapter.Register(ctx, req)
	if err != nil {
		log.Err(err).Str("email_id", req.EmailID).Msg("forwarding registration ended with error")
		return models.UpstreamResponse{}, fmt.Errorf("forwarding registration ended with error: %w", err)
	}

	log.Info().
		Str("email_id", req.EmailID).
		Int("upstream_status", resp.Status).
		Bool("accepted", resp.OK()).
		Msg("registration forwarded")

	return resp, nil
}

// Login forwards req to the account service. The password is never logged.
func (a *accountService) Login(ctx context.Context, req models.LoginRequest) (models.UpstreamResponse, error) {
	log := logger.FromContext(ctx)

	resp, err := a.adapter.Login(ctx, req)
	if err != nil {
		log.Err(err).Str("email_id", req.EmailID).Msg("forwarding login ended with error")
		return models.UpstreamResponse{}, fmt.Errorf("forwarding login ended with error: %w", err)
	}

	log.Info().
		Str("email_id", req.EmailID).
		Int("upstream_status", resp.Status).
		Bool("accepted", resp.OK()).
		Msg("login forwarded")

	return resp, nil
}
