package service

import (
	"fmt"

	"github.com/MKhiriev/go-account-gate/internal/adapter"
	"github.com/MKhiriev/go-account-gate/internal/config"
	"github.com/MKhiriev/go-account-gate/internal/logger"
)

type Services struct {
	AccountService AccountService
	AppInfoService AppInfoService
}

// NewServices wires the service layer. The account service is wrapped by
// validation, so every payload is checked before it leaves the gateway.
func NewServices(accountAdapter adapter.AccountAdapter, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	if accountAdapter == nil {
		return nil, ErrNoAdapterProvided
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AccountService: NewAccountValidationService().Wrap(NewAccountService(accountAdapter, logger)),
		AppInfoService: appInfoService,
	}, nil
}
