package service

import (
	"context"

	"github.com/MKhiriev/go-account-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/account_service_mock.go -package=mock

// AccountService forwards validated account payloads to the account service
// and hands its answer back unchanged.
type AccountService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.UpstreamResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.UpstreamResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AccountServiceWrapper defines middleware composition for AccountService.
// Implementations wrap an existing AccountService to add behavior such as
// validating.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService // returns a decorated AccountService applying additional behavior
}
