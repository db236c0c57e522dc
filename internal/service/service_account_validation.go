package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-account-gate/internal/validators"
	"github.com/MKhiriev/go-account-gate/models"
)

// AccountValidationService runs the account profiles in front of another
// AccountService, so payloads that reach it through any transport are held
// to the same rules. Normalization is idempotent: already-normalized input
// passes through unchanged.
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &AccountValidationService{
		validator: validators.NewProfileValidator(),
	}
}

func (v *AccountValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.UpstreamResponse, error) {
	if err := v.validator.Validate(ctx, &req, validators.ProfileRegister); err != nil {
		return models.UpstreamResponse{}, validationFailure("registration", err)
	}

	return v.inner.Register(ctx, req)
}

func (v *AccountValidationService) Login(ctx context.Context, req models.LoginRequest) (models.UpstreamResponse, error) {
	if err := v.validator.Validate(ctx, &req, validators.ProfileLogin); err != nil {
		return models.UpstreamResponse{}, validationFailure("login", err)
	}

	return v.inner.Login(ctx, req)
}

func (v *AccountValidationService) Wrap(wrapped AccountService) AccountService {
	v.inner = wrapped
	return v
}

// validationFailure marks field failures as ErrInvalidDataProvided. Anything
// else is a wiring fault and stays a plain error.
func validationFailure(op string, err error) error {
	if errors.Is(err, validators.ErrValidationFailed) {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return fmt.Errorf("error during %s validation: %w", op, err)
}
