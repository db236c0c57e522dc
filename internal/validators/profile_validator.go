package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-gate/models"
)

// ProfileValidator implements the Validator interface on top of the
// compiled-in profiles.
type ProfileValidator struct {
}

// NewProfileValidator constructs a new ProfileValidator and returns it as
// the Validator interface.
func NewProfileValidator() Validator {
	return &ProfileValidator{}
}

// Validate dispatches on the dynamic type of obj and runs the profile named
// by profiles[0]. Without a name, request models use their own profile and a
// bare Payload is rejected with ErrUnknownProfile.
//
// Supported types:
//   - Payload / *Payload
//   - models.RegisterRequest / *models.RegisterRequest
//   - models.LoginRequest / *models.LoginRequest
//
// Pointer arguments receive the normalized values when validation passes.
// Field failures are returned as *ValidationError.
func (v *ProfileValidator) Validate(_ context.Context, obj any, profiles ...string) error {
	switch value := obj.(type) {
	case Payload:
		_, err := v.run(value, "", profiles)
		return err
	case *Payload:
		normalized, err := v.run(*value, "", profiles)
		if err == nil {
			*value = normalized
		}
		return err

	case models.RegisterRequest:
		_, err := v.run(registerPayload(value), ProfileRegister, profiles)
		return err
	case *models.RegisterRequest:
		normalized, err := v.run(registerPayload(*value), ProfileRegister, profiles)
		if err == nil {
			*value = RegisterRequestFromPayload(normalized)
		}
		return err

	case models.LoginRequest:
		_, err := v.run(loginPayload(value), ProfileLogin, profiles)
		return err
	case *models.LoginRequest:
		normalized, err := v.run(loginPayload(*value), ProfileLogin, profiles)
		if err == nil {
			*value = LoginRequestFromPayload(normalized)
		}
		return err

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *ProfileValidator) run(payload Payload, profile string, names []string) (Payload, error) {
	if len(names) > 0 {
		profile = names[0]
	}

	p, err := Lookup(profile)
	if err != nil {
		return Payload{}, err
	}

	outcome := p.Validate(payload)
	if !outcome.OK() {
		return Payload{}, &ValidationError{Profile: p.Name(), Errors: outcome.Errors}
	}

	return outcome.Normalized, nil
}

// RegisterRequestFromPayload copies the register fields of p into a request
// model. Absent fields stay empty.
func RegisterRequestFromPayload(p Payload) models.RegisterRequest {
	firstName, _ := p.Get(FieldFirstName)
	lastName, _ := p.Get(FieldLastName)
	emailID, _ := p.Get(FieldEmailID)
	password, _ := p.Get(FieldPassword)

	return models.RegisterRequest{
		FirstName: firstName,
		LastName:  lastName,
		EmailID:   emailID,
		Password:  password,
	}
}

// LoginRequestFromPayload copies the login fields of p into a request model.
func LoginRequestFromPayload(p Payload) models.LoginRequest {
	emailID, _ := p.Get(FieldEmailID)
	password, _ := p.Get(FieldPassword)

	return models.LoginRequest{
		EmailID:  emailID,
		Password: password,
	}
}

func registerPayload(req models.RegisterRequest) Payload {
	return NewPayload(
		FieldFirstName, req.FirstName,
		FieldLastName, req.LastName,
		FieldEmailID, req.EmailID,
		FieldPassword, req.Password,
	)
}

func loginPayload(req models.LoginRequest) Payload {
	return NewPayload(
		FieldEmailID, req.EmailID,
		FieldPassword, req.Password,
	)
}
