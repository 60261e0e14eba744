package validators

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-blog-api/models"
)

// Field names accepted by UserValidator.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// UserValidator checks that the credential fields of registration and login
// requests are present. It does not inspect their format.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches on the dynamic type of obj. Supported types are
// models.RegisterRequest and models.LoginRequest, by value or pointer.
//
// Every missing field is reported; the returned error joins them.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldUsername:
			if req.Username == "" {
				errs = append(errs, ErrEmptyUsername)
			}
		case FieldEmail:
			if req.Email == "" {
				errs = append(errs, ErrEmptyEmail)
			}
		case FieldPassword:
			if req.Password == "" {
				errs = append(errs, ErrEmptyPassword)
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}

func (v *UserValidator) validateLoginRequest(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if req.Email == "" {
				errs = append(errs, ErrEmptyEmail)
			}
		case FieldPassword:
			if req.Password == "" {
				errs = append(errs, ErrEmptyPassword)
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}
