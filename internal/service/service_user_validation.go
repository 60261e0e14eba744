package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
)

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// logging or validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}

// UserValidationService rejects register and login requests with missing
// fields before they reach the wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.UserResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.UserResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Register(ctx, req)
}

func (v *UserValidationService) Login(ctx context.Context, req models.LoginRequest) (models.UserResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.UserResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, req)
}

func (v *UserValidationService) GetProfile(ctx context.Context, userID string) (models.UserResponse, error) {
	return v.inner.GetProfile(ctx, userID)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}
