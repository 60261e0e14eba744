package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/crypto"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	authService    AuthService

	logger *logger.Logger
}

// NewUserService returns the UserService without input validation.
// Callers normally wrap it with NewUserValidationService.
func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, authService AuthService, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		authService:    authService,
		logger:         logger,
	}
}

// Register creates the account and signs the caller in.
//
// The existence pre-check gives the common case a clean error; concurrent
// registrations that slip past it are stopped by the unique constraints and
// surface as store.ErrUserAlreadyExists as well.
func (s *userService) Register(ctx context.Context, req models.RegisterRequest) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	exists, err := s.userRepository.ExistsByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("error checking user existence: %w", err)
	}
	if exists {
		log.Info().Str("username", req.Username).Str("email", req.Email).Msg("user already exists")
		return models.UserResponse{}, store.ErrUserAlreadyExists
	}

	user, err := s.userRepository.CreateUser(ctx, models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return s.signIn(ctx, user)
}

// Login verifies the credentials. An unknown email and a wrong password are
// indistinguishable to the caller.
func (s *userService) Login(ctx context.Context, req models.LoginRequest) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("email", req.Email).Msg("login for unknown email")
		return models.UserResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !s.hasher.Verify(req.Password, user.Password) {
		log.Info().Str("user_id", user.ID).Msg("wrong password")
		return models.UserResponse{}, ErrInvalidCredentials
	}

	return s.signIn(ctx, user)
}

func (s *userService) GetProfile(ctx context.Context, userID string) (models.UserResponse, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return models.NewUserResponse(user), nil
}

func (s *userService) signIn(ctx context.Context, user models.User) (models.UserResponse, error) {
	token, err := s.authService.CreateToken(ctx, user)
	if err != nil {
		return models.UserResponse{}, err
	}

	resp := models.NewUserResponse(user)
	resp.Token = token.String()
	return resp, nil
}
