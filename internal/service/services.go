package service

import (
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/crypto"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	BlogService    BlogService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, hasher crypto.PasswordHasher, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthService(storages.UserRepository, cfg.App, logger)
	userService := NewUserValidationService().Wrap(
		NewUserService(storages.UserRepository, hasher, authService, logger),
	)

	return &Services{
		AuthService:    authService,
		UserService:    userService,
		BlogService:    NewBlogService(storages.BlogRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
