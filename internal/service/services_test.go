package service

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/mock"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{
		UserRepository: mock.NewMockUserRepository(ctrl),
		BlogRepository: mock.NewMockBlogRepository(ctrl),
	}

	t.Run("all services built", func(t *testing.T) {
		services, err := NewServices(storages, config.StructuredConfig{App: testAppConfig()}, mock.NewMockPasswordHasher(ctrl), logger.Nop())

		require.NoError(t, err)
		assert.NotNil(t, services.AuthService)
		assert.IsType(t, &UserValidationService{}, services.UserService)
		assert.NotNil(t, services.BlogService)
		assert.NotNil(t, services.AppInfoService)
	})

	t.Run("missing version", func(t *testing.T) {
		_, err := NewServices(storages, config.StructuredConfig{}, mock.NewMockPasswordHasher(ctrl), logger.Nop())

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
	})
}
