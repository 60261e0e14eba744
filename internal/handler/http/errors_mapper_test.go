package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-blog-api/internal/crypto"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/stretchr/testify/assert"
)

func errUserExists() error {
	return fmt.Errorf("user creation ended with error: %w", store.ErrUserAlreadyExists)
}
func errUserNotFound() error {
	return fmt.Errorf("user search by id failed: %w", store.ErrUserNotFound)
}
func errBlogNotFound() error {
	return fmt.Errorf("blog search by id failed: %w", store.ErrBlogNotFound)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "validation keeps field messages",
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, errors.Join(validators.ErrEmptyTitle, validators.ErrEmptyContent)),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid data provided: title is required; content is required",
		},
		{"invalid JSON", fmt.Errorf("%w: EOF", ErrInvalidJSON), http.StatusBadRequest, "Invalid JSON was passed"},
		{"password too long", crypto.ErrPasswordTooLong, http.StatusBadRequest, "Password is too long"},
		{"user exists", errUserExists(), http.StatusBadRequest, "User already exists"},
		{"missing header", utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, "Not authorized, no token"},
		{"missing identity", ErrNoIdentity, http.StatusUnauthorized, "Not authorized, no token"},
		{"token failed", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, "Not authorized, token failed"},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{"update forbidden", service.ErrNotAuthorizedToUpdate, http.StatusForbidden, "Not authorized to update this blog"},
		{"delete forbidden", service.ErrNotAuthorizedToDelete, http.StatusForbidden, "Not authorized to delete this blog"},
		{"user not found", errUserNotFound(), http.StatusNotFound, "User not found"},
		{"blog not found", errBlogNotFound(), http.StatusNotFound, "Blog not found"},
		{"route not found", ErrRouteNotFound, http.StatusNotFound, "Route not found"},
		{"query failure", fmt.Errorf("%w: boom", store.ErrExecutingQuery), http.StatusInternalServerError, "Internal Server Error"},
		{"token creation", service.ErrTokenCreationFailed, http.StatusInternalServerError, "Internal Server Error"},
		{"unknown", errors.New("something else"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}
