// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-blog-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// TestUserValidator_Dispatch
// ---------------------------------------------------------------------------

func TestUserValidator_Dispatch(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.BlogRequest{}), ErrUnsupportedType)
	})

	t.Run("RegisterRequest value", func(t *testing.T) {
		r := models.RegisterRequest{Username: "alice", Email: "a@x", Password: "pw"}
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("RegisterRequest pointer", func(t *testing.T) {
		r := models.RegisterRequest{Username: "alice", Email: "a@x", Password: "pw"}
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("LoginRequest value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.LoginRequest{Email: "a@x", Password: "pw"}))
	})

	t.Run("LoginRequest pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.LoginRequest{Email: "a@x", Password: "pw"}))
	})
}

// ---------------------------------------------------------------------------
// TestValidateRegisterRequest
// ---------------------------------------------------------------------------

func TestValidateRegisterRequest(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.RegisterRequest
		fields  []string
		wantErr []error
	}{
		{
			name: "all present",
			req:  models.RegisterRequest{Username: "alice", Email: "a@x", Password: "pw"},
		},
		{
			name:    "empty username",
			req:     models.RegisterRequest{Email: "a@x", Password: "pw"},
			wantErr: []error{ErrEmptyUsername},
		},
		{
			name:    "empty email",
			req:     models.RegisterRequest{Username: "alice", Password: "pw"},
			wantErr: []error{ErrEmptyEmail},
		},
		{
			name:    "empty password",
			req:     models.RegisterRequest{Username: "alice", Email: "a@x"},
			wantErr: []error{ErrEmptyPassword},
		},
		{
			name:    "everything missing reports every field",
			req:     models.RegisterRequest{},
			wantErr: []error{ErrEmptyUsername, ErrEmptyEmail, ErrEmptyPassword},
		},
		{
			name:   "scoped to username ignores other fields",
			req:    models.RegisterRequest{Username: "alice"},
			fields: []string{FieldUsername},
		},
		{
			name:    "unknown field",
			req:     models.RegisterRequest{Username: "alice", Email: "a@x", Password: "pw"},
			fields:  []string{"nickname"},
			wantErr: []error{ErrUnknownField},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req, tt.fields...)
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidateLoginRequest
// ---------------------------------------------------------------------------

func TestValidateLoginRequest(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.LoginRequest{Email: "a@x", Password: "pw"}))
	})

	t.Run("empty email", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Password: "pw"}), ErrEmptyEmail)
	})

	t.Run("empty password", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Email: "a@x"}), ErrEmptyPassword)
	})

	t.Run("username is not a login field", func(t *testing.T) {
		err := v.Validate(ctx, models.LoginRequest{Email: "a@x", Password: "pw"}, FieldUsername)
		require.ErrorIs(t, err, ErrUnknownField)
	})

	t.Run("whitespace counts as present", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.LoginRequest{Email: " ", Password: " "}))
	})
}
