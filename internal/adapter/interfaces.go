// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the blog REST API.
//
// [BlogAPI] hides the transport from callers such as the command-line
// client. Non-2xx responses are mapped to the sentinel errors in errors.go
// so that callers can use [errors.Is] (e.g. [ErrForbidden] for 403); the
// server's {"message": ...} text is kept in the error string.
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

// BlogAPI is a client of the blog REST API. Implementations are safe for
// concurrent use.
type BlogAPI interface {
	// SetToken stores the bearer token attached to authenticated requests.
	// Register and Login call it with the token they receive.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	Version(ctx context.Context) (string, error)

	Register(ctx context.Context, req models.RegisterRequest) (models.UserResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.UserResponse, error)
	Profile(ctx context.Context) (models.UserResponse, error)

	ListBlogs(ctx context.Context) ([]models.Blog, error)
	GetBlog(ctx context.Context, id string) (models.Blog, error)
	CreateBlog(ctx context.Context, req models.BlogRequest) (models.Blog, error)
	UpdateBlog(ctx context.Context, id string, req models.BlogRequest) (models.Blog, error)

	// DeleteBlog returns the server acknowledgement message.
	DeleteBlog(ctx context.Context, id string) (string, error)
}
