package service

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService issues bearer tokens and resolves them back to callers.
type AuthService interface {
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authenticate parses tokenString and loads the user it was issued to.
	// Any token problem, including a subject that no longer exists, yields
	// ErrTokenIsExpiredOrInvalid.
	Authenticate(ctx context.Context, tokenString string) (models.Identity, error)
}

// UserService covers registration, login and profile reads.
type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.UserResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.UserResponse, error)
	GetProfile(ctx context.Context, userID string) (models.UserResponse, error)
}

// BlogService covers blog CRUD. Mutations take the authenticated caller and
// are only permitted to the blog author.
type BlogService interface {
	CreateBlog(ctx context.Context, identity models.Identity, req models.BlogRequest) (models.Blog, error)
	ListBlogs(ctx context.Context) ([]models.Blog, error)
	GetBlog(ctx context.Context, id string) (models.Blog, error)
	UpdateBlog(ctx context.Context, identity models.Identity, id string, req models.BlogRequest) (models.Blog, error)
	DeleteBlog(ctx context.Context, identity models.Identity, id string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
