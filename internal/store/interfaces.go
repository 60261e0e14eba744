package store

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser hashes user.Password and stores the account. It returns the
	// stored user with ID, CreatedAt and the password hash filled in.
	// A duplicate username or email yields [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email, including the
	// password hash, or [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given id or [ErrUserNotFound].
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// ExistsByEmailOrUsername reports whether any user already has the
	// given email or the given username.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
}

// BlogRepository persists blog posts.
type BlogRepository interface {
	// CreateBlog stores blog under a new ID and returns it with ID,
	// CreatedAt and UpdatedAt filled in.
	CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error)

	// ListBlogs returns every blog, newest first. It never returns a nil slice.
	ListBlogs(ctx context.Context) ([]models.Blog, error)

	// FindBlogByID returns the blog with the given id or [ErrBlogNotFound].
	FindBlogByID(ctx context.Context, id string) (models.Blog, error)

	// UpdateBlog overwrites title and content of the blog with blog.ID and
	// bumps its UpdatedAt. Author, AuthorID and CreatedAt are never written.
	UpdateBlog(ctx context.Context, blog models.Blog) (models.Blog, error)

	// DeleteBlog removes the blog with the given id or returns [ErrBlogNotFound].
	DeleteBlog(ctx context.Context, id string) error
}
