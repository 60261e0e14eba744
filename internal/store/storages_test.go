package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/crypto"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newSQLiteStorages runs the real repositories against an in-memory SQLite
// database with the migrations applied.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	cfg := config.Storage{DB: config.DB{Driver: config.DriverSQLite, DSN: ":memory:"}}
	s, err := NewStorages(context.Background(), cfg, crypto.NewBcryptHasher(bcrypt.MinCost), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func createTestUser(t *testing.T, s *Storages, username string) models.User {
	t.Helper()

	user, err := s.UserRepository.CreateUser(context.Background(), models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "pw-" + username,
	})
	require.NoError(t, err)
	return user
}

func TestNewStorages_UnsupportedDriver(t *testing.T) {
	cfg := config.Storage{DB: config.DB{Driver: "mysql", DSN: "x"}}

	_, err := NewStorages(context.Background(), cfg, crypto.NewBcryptHasher(bcrypt.MinCost), logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestSQLite_Users(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	require.NoError(t, s.Ping(ctx))

	alice := createTestUser(t, s, "alice")
	assert.NotEqual(t, "pw-alice", alice.Password, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(alice.Password), []byte("pw-alice")))

	byEmail, err := s.UserRepository.FindUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byEmail.ID)
	assert.Equal(t, alice.Password, byEmail.Password)
	assert.True(t, alice.CreatedAt.Equal(byEmail.CreatedAt))

	byID, err := s.UserRepository.FindUserByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	_, err = s.UserRepository.FindUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	exists, err := s.UserRepository.ExistsByEmailOrUsername(ctx, "other@example.com", "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.UserRepository.ExistsByEmailOrUsername(ctx, "other@example.com", "other")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSQLite_UserUniqueness(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	createTestUser(t, s, "alice")

	tests := []struct {
		name string
		user models.User
	}{
		{name: "same username", user: models.User{Username: "alice", Email: "fresh@example.com", Password: "pw"}},
		{name: "same email", user: models.User{Username: "fresh", Email: "alice@example.com", Password: "pw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.UserRepository.CreateUser(ctx, tt.user)
			assert.ErrorIs(t, err, ErrUserAlreadyExists)
		})
	}
}

func TestSQLite_Blogs(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	alice := createTestUser(t, s, "alice")

	blogs, err := s.BlogRepository.ListBlogs(ctx)
	require.NoError(t, err)
	assert.NotNil(t, blogs)
	assert.Empty(t, blogs)

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		_, err := s.BlogRepository.CreateBlog(ctx, models.Blog{
			Title:    title,
			Content:  "body of " + title,
			Author:   alice.Username,
			AuthorID: alice.ID,
		})
		require.NoError(t, err)
	}

	blogs, err = s.BlogRepository.ListBlogs(ctx)
	require.NoError(t, err)
	require.Len(t, blogs, 3)
	assert.Equal(t, "third", blogs[0].Title)
	assert.Equal(t, "second", blogs[1].Title)
	assert.Equal(t, "first", blogs[2].Title)

	first := blogs[2]
	found, err := s.BlogRepository.FindBlogByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.AuthorID)
	assert.Equal(t, "alice", found.Author)

	found.Title = "first, edited"
	found.Content = "new body"
	found.AuthorID = "tampered"
	found.Author = "tampered"
	_, err = s.BlogRepository.UpdateBlog(ctx, found)
	require.NoError(t, err)

	reloaded, err := s.BlogRepository.FindBlogByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "first, edited", reloaded.Title)
	assert.Equal(t, "new body", reloaded.Content)
	assert.Equal(t, alice.ID, reloaded.AuthorID, "author id must never change")
	assert.Equal(t, "alice", reloaded.Author)
	assert.True(t, reloaded.CreatedAt.Equal(first.CreatedAt))
	assert.False(t, reloaded.UpdatedAt.Before(first.UpdatedAt))

	require.NoError(t, s.BlogRepository.DeleteBlog(ctx, first.ID))
	_, err = s.BlogRepository.FindBlogByID(ctx, first.ID)
	assert.ErrorIs(t, err, ErrBlogNotFound)
	assert.ErrorIs(t, s.BlogRepository.DeleteBlog(ctx, first.ID), ErrBlogNotFound)

	blogs, err = s.BlogRepository.ListBlogs(ctx)
	require.NoError(t, err)
	assert.Len(t, blogs, 2)
}
