package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
)

type blogService struct {
	blogRepository store.BlogRepository

	// validator runs inside the service rather than in a wrapper because
	// updates must check ownership before looking at the payload.
	validator validators.Validator

	logger *logger.Logger
}

func NewBlogService(blogRepository store.BlogRepository, logger *logger.Logger) BlogService {
	return &blogService{
		blogRepository: blogRepository,
		validator:      validators.NewBlogValidator(),
		logger:         logger,
	}
}

func (s *blogService) CreateBlog(ctx context.Context, identity models.Identity, req models.BlogRequest) (models.Blog, error) {
	if err := s.validate(ctx, req); err != nil {
		return models.Blog{}, err
	}

	blog, err := s.blogRepository.CreateBlog(ctx, models.Blog{
		Title:    req.Title,
		Content:  req.Content,
		Author:   identity.Username,
		AuthorID: identity.UserID,
	})
	if err != nil {
		return models.Blog{}, fmt.Errorf("blog creation ended with error: %w", err)
	}

	return blog, nil
}

func (s *blogService) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	blogs, err := s.blogRepository.ListBlogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing blogs: %w", err)
	}

	return blogs, nil
}

func (s *blogService) GetBlog(ctx context.Context, id string) (models.Blog, error) {
	blog, err := s.blogRepository.FindBlogByID(ctx, id)
	if err != nil {
		return models.Blog{}, fmt.Errorf("blog search by id failed: %w", err)
	}

	return blog, nil
}

// UpdateBlog replaces title and content. A caller who is not the author gets
// ErrNotAuthorizedToUpdate whatever the payload looks like.
func (s *blogService) UpdateBlog(ctx context.Context, identity models.Identity, id string, req models.BlogRequest) (models.Blog, error) {
	blog, err := s.blogRepository.FindBlogByID(ctx, id)
	if err != nil {
		return models.Blog{}, fmt.Errorf("blog search by id failed: %w", err)
	}

	if !identity.IsOwnerOf(blog) {
		logger.FromContext(ctx).Warn().
			Str("blog_id", blog.ID).
			Str("author_id", blog.AuthorID).
			Str("caller_id", identity.UserID).
			Msg("update attempted by non-author")
		return models.Blog{}, ErrNotAuthorizedToUpdate
	}

	if err = s.validate(ctx, req); err != nil {
		return models.Blog{}, err
	}

	blog.Title = req.Title
	blog.Content = req.Content

	updated, err := s.blogRepository.UpdateBlog(ctx, blog)
	if err != nil {
		return models.Blog{}, fmt.Errorf("blog update ended with error: %w", err)
	}

	return updated, nil
}

func (s *blogService) DeleteBlog(ctx context.Context, identity models.Identity, id string) error {
	blog, err := s.blogRepository.FindBlogByID(ctx, id)
	if err != nil {
		return fmt.Errorf("blog search by id failed: %w", err)
	}

	if !identity.IsOwnerOf(blog) {
		logger.FromContext(ctx).Warn().
			Str("blog_id", blog.ID).
			Str("author_id", blog.AuthorID).
			Str("caller_id", identity.UserID).
			Msg("delete attempted by non-author")
		return ErrNotAuthorizedToDelete
	}

	if err = s.blogRepository.DeleteBlog(ctx, id); err != nil {
		return fmt.Errorf("blog deletion ended with error: %w", err)
	}

	return nil
}

func (s *blogService) validate(ctx context.Context, req models.BlogRequest) error {
	if err := s.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
