package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

// blogRepository is the SQL implementation of [BlogRepository] over the
// "blogs" table.
type blogRepository struct {
	db     *DB
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

func NewBlogRepository(db *DB, logger *logger.Logger) BlogRepository {
	logger.Debug().Msg("creating blog repository")
	return &blogRepository{
		db:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (r *blogRepository) CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error) {
	log := logger.FromContext(ctx)

	blog.ID = r.ids.Generate()
	blog.CreatedAt = now()
	blog.UpdatedAt = blog.CreatedAt

	query, args, err := buildInsertBlogQuery(r.db.builder(), blog, r.db.timeArg(blog.CreatedAt), r.db.timeArg(blog.UpdatedAt))
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.CreateBlog").Msg("error building query")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.classify(err) == ForeignKeyViolation {
			log.Debug().Str("func", "*blogRepository.CreateBlog").Msg("author does not exist")
			return models.Blog{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*blogRepository.CreateBlog").Msg("error inserting blog")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return blog, nil
}

func (r *blogRepository) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBlogsQuery(r.db.builder())
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.ListBlogs").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.ListBlogs").Msg("error selecting blogs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	blogs := make([]models.Blog, 0)
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			log.Err(err).Str("func", "*blogRepository.ListBlogs").Msg("error scanning blog")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		blogs = append(blogs, blog)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*blogRepository.ListBlogs").Msg("error iterating blogs")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return blogs, nil
}

// FindBlogByID reports malformed ids as [ErrBlogNotFound] without querying
// the database.
func (r *blogRepository) FindBlogByID(ctx context.Context, id string) (models.Blog, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(id) {
		return models.Blog{}, ErrBlogNotFound
	}

	query, args, err := buildSelectBlogQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.FindBlogByID").Msg("error building query")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	blog, err := scanBlog(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Blog{}, ErrBlogNotFound
		}
		log.Err(err).Str("func", "*blogRepository.FindBlogByID").Msg("error selecting blog")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return blog, nil
}

func (r *blogRepository) UpdateBlog(ctx context.Context, blog models.Blog) (models.Blog, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(blog.ID) {
		return models.Blog{}, ErrBlogNotFound
	}

	blog.UpdatedAt = now()

	query, args, err := buildUpdateBlogQuery(r.db.builder(), blog, r.db.timeArg(blog.UpdatedAt))
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.UpdateBlog").Msg("error building query")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args); err != nil {
		log.Err(err).Str("func", "*blogRepository.UpdateBlog").Msg("error updating blog")
		return models.Blog{}, err
	}

	return blog, nil
}

func (r *blogRepository) DeleteBlog(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(id) {
		return ErrBlogNotFound
	}

	query, args, err := buildDeleteBlogQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.DeleteBlog").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args); err != nil {
		log.Err(err).Str("func", "*blogRepository.DeleteBlog").Msg("error deleting blog")
		return err
	}

	return nil
}

// execAffectingOne runs a statement that targets a single blog by id and
// reports [ErrBlogNotFound] when no row was touched.
func (r *blogRepository) execAffectingOne(ctx context.Context, query string, args []any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBlogNotFound
	}

	return nil
}
