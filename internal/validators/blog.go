package validators

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-blog-api/models"
)

// Field names accepted by BlogValidator.
const (
	FieldTitle   = "title"
	FieldContent = "content"
)

// BlogValidator checks that blog create and update bodies carry both a
// title and content.
type BlogValidator struct {
}

func NewBlogValidator() Validator {
	return &BlogValidator{}
}

func (v *BlogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BlogRequest:
		return v.validateBlogRequest(ctx, value, fields...)
	case *models.BlogRequest:
		return v.validateBlogRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *BlogValidator) validateBlogRequest(_ context.Context, req models.BlogRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if req.Title == "" {
				errs = append(errs, ErrEmptyTitle)
			}
		case FieldContent:
			if req.Content == "" {
				errs = append(errs, ErrEmptyContent)
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}
