package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrNotBlogAuthor         = errors.New("caller is not the blog author")
	ErrNotAuthorizedToUpdate = fmt.Errorf("%w: update rejected", ErrNotBlogAuthor)
	ErrNotAuthorizedToDelete = fmt.Errorf("%w: delete rejected", ErrNotBlogAuthor)

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
