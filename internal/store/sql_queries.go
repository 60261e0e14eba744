// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/Masterminds/squirrel"
)

var (
	userColumns = []string{"id", "username", "email", "password_hash", "created_at"}
	blogColumns = []string{"id", "title", "content", "author", "author_id", "created_at", "updated_at"}
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func buildInsertUserQuery(sb squirrel.StatementBuilderType, user models.User, createdAt any) (string, []any, error) {
	return sb.Insert(models.User{}.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Username, user.Email, user.Password, createdAt).
		ToSql()
}

func buildSelectUserQuery(sb squirrel.StatementBuilderType, where squirrel.Eq) (string, []any, error) {
	return sb.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
}

func buildCountUsersByEmailOrUsernameQuery(sb squirrel.StatementBuilderType, email, username string) (string, []any, error) {
	return sb.Select("COUNT(*)").
		From(models.User{}.TableName()).
		Where(squirrel.Or{
			squirrel.Eq{"email": email},
			squirrel.Eq{"username": username},
		}).
		ToSql()
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.Password, &user.CreatedAt)
	return user, err
}

func buildInsertBlogQuery(sb squirrel.StatementBuilderType, blog models.Blog, createdAt, updatedAt any) (string, []any, error) {
	return sb.Insert(models.Blog{}.TableName()).
		Columns(blogColumns...).
		Values(blog.ID, blog.Title, blog.Content, blog.Author, blog.AuthorID, createdAt, updatedAt).
		ToSql()
}

// buildListBlogsQuery orders newest first; id breaks ties between blogs
// created within the same microsecond since ids are time ordered.
func buildListBlogsQuery(sb squirrel.StatementBuilderType) (string, []any, error) {
	return sb.Select(blogColumns...).
		From(models.Blog{}.TableName()).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildSelectBlogQuery(sb squirrel.StatementBuilderType, id string) (string, []any, error) {
	return sb.Select(blogColumns...).
		From(models.Blog{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// buildUpdateBlogQuery writes only the editable columns.
func buildUpdateBlogQuery(sb squirrel.StatementBuilderType, blog models.Blog, updatedAt any) (string, []any, error) {
	return sb.Update(models.Blog{}.TableName()).
		Set("title", blog.Title).
		Set("content", blog.Content).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"id": blog.ID}).
		ToSql()
}

func buildDeleteBlogQuery(sb squirrel.StatementBuilderType, id string) (string, []any, error) {
	return sb.Delete(models.Blog{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

func scanBlog(row rowScanner) (models.Blog, error) {
	var blog models.Blog
	err := row.Scan(&blog.ID, &blog.Title, &blog.Content, &blog.Author, &blog.AuthorID, &blog.CreatedAt, &blog.UpdatedAt)
	return blog, err
}
