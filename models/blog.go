package models

import "time"

// Blog is a single blog post.
type Blog struct {
	ID      string `json:"_id"`
	Title   string `json:"title"`
	Content string `json:"content"`

	// Author is the creator's username at creation time. It is a display
	// convenience and is not updated if the user is renamed.
	Author string `json:"author"`

	// AuthorID references the creating User and never changes.
	// Ownership checks compare against this field only.
	AuthorID string `json:"authorId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Blog model.
func (b Blog) TableName() string {
	return "blogs"
}
