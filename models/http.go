package models

// RegisterRequest is the body of POST /api/users.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// BlogRequest is the body of POST /api/blogs and PUT /api/blogs/{id}.
type BlogRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
