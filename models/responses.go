package models

// UserResponse is the public view of a user returned by the users API.
// Token is only set by registration and login.
type UserResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token,omitempty"`
}

// NewUserResponse builds the public view of user without a token.
func NewUserResponse(user User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

// MessageResponse is the body of every error response and of the blog
// delete acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}
