package response

import (
	"time"

	"venue-reservation/internal/data/entity"
)

type AuthResponse struct {
	User    UserResponse     `json:"user"`
	Session *SessionResponse `json:"session,omitempty"`
}

type UserResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Role     string  `json:"role"`
	IsActive bool    `json:"is_active"`
}

type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func UserToResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Role:     string(u.Role),
		IsActive: u.IsActive,
	}
}
