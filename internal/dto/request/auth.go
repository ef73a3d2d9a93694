package request

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
}

// CreateUserRequest provisions an operator account. Admin only; there is
// no self-service signup for the reservation console.
type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=6,max=20"`
	Role     string  `json:"role" validate:"required,oneof=operator admin"`
}
