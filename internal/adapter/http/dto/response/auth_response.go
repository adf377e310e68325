package response

import (
	"time"

	"servicevale/internal/domain/entities"
)

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func FromLogin(token string, a entities.Account) LoginResponse {
	return LoginResponse{
		Token: token,
		Email: a.Email,
		Role:  string(a.Role),
	}
}

type ProfileResponse struct {
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromAccount(a entities.Account) ProfileResponse {
	return ProfileResponse{
		Email:     a.Email,
		Role:      string(a.Role),
		CreatedAt: a.CreatedAt,
	}
}

// MessageResponse acknowledges an action that returns no resource.
type MessageResponse struct {
	Message string `json:"message"`
}
