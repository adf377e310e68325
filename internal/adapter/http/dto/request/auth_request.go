package request

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterAccountRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=admin engineer"`
}

type RecoveryRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest carries the recovery deep link the app received plus
// the replacement password. The link is parsed server-side so a tampered or
// truncated link is simply ignored.
type ResetPasswordRequest struct {
	Link        string `json:"link" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}
