package entities

import "time"

// Role separates the admin app from the engineer app.

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEngineer Role = "engineer"
)

func IsValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleEngineer
}

// Account is a login credential record, keyed by email.
//
// Storage model (DynamoDB): PK email. RecoveryHash holds the bcrypt hash of
// the last issued password-recovery secret; it is cleared on use.
type Account struct {
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           Role      `json:"role"`
	RecoveryHash   string    `json:"-"`
	RecoveryExpiry time.Time `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
