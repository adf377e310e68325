package entities

import "time"

// Notification is an in-app message written on order assignment and on
// service completion. Writing one is always best-effort: a failed write is
// logged and never blocks the operation that triggered it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (userEmail-index): userEmail
type Notification struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	IsRead      bool      `json:"isRead"`
	UserEmail   string    `json:"userEmail"`
	CreatedAt   time.Time `json:"createdAt"`
}
