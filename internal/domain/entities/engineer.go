package entities

import "time"

// Engineer is a field worker fulfilling assigned orders.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//
// Deleting an engineer does not cascade: historical orders and bills keep
// their snapshot of the engineer's name/email/contact.
type Engineer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ContactNo string    `json:"contactNo"`
	Address   string    `json:"address"`
	AadharNo  string    `json:"aadharNo"`
	PanNo     string    `json:"panNo"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
