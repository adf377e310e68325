package entities

import (
	"fmt"
	"time"
)

// PaymentMethod is how the customer settled the bill. Payments happen
// offline at the door; no gateway is involved.

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodUPI  PaymentMethod = "upi"
)

// BillStatusPaid is the only bill status: a bill is written once, after the
// customer has paid.
const BillStatusPaid = "paid"

// Bill is the immutable invoice record an engineer creates after completing
// a service.
//
// Storage model (DynamoDB):
//   - PK: billNumber (the generated human-readable number doubles as the
//     document id, which also guards against double submission)
//   - GSI1 (serviceBoyName-index): serviceBoyName
//   - GSI2 (status-date-index): status, date; used for revenue windows
//
// Monetary representation: all amounts are decimal strings rendered exactly
// as captured; the service never recomputes a stored amount.
type Bill struct {
	BillNumber     string        `json:"billNumber"`
	CustomerName   string        `json:"customerName"`
	ContactNumber  string        `json:"contactNumber"`
	Address        string        `json:"address"`
	ServiceType    string        `json:"serviceType"`
	ServiceBoyName string        `json:"serviceBoyName"`
	ServiceCharge  string        `json:"serviceCharge"`
	Total          string        `json:"total"`
	PaymentMethod  PaymentMethod `json:"paymentMethod"`
	CashGiven      string        `json:"cashGiven,omitempty"`
	Change         string        `json:"change,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	Signature      string        `json:"signature,omitempty"` // base64 PNG
	Status         string        `json:"status"`
	Date           time.Time     `json:"date"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// Day returns the bill date in local time, for calendar-day filters.
func (b Bill) Day() time.Time {
	return b.Date.Local()
}

// DisplayDate renders the bill date as D/M/YYYY • h:MM AM/PM, matching the
// format shown on bill listings.
func (b Bill) DisplayDate() string {
	t := b.Date.Local()
	hour := t.Hour()
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d/%d/%d • %d:%02d %s",
		t.Day(), int(t.Month()), t.Year(), displayHour, t.Minute(), period)
}
