package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// OrderStatus is the two-state lifecycle of a service order.
//
// Domain notes:
//   - pending -> completed is the normal flow (Complete stamps CompletedAt).
//   - completed -> pending is an explicit admin action that resets only the
//     status field; CompletedAt is intentionally left as-is (recorded
//     product decision, see DESIGN.md).

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

// ServiceOrder is a scheduled service job linking a customer to an assigned
// engineer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
//
// The engineer fields are a point-in-time snapshot taken at creation, not a
// live reference: editing or deleting the engineer later must not rewrite
// historical orders.
type ServiceOrder struct {
	ID                string      `json:"id"`
	ServiceboyName    string      `json:"serviceboyName"`
	ServiceboyEmail   string      `json:"serviceboyEmail"`
	ServiceboyContact string      `json:"serviceboyContact"`
	ClientName        string      `json:"clientName"`
	PhoneNumber       string      `json:"phoneNumber"`
	Address           string      `json:"address"`
	BillAmount        string      `json:"billAmount"`
	ServiceType       string      `json:"serviceType"`
	Status            OrderStatus `json:"status"`
	ServiceDate       string      `json:"serviceDate"` // sortable YYYY-MM-DD
	ServiceTime       string      `json:"serviceTime"` // sortable 24h HH:MM
	CompletedAt       time.Time   `json:"completedAt,omitzero"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

// DisplayDate renders the sortable service date as DD/MM/YYYY.
func (o ServiceOrder) DisplayDate() string {
	parts := strings.Split(o.ServiceDate, "-")
	if len(parts) != 3 {
		return o.ServiceDate
	}
	return fmt.Sprintf("%s/%s/%s", parts[2], parts[1], parts[0])
}

// DisplayTime renders the sortable 24h service time as h:MM AM/PM.
func (o ServiceOrder) DisplayTime() string {
	parts := strings.Split(o.ServiceTime, ":")
	if len(parts) != 2 {
		return o.ServiceTime
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return o.ServiceTime
	}
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%s %s", displayHour, parts[1], period)
}

// ServiceDay parses the sortable service date as a local calendar day.
// The zero time is returned for malformed dates so day filters skip them.
func (o ServiceOrder) ServiceDay() time.Time {
	t, err := time.ParseInLocation("2006-01-02", o.ServiceDate, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}
