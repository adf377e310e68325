package response

import (
	"time"

	"servicevale/internal/domain/entities"
)

// ServiceOrderResponse mirrors the order entity and adds the display forms
// the app renders on cards (DD/MM/YYYY dates, 12-hour times).
type ServiceOrderResponse struct {
	ID                string    `json:"id"`
	ServiceboyName    string    `json:"serviceboyName"`
	ServiceboyEmail   string    `json:"serviceboyEmail"`
	ServiceboyContact string    `json:"serviceboyContact"`
	ClientName        string    `json:"clientName"`
	PhoneNumber       string    `json:"phoneNumber"`
	Address           string    `json:"address"`
	BillAmount        string    `json:"billAmount"`
	ServiceType       string    `json:"serviceType"`
	Status            string    `json:"status"`
	ServiceDate       string    `json:"serviceDate"`
	ServiceTime       string    `json:"serviceTime"`
	DisplayDate       string    `json:"displayDate"`
	DisplayTime       string    `json:"displayTime"`
	CompletedAt       time.Time `json:"completedAt,omitzero"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	return ServiceOrderResponse{
		ID:                o.ID,
		ServiceboyName:    o.ServiceboyName,
		ServiceboyEmail:   o.ServiceboyEmail,
		ServiceboyContact: o.ServiceboyContact,
		ClientName:        o.ClientName,
		PhoneNumber:       o.PhoneNumber,
		Address:           o.Address,
		BillAmount:        o.BillAmount,
		ServiceType:       o.ServiceType,
		Status:            string(o.Status),
		ServiceDate:       o.ServiceDate,
		ServiceTime:       o.ServiceTime,
		DisplayDate:       o.DisplayDate(),
		DisplayTime:       o.DisplayTime(),
		CompletedAt:       o.CompletedAt,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func FromServiceOrders(items []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(items))
	for _, o := range items {
		out = append(out, FromServiceOrder(o))
	}
	return out
}

type PendingCountsResponse struct {
	Counts map[string]int `json:"counts"`
}

type WhatsAppLinkResponse struct {
	Link string `json:"link"`
}
