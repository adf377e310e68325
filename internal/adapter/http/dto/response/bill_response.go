package response

import (
	"time"

	"servicevale/internal/domain/entities"
)

type BillResponse struct {
	BillNumber     string    `json:"billNumber"`
	CustomerName   string    `json:"customerName"`
	ContactNumber  string    `json:"contactNumber"`
	Address        string    `json:"address"`
	ServiceType    string    `json:"serviceType"`
	ServiceBoyName string    `json:"serviceBoyName"`
	ServiceCharge  string    `json:"serviceCharge"`
	Total          string    `json:"total"`
	PaymentMethod  string    `json:"paymentMethod"`
	CashGiven      string    `json:"cashGiven,omitempty"`
	Change         string    `json:"change,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	Signature      string    `json:"signature,omitempty"`
	Status         string    `json:"status"`
	Date           time.Time `json:"date"`
	DisplayDate    string    `json:"displayDate"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromBill(b entities.Bill) BillResponse {
	return BillResponse{
		BillNumber:     b.BillNumber,
		CustomerName:   b.CustomerName,
		ContactNumber:  b.ContactNumber,
		Address:        b.Address,
		ServiceType:    b.ServiceType,
		ServiceBoyName: b.ServiceBoyName,
		ServiceCharge:  b.ServiceCharge,
		Total:          b.Total,
		PaymentMethod:  string(b.PaymentMethod),
		CashGiven:      b.CashGiven,
		Change:         b.Change,
		Notes:          b.Notes,
		Signature:      b.Signature,
		Status:         b.Status,
		Date:           b.Date,
		DisplayDate:    b.DisplayDate(),
		CreatedAt:      b.CreatedAt,
	}
}

func FromBills(items []entities.Bill) []BillResponse {
	out := make([]BillResponse, 0, len(items))
	for _, b := range items {
		out = append(out, FromBill(b))
	}
	return out
}
