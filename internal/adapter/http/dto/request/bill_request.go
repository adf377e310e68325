package request

type CreateBillRequest struct {
	CustomerName   string `json:"customerName" binding:"required"`
	ContactNumber  string `json:"contactNumber" binding:"required,contactno"`
	Address        string `json:"address"`
	ServiceType    string `json:"serviceType" binding:"required"`
	ServiceBoyName string `json:"serviceBoyName" binding:"required"`
	ServiceCharge  string `json:"serviceCharge" binding:"required"`
	PaymentMethod  string `json:"paymentMethod" binding:"required,oneof=cash upi"`
	CashGiven      string `json:"cashGiven"`
	Notes          string `json:"notes"`
	Signature      string `json:"signature"`
}
