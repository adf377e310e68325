package request

type CreateOrderRequest struct {
	EngineerID    string `json:"engineerId" binding:"required"`
	ClientName    string `json:"clientName" binding:"required"`
	PhoneNumber   string `json:"phoneNumber" binding:"required,contactno"`
	Address       string `json:"address" binding:"required"`
	BillAmount    string `json:"billAmount"`
	ServiceType   string `json:"serviceType" binding:"required"`
	ServiceDate   string `json:"serviceDate" binding:"required,datetime=2006-01-02"`
	ServiceTime   string `json:"serviceTime" binding:"required"`
	ServicePeriod string `json:"servicePeriod" binding:"required,oneof=AM PM"`
}
