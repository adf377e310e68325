package response

import (
	"time"

	"servicevale/internal/domain/entities"
)

type EngineerResponse struct {
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

func FromEngineer(e entities.Engineer) EngineerResponse {
	return EngineerResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		ContactNo: e.ContactNo,
		Address:   e.Address,
		AadharNo:  e.AadharNo,
		PanNo:     e.PanNo,
		City:      e.City,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func FromEngineers(items []entities.Engineer) []EngineerResponse {
	out := make([]EngineerResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromEngineer(e))
	}
	return out
}
