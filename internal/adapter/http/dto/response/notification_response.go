package response

import (
	"time"

	"servicevale/internal/domain/entities"
)

type NotificationResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	IsRead      bool      `json:"isRead"`
	UserEmail   string    `json:"userEmail"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		Description: n.Description,
		IsRead:      n.IsRead,
		UserEmail:   n.UserEmail,
		CreatedAt:   n.CreatedAt,
	}
}

func FromNotifications(items []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, FromNotification(n))
	}
	return out
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}

type DeletedCountResponse struct {
	Deleted int `json:"deleted"`
}
