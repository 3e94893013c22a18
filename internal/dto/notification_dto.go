package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	Id        uuid.UUID       `json:"id"`
	TypeCode  string          `json:"type_code"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	IsRead    bool            `json:"is_read"`
	CreatedAt time.Time       `json:"created_at"`
}

type ListNotificationsQuery struct {
	UnreadOnly bool   `query:"unread_only"`
	Type       string `query:"type" validate:"omitempty,max=64"`
	Limit      int    `query:"limit" validate:"omitempty,gte=1,lte=100"`
}

type MarkNotificationReadRequest struct {
	Id uuid.UUID
}
