package dto

import (
	"github.com/google/uuid"
)

// RefreshRatingMessage asks the rating consumer to recompute a perfume's
// aggregate rating from its reviews. Published on every review write.
type RefreshRatingMessage struct {
	PerfumeId uuid.UUID `json:"perfume_id"`
}

// UserLoginEvent is broadcast on the event bus after a successful login.
type UserLoginEvent struct {
	UserId uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Ip     string    `json:"ip"`
}

// PerfumeRestockedEvent is broadcast when a vending machine stock update
// raises a perfume's quantity from zero.
type PerfumeRestockedEvent struct {
	MachineId   uuid.UUID `json:"machine_id"`
	MachineName string    `json:"machine_name"`
	PerfumeId   uuid.UUID `json:"perfume_id"`
	Quantity    int       `json:"quantity"`
}
