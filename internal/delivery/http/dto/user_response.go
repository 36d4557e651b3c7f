package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Birthdate string    `json:"birthdate,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
