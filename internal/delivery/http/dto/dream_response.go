package dto

import (
	"time"

	"github.com/google/uuid"
)

type InterpretationResponse struct {
	Interpretation string `json:"interpretation"`
}

type DreamHistoryItem struct {
	ID             uuid.UUID `json:"id"`
	Dream          string    `json:"dream"`
	Interpretation string    `json:"interpretation"`
	CreatedAt      time.Time `json:"created_at"`
}

type DreamHistoryResponse struct {
	History []DreamHistoryItem `json:"history"`
}
