package dream

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrUserNotFound reports a save against a user id with no users row.
var ErrUserNotFound = errors.New("dream owner not found")

type Repository interface {
	Save(ctx context.Context, userID uuid.UUID, dreamText, interpretation string) (Record, error)

	// ListRecent returns up to limit records newest-first. An unknown user
	// yields an empty slice, not an error.
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]Record, error)
}
