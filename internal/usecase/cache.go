package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// HistoryCache is satisfied by the Redis wrapper; a nil-capable fake stands
// in for it in tests. Implementations must tolerate being unavailable.
type HistoryCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

func historyCacheKey(userID uuid.UUID) string {
	return "dreams:history:" + userID.String()
}
