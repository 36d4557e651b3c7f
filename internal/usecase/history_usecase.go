package usecase

import (
	"context"
	"log"

	"dream-insight/internal/domain/dream"

	"github.com/google/uuid"
)

const historyLimit = 20

type HistoryUsecase interface {
	History(ctx context.Context, userID uuid.UUID) ([]dream.Record, error)
}

type History struct {
	dreams dream.Repository
	cache  HistoryCache
	logger *log.Logger
}

func NewHistoryUsecase(dreams dream.Repository, cache HistoryCache, logger *log.Logger) *History {
	return &History{dreams: dreams, cache: cache, logger: logger}
}

func (u *History) History(ctx context.Context, userID uuid.UUID) ([]dream.Record, error) {
	key := historyCacheKey(userID)

	if u.cache != nil {
		var cached []dream.Record
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	recs, err := u.dreams.ListRecent(ctx, userID, historyLimit)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[History] list failed user=%s err=%v", userID, err)
		}
		return nil, ErrPersistence
	}
	if len(recs) > historyLimit {
		recs = recs[:historyLimit]
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, recs, 0); err != nil && u.logger != nil {
			u.logger.Printf("[History] cache set failed user=%s err=%v", userID, err)
		}
	}

	return recs, nil
}
