package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"dream-insight/internal/domain/dream"

	"github.com/google/uuid"
)

func makeRecords(userID uuid.UUID, n int) []dream.Record {
	now := time.Now().UTC()
	out := make([]dream.Record, 0, n)
	// Newest-first, matching the repository's ordering contract.
	for i := 0; i < n; i++ {
		out = append(out, dream.Record{
			ID:             uuid.New(),
			UserID:         userID,
			Dream:          "сон",
			Interpretation: "анализ",
			CreatedAt:      now.Add(-time.Duration(i) * time.Minute),
		})
	}
	return out
}

func TestHistory_PassesLimitAndOrder(t *testing.T) {
	userID := uuid.New()
	repo := &mockDreamRepo{records: makeRecords(userID, 20)}
	uc := NewHistoryUsecase(repo, nil, nil)

	recs, err := uc.History(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastLimit != 20 {
		t.Fatalf("expected repository limit 20, got %d", repo.lastLimit)
	}
	if len(recs) != 20 {
		t.Fatalf("expected 20 records, got %d", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].CreatedAt.After(recs[i-1].CreatedAt) {
			t.Fatalf("records not newest-first at index %d", i)
		}
	}
}

func TestHistory_TruncatesOverLimit(t *testing.T) {
	userID := uuid.New()
	repo := &mockDreamRepo{records: makeRecords(userID, 25)}
	uc := NewHistoryUsecase(repo, nil, nil)

	recs, err := uc.History(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(recs) != 20 {
		t.Fatalf("expected 20 records, got %d", len(recs))
	}
}

func TestHistory_UnknownUserEmpty(t *testing.T) {
	repo := &mockDreamRepo{}
	uc := NewHistoryUsecase(repo, nil, nil)

	recs, err := uc.History(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unknown user must not be an error: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected empty history, got %d", len(recs))
	}
}

func TestHistory_RepositoryFailure(t *testing.T) {
	repo := &mockDreamRepo{listErr: errors.New("connection reset")}
	uc := NewHistoryUsecase(repo, nil, nil)

	_, err := uc.History(context.Background(), uuid.New())
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
}

func TestHistory_ServedFromCache(t *testing.T) {
	userID := uuid.New()
	cache := &mockCache{}
	repo := &mockDreamRepo{records: makeRecords(userID, 3)}
	uc := NewHistoryUsecase(repo, cache, nil)

	first, err := uc.History(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// Second call must hit the cache, not the repository.
	repo.listErr = errors.New("repository must not be called")
	second, err := uc.History(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err on cached read: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("cached history mismatch: %d vs %d", len(second), len(first))
	}
	if second[0].ID != first[0].ID {
		t.Fatal("cached history returned different records")
	}
}
