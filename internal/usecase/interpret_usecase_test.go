package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dream-insight/internal/domain/dream"
	"dream-insight/internal/interpreter"

	"github.com/google/uuid"
)

type savedDream struct {
	userID         uuid.UUID
	dream          string
	interpretation string
}

type mockDreamRepo struct {
	saved   []savedDream
	saveErr error

	records   []dream.Record
	listErr   error
	lastLimit int
}

func (m *mockDreamRepo) Save(_ context.Context, userID uuid.UUID, dreamText, interpretation string) (dream.Record, error) {
	if m.saveErr != nil {
		return dream.Record{}, m.saveErr
	}
	m.saved = append(m.saved, savedDream{userID: userID, dream: dreamText, interpretation: interpretation})
	return dream.Record{
		ID:             uuid.New(),
		UserID:         userID,
		Dream:          dreamText,
		Interpretation: interpretation,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

func (m *mockDreamRepo) ListRecent(_ context.Context, _ uuid.UUID, limit int) ([]dream.Record, error) {
	m.lastLimit = limit
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.records, nil
}

type mockGenerator struct {
	text string
	err  error
}

func (m mockGenerator) Generate(context.Context, string) (string, error) {
	return m.text, m.err
}

type mockCache struct {
	stored  map[string][]byte
	deleted []string
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.stored[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if m.stored == nil {
		m.stored = map[string][]byte{}
	}
	m.stored[key] = b
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	delete(m.stored, key)
	return nil
}

func TestInterpret_EmptyMessage(t *testing.T) {
	repo := &mockDreamRepo{}
	uc := NewInterpretUsecase(repo, mockGenerator{text: "анализ"}, nil, nil)

	for _, msg := range []string{"", "   ", "\n\t"} {
		_, err := uc.Interpret(context.Background(), InterpretInput{UserID: uuid.New(), Message: msg})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("message %q: expected ErrInvalidInput, got %v", msg, err)
		}
	}
	if len(repo.saved) != 0 {
		t.Fatalf("expected no dreams persisted, got %d", len(repo.saved))
	}
}

func TestInterpret_GeneratorSuccess(t *testing.T) {
	repo := &mockDreamRepo{}
	uc := NewInterpretUsecase(repo, mockGenerator{text: "Ваш сон говорит о переменах."}, nil, nil)

	userID := uuid.New()
	res, err := uc.Interpret(context.Background(), InterpretInput{UserID: userID, Message: "Я летал над городом"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Source != interpreter.SourceGenerated {
		t.Fatalf("expected generated source, got %q", res.Source)
	}
	if res.Text != "Ваш сон говорит о переменах." {
		t.Fatalf("generator text not used verbatim: %q", res.Text)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected exactly 1 persisted dream, got %d", len(repo.saved))
	}
	got := repo.saved[0]
	if got.userID != userID || got.dream != "Я летал над городом" || got.interpretation != res.Text {
		t.Fatalf("unexpected persisted record: %+v", got)
	}
}

func TestInterpret_FallbackOnGeneratorFailure(t *testing.T) {
	repo := &mockDreamRepo{}
	uc := NewInterpretUsecase(repo, mockGenerator{err: errors.New("connection refused")}, nil, nil)

	msg := "У меня кошмары, которые повторяются"
	res, err := uc.Interpret(context.Background(), InterpretInput{UserID: uuid.New(), Message: msg})
	if err != nil {
		t.Fatalf("generator outage must not fail the request: %v", err)
	}
	if res.Source != interpreter.SourceFallback {
		t.Fatalf("expected fallback source, got %q", res.Source)
	}
	if res.Text != interpreter.Classify(msg) {
		t.Fatalf("expected nightmare-priority fallback text, got %q", res.Text)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected exactly 1 persisted dream, got %d", len(repo.saved))
	}
}

func TestInterpret_FallbackDefault(t *testing.T) {
	repo := &mockDreamRepo{}
	uc := NewInterpretUsecase(repo, mockGenerator{err: errors.New("timeout")}, nil, nil)

	res, err := uc.Interpret(context.Background(), InterpretInput{UserID: uuid.New(), Message: "Я гулял по лесу"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Text != interpreter.Classify("Я гулял по лесу") {
		t.Fatalf("expected default fallback text, got %q", res.Text)
	}
	if res.Text == "" {
		t.Fatal("interpretation must never be empty")
	}
}

func TestInterpret_PersistenceFailure(t *testing.T) {
	repo := &mockDreamRepo{saveErr: dream.ErrUserNotFound}
	uc := NewInterpretUsecase(repo, mockGenerator{text: "анализ"}, nil, nil)

	res, err := uc.Interpret(context.Background(), InterpretInput{UserID: uuid.New(), Message: "сон"})
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
	if res.Text != "" {
		t.Fatalf("interpretation must not be returned when the save failed, got %q", res.Text)
	}
}

func TestInterpret_InvalidatesHistoryCache(t *testing.T) {
	repo := &mockDreamRepo{}
	cache := &mockCache{}
	uc := NewInterpretUsecase(repo, mockGenerator{text: "анализ"}, cache, nil)

	userID := uuid.New()
	if _, err := uc.Interpret(context.Background(), InterpretInput{UserID: userID, Message: "сон"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cache.deleted) != 1 || cache.deleted[0] != historyCacheKey(userID) {
		t.Fatalf("expected history cache key invalidated, got %v", cache.deleted)
	}
}

func TestInterpret_NilGeneratorUsesFallback(t *testing.T) {
	repo := &mockDreamRepo{}
	uc := NewInterpretUsecase(repo, nil, nil, nil)

	res, err := uc.Interpret(context.Background(), InterpretInput{UserID: uuid.New(), Message: "осознанный сон"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Source != interpreter.SourceFallback {
		t.Fatalf("expected fallback source, got %q", res.Source)
	}
}
