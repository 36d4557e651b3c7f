package usecase

import (
	"context"
	"log"
	"strings"

	"dream-insight/internal/domain/dream"
	"dream-insight/internal/infrastructure/generator"
	"dream-insight/internal/interpreter"

	"github.com/google/uuid"
)

type InterpretInput struct {
	UserID  uuid.UUID
	Message string
}

type InterpretUsecase interface {
	Interpret(ctx context.Context, in InterpretInput) (interpreter.Result, error)
}

// Interpret runs the request pipeline: validate, try the external generator,
// fall back to keyword classification, persist, return. It holds no state
// across requests.
type Interpret struct {
	dreams dream.Repository
	gen    generator.Client
	cache  HistoryCache
	logger *log.Logger
}

func NewInterpretUsecase(dreams dream.Repository, gen generator.Client, cache HistoryCache, logger *log.Logger) *Interpret {
	return &Interpret{dreams: dreams, gen: gen, cache: cache, logger: logger}
}

func (u *Interpret) Interpret(ctx context.Context, in InterpretInput) (interpreter.Result, error) {
	if strings.TrimSpace(in.Message) == "" {
		return interpreter.Result{}, ErrInvalidInput
	}

	res := u.resolve(ctx, in.Message)

	// Persistence is a precondition for a successful response: an
	// interpretation the store could not record is never returned.
	if _, err := u.dreams.Save(ctx, in.UserID, in.Message, res.Text); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Interpret] save failed user=%s err=%v", in.UserID, err)
		}
		return interpreter.Result{}, ErrPersistence
	}

	if u.cache != nil {
		if err := u.cache.Delete(ctx, historyCacheKey(in.UserID)); err != nil && u.logger != nil {
			u.logger.Printf("[Interpret] history cache invalidation failed user=%s err=%v", in.UserID, err)
		}
	}

	return res, nil
}

// resolve never fails: a generator outage is absorbed here and answered by
// the deterministic fallback.
func (u *Interpret) resolve(ctx context.Context, message string) interpreter.Result {
	if u.gen != nil {
		text, err := u.gen.Generate(ctx, message)
		if err == nil {
			return interpreter.Result{Text: text, Source: interpreter.SourceGenerated}
		}
		if u.logger != nil {
			u.logger.Printf("[Interpret] generator unavailable, using fallback: %v", err)
		}
	}
	return interpreter.Result{Text: interpreter.Classify(message), Source: interpreter.SourceFallback}
}
