package handler

import (
	"errors"

	"dream-insight/internal/delivery/http/dto"
	"dream-insight/internal/delivery/http/middleware"
	"dream-insight/internal/pkg/response"
	"dream-insight/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type DreamHandler struct {
	interpret usecase.InterpretUsecase
	history   usecase.HistoryUsecase
}

type interpretRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

func NewDreamHandler(interpret usecase.InterpretUsecase, history usecase.HistoryUsecase) *DreamHandler {
	return &DreamHandler{interpret: interpret, history: history}
}

func (h *DreamHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/interpret", h.Interpret)
	r.Get("/history/:userId", h.History)
}

func (h *DreamHandler) Interpret(c fiber.Ctx) error {
	var req interpretRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", err)
	}

	res, err := h.interpret.Interpret(c.Context(), usecase.InterpretInput{
		UserID:  userID,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Dream text must not be empty", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.InterpretationResponse{Interpretation: res.Text})
}

func (h *DreamHandler) History(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", err)
	}

	recs, err := h.history.History(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	items := make([]dto.DreamHistoryItem, 0, len(recs))
	for _, rec := range recs {
		items = append(items, dto.DreamHistoryItem{
			ID:             rec.ID,
			Dream:          rec.Dream,
			Interpretation: rec.Interpretation,
			CreatedAt:      rec.CreatedAt,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.DreamHistoryResponse{History: items})
}
