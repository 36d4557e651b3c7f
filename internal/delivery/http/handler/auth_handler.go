package handler

import (
	"errors"

	"dream-insight/internal/delivery/http/dto"
	"dream-insight/internal/delivery/http/middleware"
	"dream-insight/internal/pkg/response"
	"dream-insight/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.RegisterUsecase
}

type registerRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Birthdate string `json:"birthdate"`
}

func NewAuthHandler(uc usecase.RegisterUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/auth", h.Register)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	usr, err := h.uc.Register(c.Context(), usecase.RegisterInput{
		Name:      req.Name,
		Phone:     req.Phone,
		Birthdate: req.Birthdate,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Name and phone are required", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	res := dto.UserResponse{
		ID:        usr.ID,
		Name:      usr.Name,
		Phone:     usr.Phone,
		Birthdate: usr.Birthdate,
		CreatedAt: usr.CreatedAt,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
