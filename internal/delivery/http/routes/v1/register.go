package v1

import (
	"log"

	"dream-insight/internal/config"
	"dream-insight/internal/database"
	"dream-insight/internal/delivery/http/handler"
	"dream-insight/internal/infrastructure/cache"
	"dream-insight/internal/infrastructure/generator"
	"dream-insight/internal/repository"
	"dream-insight/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, logger *log.Logger) {
	if r == nil {
		return
	}

	userRepo := repository.NewPostgresUserRepository(db)
	dreamRepo := repository.NewPostgresDreamRepository(db)

	gen := generator.NewOllamaClient(cfg.Generator, logger)
	historyCache := cache.NewRedis(cfg.Redis, logger)

	registerUC := usecase.NewRegisterUsecase(userRepo, logger)
	interpretUC := usecase.NewInterpretUsecase(dreamRepo, gen, historyCache, logger)
	historyUC := usecase.NewHistoryUsecase(dreamRepo, historyCache, logger)

	authHandler := handler.NewAuthHandler(registerUC)
	dreamHandler := handler.NewDreamHandler(interpretUC, historyUC)

	authHandler.RegisterRoutes(r)

	dreamsGroup := r.Group("/dreams")
	dreamHandler.RegisterRoutes(dreamsGroup)
}
