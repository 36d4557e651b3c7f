package routes

import (
	"log"

	"dream-insight/internal/config"
	"dream-insight/internal/database"
	v1 "dream-insight/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

func Register(app *fiber.App, cfg config.Config, db database.DB, logger *log.Logger) {
	if app == nil {
		return
	}

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), cfg, db, logger)
}
