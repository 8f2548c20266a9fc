package middlewares

import (
	"time"

	"halodkm_backend/internals/configs"
	"halodkm_backend/internals/middlewares/logger"

	"github.com/gofiber/fiber/v2"
)

func SetupMiddlewares(app *fiber.App) {
	timeout := time.Duration(configs.GetEnvInt("HTTP_REQUEST_TIMEOUT_MS", 5000)) * time.Millisecond

	app.Use(RecoveryMiddleware())
	app.Use(RequestID(timeout))
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
