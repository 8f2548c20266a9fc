package middlewares

import (
	"strings"

	"halodkm_backend/internals/configs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware: origin dari CORS_ALLOW_ORIGINS (dipisah koma), default "*".
func CorsMiddleware() fiber.Handler {
	origins := normalizeOrigins(configs.GetEnv("CORS_ALLOW_ORIGINS", "*"))
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID, x-user-info",
		ExposeHeaders:    "X-Request-ID",
		AllowCredentials: origins != "*", // fiber menolak wildcard + credentials
	})
}

func normalizeOrigins(raw string) string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return "*"
	}
	return strings.Join(out, ", ")
}
