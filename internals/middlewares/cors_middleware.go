// file: internals/middlewares/cors_middleware.go

package middlewares

import (
	"strings"

	"unicalc_backend/internals/configs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware membuat middleware CORS (origin dari CORS_ALLOW_ORIGINS)
func CorsMiddleware() fiber.Handler {
	origins := configs.CorsAllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	return cors.New(cors.Config{
		AllowOrigins: strings.Join(origins, ", "),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		// tidak ada sesi/cookie
		AllowCredentials: false,
		ExposeHeaders:    "X-Request-ID",
	})
}
