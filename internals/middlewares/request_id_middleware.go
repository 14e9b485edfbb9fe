package middlewares

import (
	"context"
	"strings"
	"time"

	"unicalc_backend/internals/configs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"
)

// RequestContext: pasang X-Request-ID + timeout di UserContext.
func RequestContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := strings.TrimSpace(c.Get(fiber.HeaderXRequestID))
		if rid == "" || len(rid) > 64 {
			rid = utils.UUID()
		}
		c.Locals("request_id", rid)
		c.Set(fiber.HeaderXRequestID, rid)

		timeout := configs.RequestTimeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)

		return c.Next()
	}
}
