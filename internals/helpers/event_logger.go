package helper

import (
	"os"
	"time"

	gokitlog "github.com/go-kit/log"
	"github.com/gofiber/fiber/v2"
)

// NewEventLogger: logfmt ke stdout, dipakai controller kalkulator.
func NewEventLogger(component string) gokitlog.Logger {
	logger := gokitlog.NewLogfmtLogger(gokitlog.NewSyncWriter(os.Stdout))
	return gokitlog.With(logger,
		"ts", gokitlog.DefaultTimestampUTC,
		"caller", gokitlog.DefaultCaller,
		"component", component,
	)
}

// LogEvent mencatat satu kalkulasi (event, req_id, took, err).
func LogEvent(logger gokitlog.Logger, c *fiber.Ctx, event string, start time.Time, err error, kv ...any) {
	if logger == nil {
		return
	}
	fields := []any{
		"event", event,
		"req_id", RequestID(c),
		"took", time.Since(start).String(),
	}
	if err != nil {
		fields = append(fields, "err", err.Error())
	}
	_ = logger.Log(append(fields, kv...)...)
}

// RequestID membaca id yang dipasang middleware request-id.
func RequestID(c *fiber.Ctx) string {
	if v, ok := c.Locals("request_id").(string); ok && v != "" {
		return v
	}
	return c.Get(fiber.HeaderXRequestID)
}
