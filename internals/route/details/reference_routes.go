package details

import (
	"fmt"

	refRoute "unicalc_backend/internals/features/references/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// /api/n/references/*
func ReferenceRoutes(r fiber.Router, db *gorm.DB) {
	refs := r.Group("", publicCache(300))
	refRoute.ReferenceRoutes(refs, db)
}

// tabel referensi jarang berubah
func publicCache(seconds int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil && c.Response().StatusCode() == fiber.StatusOK {
			c.Set("Cache-Control", fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", seconds, seconds*2))
		}
		return err
	}
}
