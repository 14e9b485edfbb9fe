package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"unicalc_backend/internals/configs"
	database "unicalc_backend/internals/databases"
	middlewares "unicalc_backend/internals/middlewares"
	routes "unicalc_backend/internals/route"
	"unicalc_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		},
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching untuk tabel referensi

	middlewares.SetupMiddlewares(app)

	// 🔌 DB opsional (hanya untuk tabel referensi)
	if database.ConnectDB() {
		database.TunePool()
		if configs.DBAutoMigrate {
			if err := database.Migrate(database.DB); err != nil {
				log.Fatalf("❌ AutoMigrate gagal: %v", err)
			}
		}
		if configs.SeedReferences {
			seeds.RunAllSeeds(database.DB, configs.SeedDir)
		}
	}

	// ✅ Routes
	routes.SetupRoutes(app, database.DB)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	database.Close()
	log.Println("👋 Server stopped")
}
