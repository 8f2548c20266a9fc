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
	"github.com/shopspring/decimal"

	"halodkm_backend/internals/configs"
	database "halodkm_backend/internals/databases"
	auditService "halodkm_backend/internals/features/audit/service"
	helper "halodkm_backend/internals/helpers"
	middlewares "halodkm_backend/internals/middlewares"
	routes "halodkm_backend/internals/route"
	"halodkm_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	// nominal tampil sebagai angka JSON, bukan string
	decimal.MarshalJSONWithoutQuotes = true

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.ErrorHandler,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	if configs.AutoMigrate {
		if err := database.AutoMigrate(database.DB); err != nil {
			log.Fatalf("❌ Migrasi gagal: %v", err)
		}
	}

	if configs.GetEnvBool("RUN_SEEDS", false) {
		seeds.RunAllSeeds(database.DB)
	}

	// 📝 audit log ditulis di background, tidak memblokir request
	sink := auditService.NewAsyncSink(auditService.NewDBWriter(database.DB), configs.AuditBufferSize)

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, sink)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "5000")

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown: server → audit → pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("shutdown err: %v", err)
	}
	if err := sink.Close(ctx); err != nil {
		log.Printf("audit flush err: %v", err)
	}
	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
