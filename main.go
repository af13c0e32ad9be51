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
	"github.com/gofiber/fiber/v2/utils"

	"khataman_backend/internals/configs"
	database "khataman_backend/internals/databases"
	claimService "khataman_backend/internals/features/claims/service"
	"khataman_backend/internals/features/live"
	"khataman_backend/internals/gateway"
	middlewares "khataman_backend/internals/middlewares"
	routes "khataman_backend/internals/route"
	seeds "khataman_backend/internals/seeds"
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
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	// 🔎 Request-ID + timing (observability ringan)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + skema + seed
	database.ConnectDB()
	database.TunePool()
	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("❌ Migrasi skema gagal: %v", err)
	}
	seeds.RunAllSeeds(database.DB)

	// 🔄 Gateway + hub read-model: fetch awal dulu, baru subscribe.
	store := gateway.New(database.DB)
	hub := live.NewHub(store)
	startCtx, cancelStart := context.WithTimeout(context.Background(), 10*time.Second)
	if err := hub.Start(startCtx); err != nil {
		cancelStart()
		log.Fatalf("❌ Gagal mengambil snapshot awal: %v", err)
	}
	cancelStart()

	unsubscribe, err := gateway.SubscribeToClaimChanges(database.DSN(), func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		hub.Refresh(ctx)
	})
	if err != nil {
		// Degradasi: tanpa live update, data tetap tampil (basi tapi valid).
		log.Printf("⚠️ Gagal subscribe perubahan klaim, live update mati: %v", err)
		unsubscribe = func() {}
	}

	engine := claimService.NewEngine(store, claimService.Routing{
		PrimaryEntity:    configs.EntityPrimary,
		DefaultGroupName: configs.EntityDefaultGroup,
	})

	// ❤️ Health check (anti-cold start)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, engine, hub)

	tuneServerTimeouts(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup listener & pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	unsubscribe()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// 🔒 Keep-Alive & timeout koneksi server. Write deadline sengaja tidak
// dipasang: deadline tulis berlaku untuk seluruh respons, termasuk stream
// SSE /api/live yang memang berumur panjang.
func tuneServerTimeouts(app *fiber.App) {
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().IdleTimeout = 90 * time.Second
}
