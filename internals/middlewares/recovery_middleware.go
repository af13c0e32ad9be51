package middlewares

import (
	"log"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware menangkap panic supaya satu request yang meledak tidak
// menjatuhkan proses; klaim yang sedang berjalan di request lain tetap hidup.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Printf("❌ panic %s %s: %v\n%s", c.Method(), c.Path(), e, debug.Stack())
		},
	})
}
