package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware mencatat setiap request dengan waktu WIB. Jalur klaim dan
// ekspor diaudit dari log yang sama, jadi status + latensi ditaruh di depan.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Format:     "[${time}] ${status} ${method} ${path} (${latency}) ${ip}\n",
	})
}
