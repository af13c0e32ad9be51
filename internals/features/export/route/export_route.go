package route

import (
	"github.com/gofiber/fiber/v2"

	exportController "khataman_backend/internals/features/export/controller"
	"khataman_backend/internals/features/live"
	"khataman_backend/internals/middlewares"
)

// ExportRoutes defines the routes for data export
func ExportRoutes(api fiber.Router, hub *live.Hub) {
	exportCtrl := exportController.NewExportController(hub)

	api.Post("/export/claims", middlewares.ExportRateLimiter(), exportCtrl.ExportClaims)
}
