package route

import (
	"github.com/gofiber/fiber/v2"

	"khataman_backend/internals/features/live"
	liveController "khataman_backend/internals/features/live/controller"
)

// LiveRoutes defines the routes for the live read-model
func LiveRoutes(api fiber.Router, hub *live.Hub) {
	liveCtrl := liveController.NewLiveController(hub)

	api.Get("/snapshot", liveCtrl.GetSnapshot)      // Potret penuh
	api.Get("/progress", liveCtrl.GetGroupProgress) // Progress per kelompok
	api.Get("/live", liveCtrl.StreamChanges)        // Stream SSE perubahan
}
