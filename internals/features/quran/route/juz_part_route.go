package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quranController "khataman_backend/internals/features/quran/controller"
)

// JuzPartRoutes defines the routes for juz parts
func JuzPartRoutes(api fiber.Router, db *gorm.DB) {
	juzPartCtrl := quranController.NewJuzPartController(db)

	api.Get("/juz-parts", juzPartCtrl.GetJuzParts) // Part per juz
}
