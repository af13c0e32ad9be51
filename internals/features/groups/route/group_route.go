package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupController "khataman_backend/internals/features/groups/controller"
)

// GroupRoutes defines the routes for groups
func GroupRoutes(api fiber.Router, db *gorm.DB) {
	groupCtrl := groupController.NewGroupController(db)

	api.Get("/groups", groupCtrl.GetAllGroups) // Semua kelompok
}
