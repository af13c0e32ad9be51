package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	campaignController "khataman_backend/internals/features/campaigns/controller"
)

// CampaignRoutes defines the routes for campaigns
func CampaignRoutes(api fiber.Router, db *gorm.DB) {
	campaignCtrl := campaignController.NewCampaignController(db)

	campaigns := api.Group("/campaigns")
	campaigns.Get("/", campaignCtrl.GetAllCampaigns)         // Semua kampanye
	campaigns.Get("/active", campaignCtrl.GetActiveCampaign) // Kampanye aktif
}
