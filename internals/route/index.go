package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	campaignRoute "khataman_backend/internals/features/campaigns/route"
	claimRoute "khataman_backend/internals/features/claims/route"
	claimService "khataman_backend/internals/features/claims/service"
	exportRoute "khataman_backend/internals/features/export/route"
	groupRoute "khataman_backend/internals/features/groups/route"
	"khataman_backend/internals/features/live"
	liveRoute "khataman_backend/internals/features/live/route"
	quranRoute "khataman_backend/internals/features/quran/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, engine *claimService.Engine, hub *live.Hub) {
	api := app.Group("/api")

	log.Println("[INFO] Setting up CampaignRoutes...")
	campaignRoute.CampaignRoutes(api, db)

	log.Println("[INFO] Setting up GroupRoutes...")
	groupRoute.GroupRoutes(api, db)

	log.Println("[INFO] Setting up JuzPartRoutes...")
	quranRoute.JuzPartRoutes(api, db)

	log.Println("[INFO] Setting up ClaimRoutes...")
	claimRoute.ClaimRoutes(api, engine, hub)

	log.Println("[INFO] Setting up LiveRoutes...")
	liveRoute.LiveRoutes(api, hub)

	log.Println("[INFO] Setting up ExportRoutes...")
	exportRoute.ExportRoutes(api, hub)
}
