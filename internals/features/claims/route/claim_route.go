package route

import (
	"github.com/gofiber/fiber/v2"

	claimController "khataman_backend/internals/features/claims/controller"
	"khataman_backend/internals/features/claims/service"
	"khataman_backend/internals/features/live"
	"khataman_backend/internals/middlewares"
)

// ClaimRoutes defines the routes for claims
func ClaimRoutes(api fiber.Router, engine *service.Engine, hub *live.Hub) {
	claimCtrl := claimController.NewClaimController(engine, hub)

	claims := api.Group("/claims")
	claims.Post("/", middlewares.ClaimRateLimiter(), claimCtrl.CreateClaim) // Klaim part
	claims.Get("/", claimCtrl.GetAllClaims)                                 // Daftar klaim

	api.Get("/entities", claimCtrl.GetEntityOptions) // Opsi entitas + routing
}
