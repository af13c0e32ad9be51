package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"khataman_backend/internals/features/groups/model"
	helper "khataman_backend/internals/helpers"
)

type GroupController struct {
	DB *gorm.DB
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{DB: db}
}

// ✅ Ambil semua kelompok (urut nama). Data ini read-only: diprovisikan
// seeder, tidak ada jalur tulis dari API.
func (ctrl *GroupController) GetAllGroups(c *fiber.Ctx) error {
	var groups []model.GroupModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("name").
		Find(&groups).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelompok")
	}

	return helper.JsonOK(c, "Berhasil mengambil kelompok", groups)
}
