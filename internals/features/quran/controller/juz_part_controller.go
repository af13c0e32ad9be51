package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	claimService "khataman_backend/internals/features/claims/service"
	"khataman_backend/internals/features/quran/model"
	helper "khataman_backend/internals/helpers"
)

type JuzPartController struct {
	DB *gorm.DB
}

func NewJuzPartController(db *gorm.DB) *JuzPartController {
	return &JuzPartController{DB: db}
}

// ✅ Ambil semua part, dikelompokkan per juz dan terurut part_number.
// Juz yang tidak muncul di map berarti belum dikonfigurasi.
func (ctrl *JuzPartController) GetJuzParts(c *fiber.Ctx) error {
	var parts []model.JuzPartModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("juz_number, part_number").
		Find(&parts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data part")
	}

	return helper.JsonOK(c, "Berhasil mengambil part per juz", fiber.Map{
		"total":        len(parts),
		"parts_by_juz": claimService.PartsByJuz(parts),
	})
}
