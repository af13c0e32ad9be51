package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"khataman_backend/internals/features/campaigns/model"
	helper "khataman_backend/internals/helpers"
)

type CampaignController struct {
	DB *gorm.DB
}

func NewCampaignController(db *gorm.DB) *CampaignController {
	return &CampaignController{DB: db}
}

// ✅ Ambil semua kampanye (terbaru dulu)
func (ctrl *CampaignController) GetAllCampaigns(c *fiber.Ctx) error {
	var campaigns []model.CampaignModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("created_at DESC").
		Find(&campaigns).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kampanye")
	}

	return helper.JsonOK(c, "Berhasil mengambil kampanye", campaigns)
}

// ✅ Ambil kampanye aktif. Konvensinya satu saja; bila lebih, yang terbaru
// yang dipakai (store tidak memaksa single-active).
func (ctrl *CampaignController) GetActiveCampaign(c *fiber.Ctx) error {
	var campaign model.CampaignModel
	err := ctrl.DB.WithContext(c.Context()).
		Where("is_active = ?", true).
		Order("created_at DESC").
		First(&campaign).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Tidak ada kampanye aktif")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kampanye aktif")
	}

	return helper.JsonOK(c, "Berhasil mengambil kampanye aktif", campaign)
}
