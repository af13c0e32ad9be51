package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"khataman_backend/internals/configs"
	"khataman_backend/internals/constants"
	"khataman_backend/internals/features/claims/dto"
	"khataman_backend/internals/features/claims/service"
	"khataman_backend/internals/features/live"
	helper "khataman_backend/internals/helpers"
)

type ClaimController struct {
	Engine *service.Engine
	Hub    *live.Hub
}

func NewClaimController(engine *service.Engine, hub *live.Hub) *ClaimController {
	return &ClaimController{Engine: engine, Hub: hub}
}

// ✅ Klaim satu part. Validasi bentuk dulu (tanpa I/O), lalu protokol
// alokasi; setiap penolakan membawa pesan spesifik karena tindak lanjut
// pengguna berbeda-beda.
func (ctrl *ClaimController) CreateClaim(c *fiber.Ctx) error {
	var body dto.ClaimRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}

	if err := body.Validate(configs.EntityPrimary); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return helper.JsonValidationError(c, err)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	req, err := body.ToEngineRequest()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	claim, err := ctrl.Engine.Allocate(c.Context(), req, ctrl.Hub.Snapshot())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoActiveCampaign):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Tidak ada kampanye aktif")
		case errors.Is(err, service.ErrPartNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Part tidak ditemukan")
		case errors.Is(err, service.ErrGroupNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Kelompok tidak ditemukan")
		case errors.Is(err, service.ErrPartMismatch):
			return helper.JsonError(c, fiber.StatusBadRequest, "Part tidak sesuai dengan juz yang dipilih")
		case errors.Is(err, service.ErrAlreadyClaimed):
			return helper.JsonError(c, fiber.StatusConflict, "Part ini sudah diklaim oleh orang lain")
		case errors.Is(err, service.ErrAlreadyClaimedByYou):
			return helper.JsonError(c, fiber.StatusConflict, "Anda sudah mengklaim part di juz ini untuk kelompok ini")
		default:
			log.Printf("❌ gagal alokasi klaim: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan sistem. Silakan coba lagi.")
		}
	}

	// Resinkronisasi pasca-commit: klaim baru langsung terlihat di semua
	// konsumen, termasuk pengirimnya sendiri.
	ctrl.Hub.Refresh(c.Context())

	snap := ctrl.Hub.Snapshot()
	return helper.JsonCreated(c, "Berhasil! Part juz Anda telah diklaim.",
		dto.ToClaimResponse(claim, snap.GroupNameByID))
}

// ✅ Daftar klaim (join peserta + part, NIK dimask), opsional per kampanye
func (ctrl *ClaimController) GetAllClaims(c *fiber.Ctx) error {
	snap := ctrl.Hub.Snapshot()
	claims := snap.Claims

	if raw := c.Query("campaign_id"); raw != "" {
		campaignID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "campaign_id tidak valid")
		}
		filtered := claims[:0:0]
		for i := range claims {
			if claims[i].CampaignID == campaignID {
				filtered = append(filtered, claims[i])
			}
		}
		claims = filtered
	}

	return helper.JsonOK(c, "Berhasil mengambil daftar klaim", fiber.Map{
		"total":   len(claims),
		"results": dto.ToClaimResponseList(claims, snap.GroupNameByID),
	})
}

// ✅ Opsi entitas + routing kelompok untuk form pendaftaran
func (ctrl *ClaimController) GetEntityOptions(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Berhasil mengambil opsi entitas", fiber.Map{
		"options":        constants.EntityOptions,
		"primary_entity": configs.EntityPrimary,
		"default_group":  configs.EntityDefaultGroup,
	})
}
