package controller

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"khataman_backend/internals/configs"
	claimService "khataman_backend/internals/features/claims/service"
	"khataman_backend/internals/features/live"
	helper "khataman_backend/internals/helpers"
)

// Gerbang ekspor membandingkan kredensial aplikasi, bukan otorisasi
// sungguhan. Penghalang ringan supaya tautan ekspor tidak diklik
// sembarangan.
type ExportController struct {
	Hub *live.Hub
}

func NewExportController(hub *live.Hub) *ExportController {
	return &ExportController{Hub: hub}
}

type exportRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var csvHeader = []string{"Nama", "Jabatan", "NIK", "Kelompok", "Juz", "Part", "Waktu Klaim"}

// ✅ Ekspor klaim kampanye aktif sebagai CSV. NIK tampil utuh di sini;
// jalur ini yang digerbangi, daftar publik memakai NIK termask.
func (ctrl *ExportController) ExportClaims(c *fiber.Ctx) error {
	var body exportRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}

	if body.Username != configs.ExportGateUsername || body.Password != configs.ExportGatePassword {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password ekspor salah")
	}

	// Ekspor mengikuti tampilan: hanya klaim kampanye aktif bila ada.
	snap := ctrl.Hub.Snapshot()
	claims := snap.Claims
	if campaign := claimService.ActiveCampaign(snap.Campaigns); campaign != nil {
		scoped := claims[:0:0]
		for i := range claims {
			if claims[i].CampaignID == campaign.ID {
				scoped = append(scoped, claims[i])
			}
		}
		claims = scoped
	}

	wib := wibLocation()
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun CSV")
	}
	for i := range claims {
		claim := &claims[i]
		name, jobTitle, nik := "-", "-", "-"
		if claim.Participant != nil {
			name = claim.Participant.Name
			if claim.Participant.JobTitle != nil {
				jobTitle = *claim.Participant.JobTitle
			}
			nik = claim.Participant.Nik
		}
		partLabel := "-"
		if claim.Part != nil {
			partLabel = fmt.Sprintf("Part %d - %s", claim.Part.PartNumber, claim.Part.PartLabel)
		}
		record := []string{
			name,
			jobTitle,
			nik,
			snap.GroupNameByID(claim.GroupID),
			fmt.Sprintf("Juz %d", claim.JuzNumber),
			partLabel,
			claim.ClaimedAt.In(wib).Format("02 Jan 2006 15:04"),
		}
		if err := w.Write(record); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun CSV")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun CSV")
	}

	filename := fmt.Sprintf("peserta_khataman_%s.csv", time.Now().In(wib).Format("20060102"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}

func wibLocation() *time.Location {
	if loc, err := time.LoadLocation("Asia/Jakarta"); err == nil {
		return loc
	}
	return time.FixedZone("WIB", 7*3600)
}
