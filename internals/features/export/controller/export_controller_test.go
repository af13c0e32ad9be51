package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"khataman_backend/internals/configs"
	campaignModel "khataman_backend/internals/features/campaigns/model"
	claimModel "khataman_backend/internals/features/claims/model"
	groupModel "khataman_backend/internals/features/groups/model"
	"khataman_backend/internals/features/live"
	participantModel "khataman_backend/internals/features/participants/model"
	quranModel "khataman_backend/internals/features/quran/model"
	"khataman_backend/internals/gateway"
)

type staticFetcher struct {
	snap gateway.Snapshot
}

func (f *staticFetcher) FetchSnapshot(ctx context.Context) (gateway.Snapshot, error) {
	return f.snap, nil
}

func setupExportApp(t *testing.T) *fiber.App {
	t.Helper()

	configs.ExportGateUsername = "admin"
	configs.ExportGatePassword = "rahasia"

	campaign := campaignModel.CampaignModel{ID: uuid.New(), Name: "Khataman", IsActive: true}
	group := groupModel.GroupModel{ID: uuid.New(), Name: "Kantor Pusat"}
	jobTitle := "Staff"
	participant := participantModel.ParticipantModel{
		ID:       uuid.New(),
		Nik:      "123456789",
		Name:     "Budi Santoso",
		JobTitle: &jobTitle,
	}
	part := quranModel.JuzPartModel{ID: uuid.New(), JuzNumber: 1, PartNumber: 1, PartLabel: "Seperempat 1"}

	snap := gateway.Snapshot{
		Campaigns: []campaignModel.CampaignModel{campaign},
		Groups:    []groupModel.GroupModel{group},
		Parts:     []quranModel.JuzPartModel{part},
		Claims: []claimModel.ClaimModel{{
			ID:            uuid.New(),
			CampaignID:    campaign.ID,
			GroupID:       group.ID,
			ParticipantID: participant.ID,
			JuzNumber:     1,
			PartID:        part.ID,
			ClaimedAt:     time.Now(),
			Participant:   &participant,
			Part:          &part,
		}},
	}

	hub := live.NewHub(&staticFetcher{snap: snap})
	if err := hub.Start(context.Background()); err != nil {
		t.Fatalf("hub start gagal: %v", err)
	}

	app := fiber.New()
	ctrl := NewExportController(hub)
	app.Post("/api/export/claims", ctrl.ExportClaims)
	return app
}

func postExport(t *testing.T, app *fiber.App, username, password string) (int, string, string) {
	t.Helper()
	payload, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req := httptest.NewRequest("POST", "/api/export/claims", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request gagal: %v", err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, resp.Header.Get("Content-Type"), string(data)
}

func TestExportRejectsWrongCredentials(t *testing.T) {
	app := setupExportApp(t)

	code, _, _ := postExport(t, app, "admin", "salah")
	if code != fiber.StatusUnauthorized {
		t.Errorf("expected 401, got %d", code)
	}
}

func TestExportProducesCSVWithFullNik(t *testing.T) {
	app := setupExportApp(t)

	code, contentType, body := postExport(t, app, "admin", "rahasia")
	if code != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", code, body)
	}
	if !strings.HasPrefix(contentType, "text/csv") {
		t.Errorf("Content-Type bukan CSV: %s", contentType)
	}
	if !strings.HasPrefix(body, "Nama,Jabatan,NIK,Kelompok,Juz,Part,Waktu Klaim") {
		t.Errorf("header CSV salah: %s", body)
	}
	// Jalur ekspor menampilkan NIK penuh, bukan yang dimask.
	if !strings.Contains(body, "123456789") {
		t.Error("NIK penuh tidak ada di ekspor")
	}
	if !strings.Contains(body, "Budi Santoso") || !strings.Contains(body, "Kantor Pusat") {
		t.Error("baris klaim tidak lengkap")
	}
	if !strings.Contains(body, "Juz 1") || !strings.Contains(body, "Part 1 - Seperempat 1") {
		t.Error("kolom juz/part salah")
	}
}
