package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	campaignModel "khataman_backend/internals/features/campaigns/model"
	claimModel "khataman_backend/internals/features/claims/model"
	groupModel "khataman_backend/internals/features/groups/model"
	"khataman_backend/internals/features/live"
	liveDTO "khataman_backend/internals/features/live/dto"
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

// setupProgressApp menyiapkan hub dengan juz 1 penuh, juz 2 tanpa part,
// dan juz 3 baru terklaim sebagian.
func setupProgressApp(t *testing.T) (*fiber.App, uuid.UUID) {
	t.Helper()

	campaign := campaignModel.CampaignModel{ID: uuid.New(), Name: "Khataman", IsActive: true}
	group := groupModel.GroupModel{ID: uuid.New(), Name: "Kantor Pusat"}
	budi := participantModel.ParticipantModel{ID: uuid.New(), Nik: "123456789", Name: "Budi Santoso"}
	sari := participantModel.ParticipantModel{ID: uuid.New(), Nik: "987654321", Name: "Sari Dewi"}

	juz1p1 := quranModel.JuzPartModel{ID: uuid.New(), JuzNumber: 1, PartNumber: 1, PartLabel: "Seperempat 1"}
	juz1p2 := quranModel.JuzPartModel{ID: uuid.New(), JuzNumber: 1, PartNumber: 2, PartLabel: "Seperempat 2"}
	juz3p1 := quranModel.JuzPartModel{ID: uuid.New(), JuzNumber: 3, PartNumber: 1, PartLabel: "Seperempat 1"}
	juz3p2 := quranModel.JuzPartModel{ID: uuid.New(), JuzNumber: 3, PartNumber: 2, PartLabel: "Seperempat 2"}

	claim := func(p participantModel.ParticipantModel, part quranModel.JuzPartModel) claimModel.ClaimModel {
		return claimModel.ClaimModel{
			ID:            uuid.New(),
			CampaignID:    campaign.ID,
			GroupID:       group.ID,
			ParticipantID: p.ID,
			JuzNumber:     part.JuzNumber,
			PartID:        part.ID,
			ClaimedAt:     time.Now(),
			Participant:   &p,
			Part:          &part,
		}
	}

	snap := gateway.Snapshot{
		Campaigns: []campaignModel.CampaignModel{campaign},
		Groups:    []groupModel.GroupModel{group},
		Parts:     []quranModel.JuzPartModel{juz1p1, juz1p2, juz3p1, juz3p2},
		Claims: []claimModel.ClaimModel{
			claim(budi, juz1p1),
			claim(sari, juz1p2),
			claim(budi, juz3p1),
		},
	}

	hub := live.NewHub(&staticFetcher{snap: snap})
	if err := hub.Start(context.Background()); err != nil {
		t.Fatalf("hub start gagal: %v", err)
	}

	app := fiber.New()
	ctrl := NewLiveController(hub)
	app.Get("/api/progress", ctrl.GetGroupProgress)
	return app, group.ID
}

func TestGroupProgressDistinguishesFullAndNotConfigured(t *testing.T) {
	app, groupID := setupProgressApp(t)

	req := httptest.NewRequest("GET", "/api/progress?group_id="+groupID.String(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request gagal: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		Data liveDTO.GroupProgress `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode gagal: %v", err)
	}
	progress := payload.Data

	if progress.TotalJuz != 30 || len(progress.Juz) != 30 {
		t.Fatalf("progress harus mencakup 30 juz, got total=%d len=%d", progress.TotalJuz, len(progress.Juz))
	}
	if progress.ClaimedJuz != 2 {
		t.Errorf("claimed_juz = %d, want 2", progress.ClaimedJuz)
	}

	byJuz := make(map[int]liveDTO.JuzProgress, len(progress.Juz))
	for _, jp := range progress.Juz {
		byJuz[jp.JuzNumber] = jp
	}

	if got := byJuz[1].Status; got != liveDTO.JuzStatusFull {
		t.Errorf("juz 1 status = %q, want %q", got, liveDTO.JuzStatusFull)
	}
	// Juz tanpa part bukan "penuh": statusnya dibedakan karena tindak
	// lanjut penggunanya beda.
	if got := byJuz[2].Status; got != liveDTO.JuzStatusNotConfigured {
		t.Errorf("juz 2 status = %q, want %q", got, liveDTO.JuzStatusNotConfigured)
	}
	if len(byJuz[2].Parts) != 0 {
		t.Errorf("juz tanpa konfigurasi tidak boleh punya part, got %d", len(byJuz[2].Parts))
	}
	if got := byJuz[3].Status; got != liveDTO.JuzStatusAvailable {
		t.Errorf("juz 3 status = %q, want %q", got, liveDTO.JuzStatusAvailable)
	}

	var claimed, open int
	for _, ps := range byJuz[3].Parts {
		if ps.Claimed {
			claimed++
			if ps.ParticipantName == "" {
				t.Error("part terklaim harus membawa nama peserta")
			}
		} else {
			open++
		}
	}
	if claimed != 1 || open != 1 {
		t.Errorf("juz 3: claimed=%d open=%d, want 1/1", claimed, open)
	}
}

func TestGroupProgressUnknownGroup(t *testing.T) {
	app, _ := setupProgressApp(t)

	req := httptest.NewRequest("GET", "/api/progress?group_id="+uuid.NewString(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request gagal: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}
