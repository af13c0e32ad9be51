package gateway

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	campaignModel "khataman_backend/internals/features/campaigns/model"
	claimModel "khataman_backend/internals/features/claims/model"
	groupModel "khataman_backend/internals/features/groups/model"
	quranModel "khataman_backend/internals/features/quran/model"
)

// Snapshot adalah potret penuh keempat koleksi. Koleksi yang nil berarti
// query-nya gagal dan hasil lama harus dipertahankan; koleksi kosong yang
// berhasil selalu non-nil.
type Snapshot struct {
	Campaigns []campaignModel.CampaignModel
	Groups    []groupModel.GroupModel
	Parts     []quranModel.JuzPartModel
	Claims    []claimModel.ClaimModel
}

// GroupNameByID mencari nama kelompok di snapshot; "-" bila tidak dikenal.
func (s Snapshot) GroupNameByID(id uuid.UUID) string {
	for i := range s.Groups {
		if s.Groups[i].ID == id {
			return s.Groups[i].Name
		}
	}
	return "-"
}

// FetchSnapshot menjalankan empat query secara paralel. Kegagalan satu query
// tidak membatalkan yang lain: setiap hasil yang ada tetap diterapkan, error
// digabung dan dikembalikan bersama snapshot parsial.
func (g *Gateway) FetchSnapshot(ctx context.Context) (Snapshot, error) {
	var (
		snap Snapshot
		wg   sync.WaitGroup
		errs [4]error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		rows := make([]campaignModel.CampaignModel, 0)
		if err := g.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
			errs[0] = err
			return
		}
		snap.Campaigns = rows
	}()
	go func() {
		defer wg.Done()
		rows := make([]groupModel.GroupModel, 0)
		if err := g.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
			errs[1] = err
			return
		}
		snap.Groups = rows
	}()
	go func() {
		defer wg.Done()
		rows := make([]quranModel.JuzPartModel, 0)
		if err := g.db.WithContext(ctx).Order("juz_number, part_number").Find(&rows).Error; err != nil {
			errs[2] = err
			return
		}
		snap.Parts = rows
	}()
	go func() {
		defer wg.Done()
		rows := make([]claimModel.ClaimModel, 0)
		if err := g.db.WithContext(ctx).
			Preload("Participant").
			Preload("Part").
			Order("claimed_at DESC").
			Find(&rows).Error; err != nil {
			errs[3] = err
			return
		}
		snap.Claims = rows
	}()
	wg.Wait()

	return snap, errors.Join(errs[:]...)
}
