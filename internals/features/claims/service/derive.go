package service

import (
	"sort"

	"github.com/google/uuid"

	campaignModel "khataman_backend/internals/features/campaigns/model"
	claimModel "khataman_backend/internals/features/claims/model"
	quranModel "khataman_backend/internals/features/quran/model"
)

// Fungsi derivasi murni di atas snapshot klaim. Tanpa I/O dan hanya
// bersifat advisory; kebenaran alokasi tetap dijaga constraint unik
// di store.

// ActiveCampaign mengambil kampanye aktif pertama (daftar sudah terurut
// created_at DESC, jadi yang terbaru menang bila ada lebih dari satu).
func ActiveCampaign(campaigns []campaignModel.CampaignModel) *campaignModel.CampaignModel {
	for i := range campaigns {
		if campaigns[i].IsActive {
			return &campaigns[i]
		}
	}
	return nil
}

// IsClaimed melaporkan apakah part sudah diklaim pada (campaign, group).
func IsClaimed(claims []claimModel.ClaimModel, campaignID, groupID, partID uuid.UUID) bool {
	for i := range claims {
		if claims[i].CampaignID == campaignID &&
			claims[i].GroupID == groupID &&
			claims[i].PartID == partID {
			return true
		}
	}
	return false
}

// HasClaimInJuz melaporkan apakah peserta sudah memegang part (apapun) dari
// juz tersebut pada (campaign, group). Batas satu part per juz per lingkup.
func HasClaimInJuz(claims []claimModel.ClaimModel, campaignID, groupID, participantID uuid.UUID, juzNumber int) bool {
	for i := range claims {
		if claims[i].CampaignID == campaignID &&
			claims[i].GroupID == groupID &&
			claims[i].ParticipantID == participantID &&
			claims[i].JuzNumber == juzNumber {
			return true
		}
	}
	return false
}

// ClaimsForGroup memfilter klaim milik satu kelompok dalam satu kampanye.
func ClaimsForGroup(claims []claimModel.ClaimModel, campaignID, groupID uuid.UUID) []claimModel.ClaimModel {
	out := make([]claimModel.ClaimModel, 0)
	for i := range claims {
		if claims[i].CampaignID == campaignID && claims[i].GroupID == groupID {
			out = append(out, claims[i])
		}
	}
	return out
}

// UniqueClaimedJuzCount menghitung banyaknya nilai juz_number berbeda yang
// punya minimal satu klaim, berapapun jumlah part yang diklaim per juz.
func UniqueClaimedJuzCount(claims []claimModel.ClaimModel) int {
	seen := make(map[int]struct{}, len(claims))
	for i := range claims {
		seen[claims[i].JuzNumber] = struct{}{}
	}
	return len(seen)
}

// PartsByJuz mengelompokkan part per juz, terurut part_number naik.
func PartsByJuz(parts []quranModel.JuzPartModel) map[int][]quranModel.JuzPartModel {
	out := make(map[int][]quranModel.JuzPartModel)
	for i := range parts {
		out[parts[i].JuzNumber] = append(out[parts[i].JuzNumber], parts[i])
	}
	for juz := range out {
		sort.Slice(out[juz], func(a, b int) bool {
			return out[juz][a].PartNumber < out[juz][b].PartNumber
		})
	}
	return out
}

// FindPart mencari part berdasarkan id.
func FindPart(parts []quranModel.JuzPartModel, id uuid.UUID) *quranModel.JuzPartModel {
	for i := range parts {
		if parts[i].ID == id {
			return &parts[i]
		}
	}
	return nil
}
