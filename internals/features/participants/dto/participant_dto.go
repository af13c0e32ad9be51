package dto

import (
	"time"

	participantModel "khataman_backend/internals/features/participants/model"
)

// ParticipantResponse menyembunyikan NIK penuh dari respons publik.
// NIK lengkap hanya keluar lewat jalur ekspor yang digerbangi.
type ParticipantResponse struct {
	ID         string    `json:"id"`
	EntityName *string   `json:"entity_name,omitempty"`
	NikMasked  string    `json:"nik"`
	Name       string    `json:"name"`
	JobTitle   *string   `json:"job_title,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// MaskNik menampilkan dua digit awal & akhir saja: "123456789" → "12****89".
// NIK pendek (≤4) dibiarkan apa adanya.
func MaskNik(nik string) string {
	if nik == "" {
		return "-"
	}
	if len(nik) <= 4 {
		return nik
	}
	return nik[:2] + "****" + nik[len(nik)-2:]
}

func ToParticipantResponse(p *participantModel.ParticipantModel) *ParticipantResponse {
	if p == nil {
		return nil
	}
	return &ParticipantResponse{
		ID:         p.ID.String(),
		EntityName: p.EntityName,
		NikMasked:  MaskNik(p.Nik),
		Name:       p.Name,
		JobTitle:   p.JobTitle,
		CreatedAt:  p.CreatedAt,
	}
}
