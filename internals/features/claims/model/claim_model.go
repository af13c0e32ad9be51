package model

import (
	"time"

	"github.com/google/uuid"

	participantModel "khataman_backend/internals/features/participants/model"
	quranModel "khataman_backend/internals/features/quran/model"
)

// Klaim bersifat append-only: satu record per alokasi sukses, tidak pernah
// diubah atau dihapus lewat jalur normal. juz_number didenormalisasi dari
// part yang dirujuk dan wajib selalu sama dengan juz part tersebut.
type ClaimModel struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CampaignID    uuid.UUID `gorm:"column:campaign_id;type:uuid;not null" json:"campaign_id"`
	GroupID       uuid.UUID `gorm:"column:group_id;type:uuid;not null" json:"group_id"`
	ParticipantID uuid.UUID `gorm:"column:participant_id;type:uuid;not null" json:"participant_id"`
	JuzNumber     int       `gorm:"column:juz_number;not null" json:"juz_number"`
	PartID        uuid.UUID `gorm:"column:part_id;type:uuid;not null" json:"part_id"`
	ClaimedAt     time.Time `gorm:"column:claimed_at;autoCreateTime" json:"claimed_at"`

	Participant *participantModel.ParticipantModel `gorm:"foreignKey:ParticipantID" json:"participant,omitempty"`
	Part        *quranModel.JuzPartModel           `gorm:"foreignKey:PartID" json:"part,omitempty"`
}

func (ClaimModel) TableName() string {
	return "claims"
}
