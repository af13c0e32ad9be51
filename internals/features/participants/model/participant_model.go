package model

import (
	"time"

	"github.com/google/uuid"
)

// Peserta dibuat lazy saat klaim pertama dengan NIK yang belum dikenal,
// selanjutnya selalu dipakai ulang (nik = natural key, unik di store).
// Tidak pernah di-update atau dihapus oleh sistem ini.
type ParticipantModel struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EntityName     *string   `gorm:"column:entity_name;type:varchar(100)" json:"entity_name,omitempty"`
	Nik            string    `gorm:"column:nik;type:varchar(50);not null;unique" json:"nik"`
	Name           string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	JobTitle       *string   `gorm:"column:job_title;type:varchar(100)" json:"job_title,omitempty"`
	WhatsappNumber *string   `gorm:"column:whatsapp_number;type:varchar(15)" json:"whatsapp_number,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ParticipantModel) TableName() string {
	return "participants"
}
