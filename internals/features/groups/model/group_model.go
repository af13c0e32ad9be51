package model

import (
	"time"

	"github.com/google/uuid"
)

// Kelompok (Kantor Pusat, Regional 1-4, Entitas). Read-only bagi aplikasi,
// diprovisikan lewat seeder.
type GroupModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(50);not null;unique" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (GroupModel) TableName() string {
	return "groups"
}
