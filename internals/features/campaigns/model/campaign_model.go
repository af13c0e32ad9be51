package model

import (
	"time"

	"github.com/google/uuid"
)

type CampaignModel struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string     `gorm:"column:name;type:varchar(100);not null" json:"name"`
	StartDate time.Time  `gorm:"column:start_date;type:date;not null" json:"start_date"`
	EndDate   *time.Time `gorm:"column:end_date;type:date" json:"end_date,omitempty"`
	IsActive  bool       `gorm:"column:is_active;not null;default:false" json:"is_active"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CampaignModel) TableName() string {
	return "campaigns"
}
