package model

import (
	"time"

	"github.com/google/uuid"
)

// Part adalah satuan klaim: pecahan terurut di dalam satu juz.
// Juz tanpa part di tabel ini berarti "belum dikonfigurasi", bukan "tersedia".
type JuzPartModel struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	JuzNumber  int       `gorm:"column:juz_number;not null;check:juz_number BETWEEN 1 AND 30" json:"juz_number"`
	PartNumber int       `gorm:"column:part_number;not null;check:part_number >= 1" json:"part_number"`
	PartLabel  string    `gorm:"column:part_label;type:varchar(100);not null" json:"part_label"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (JuzPartModel) TableName() string {
	return "juz_parts"
}
