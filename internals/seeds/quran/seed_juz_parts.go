package quran

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"khataman_backend/internals/features/quran/model"
)

const (
	totalJuz    = 30
	partsPerJuz = 4
)

// SeedJuzParts memprovisikan 30 juz × 4 part. Data referensi ini seragam,
// jadi dibangkitkan di kode alih-alih file JSON 120 baris. Idempoten per
// (juz_number, part_number).
func SeedJuzParts(db *gorm.DB) {
	for juz := 1; juz <= totalJuz; juz++ {
		for part := 1; part <= partsPerJuz; part++ {
			var existing model.JuzPartModel
			if err := db.Where("juz_number = ? AND part_number = ?", juz, part).
				First(&existing).Error; err == nil {
				continue
			}

			newPart := model.JuzPartModel{
				JuzNumber:  juz,
				PartNumber: part,
				PartLabel:  fmt.Sprintf("Seperempat %d", part),
			}
			if err := db.Create(&newPart).Error; err != nil {
				log.Printf("❌ Gagal insert part juz %d part %d: %v", juz, part, err)
			}
		}
	}
	log.Printf("✅ Seed juz parts selesai (%d juz × %d part)", totalJuz, partsPerJuz)
}
