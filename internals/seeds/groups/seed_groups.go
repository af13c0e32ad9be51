package groups

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"khataman_backend/internals/features/groups/model"
)

type GroupSeed struct {
	Name string `json:"name"`
}

// SeedGroupsFromJSON memprovisikan kelompok. Idempoten: nama yang sudah ada
// dilewati (nama kelompok adalah natural key-nya).
func SeedGroupsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seeds []GroupSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, g := range seeds {
		var existing model.GroupModel
		if err := db.Where("name = ?", g.Name).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Kelompok %s sudah ada, lewati...", g.Name)
			continue
		}

		newGroup := model.GroupModel{Name: g.Name}
		if err := db.Create(&newGroup).Error; err != nil {
			log.Printf("❌ Gagal insert kelompok %s: %v", g.Name, err)
		} else {
			log.Printf("✅ Berhasil insert kelompok %s", g.Name)
		}
	}
}
