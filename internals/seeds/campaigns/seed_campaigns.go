package campaigns

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"gorm.io/gorm"

	"khataman_backend/internals/features/campaigns/model"
)

type CampaignSeed struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	IsActive  bool   `json:"is_active"`
}

// SeedCampaignsFromJSON memprovisikan kampanye. Idempoten per nama.
func SeedCampaignsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seeds []CampaignSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, cs := range seeds {
		var existing model.CampaignModel
		if err := db.Where("name = ?", cs.Name).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Kampanye %s sudah ada, lewati...", cs.Name)
			continue
		}

		start, err := time.Parse("2006-01-02", cs.StartDate)
		if err != nil {
			log.Printf("❌ start_date tidak valid untuk %s: %v", cs.Name, err)
			continue
		}

		newCampaign := model.CampaignModel{
			Name:      cs.Name,
			StartDate: start,
			IsActive:  cs.IsActive,
		}
		if cs.EndDate != "" {
			end, err := time.Parse("2006-01-02", cs.EndDate)
			if err != nil {
				log.Printf("❌ end_date tidak valid untuk %s: %v", cs.Name, err)
				continue
			}
			newCampaign.EndDate = &end
		}

		if err := db.Create(&newCampaign).Error; err != nil {
			log.Printf("❌ Gagal insert kampanye %s: %v", cs.Name, err)
		} else {
			log.Printf("✅ Berhasil insert kampanye %s", cs.Name)
		}
	}
}
