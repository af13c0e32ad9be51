package seeds

import (
	"gorm.io/gorm"

	campaigns "khataman_backend/internals/seeds/campaigns"
	groups "khataman_backend/internals/seeds/groups"
	quran "khataman_backend/internals/seeds/quran"
)

func RunAllSeeds(db *gorm.DB) {
	//* Kelompok
	groups.SeedGroupsFromJSON(db, "internals/seeds/groups/data_groups.json")

	//* Kampanye
	campaigns.SeedCampaignsFromJSON(db, "internals/seeds/campaigns/data_campaigns.json")

	//* Part per juz
	quran.SeedJuzParts(db)
}
