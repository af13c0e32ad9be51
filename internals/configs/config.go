package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	// Gerbang ekspor data peserta. Bukan security boundary, hanya penghalang
	// ringan di sisi aplikasi.
	ExportGateUsername string
	ExportGatePassword string

	// Routing entitas → kelompok. Entitas utama bebas pilih kelompok,
	// entitas lain otomatis masuk ke kelompok default.
	EntityPrimary      string
	EntityDefaultGroup string
)

const (
	fallbackExportUsername = "admin"
	fallbackExportPassword = "khataman-ias"

	defaultEntityPrimary      = "PT Integrasi Aviasi Solusi"
	defaultEntityDefaultGroup = "Entitas"
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	ExportGateUsername = GetEnv("EXPORT_GATE_USERNAME", fallbackExportUsername)
	ExportGatePassword = GetEnv("EXPORT_GATE_PASSWORD", fallbackExportPassword)
	if ExportGateUsername == fallbackExportUsername && ExportGatePassword == fallbackExportPassword {
		log.Println("⚠️ EXPORT_GATE_USERNAME/PASSWORD belum diset, memakai kredensial bawaan")
	}

	EntityPrimary = GetEnv("ENTITY_PRIMARY", defaultEntityPrimary)
	EntityDefaultGroup = GetEnv("ENTITY_DEFAULT_GROUP", defaultEntityDefaultGroup)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
