package gateway

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	claimModel "khataman_backend/internals/features/claims/model"
	participantModel "khataman_backend/internals/features/participants/model"
)

// Gateway membungkus akses store untuk protokol klaim. Semua mutasi di sini
// mengandalkan unique constraint di PostgreSQL sebagai penentu akhir; fungsi
// di lapisan atas tidak boleh menganggap pengecekan lokalnya otoritatif.
type Gateway struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// FindParticipantByNik mencari peserta persis berdasarkan NIK.
// Mengembalikan ErrNotFound bila tidak ada; error lain diteruskan.
func (g *Gateway) FindParticipantByNik(ctx context.Context, nik string) (*participantModel.ParticipantModel, error) {
	var p participantModel.ParticipantModel
	err := g.db.WithContext(ctx).Where("nik = ?", nik).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("gagal memeriksa peserta: %w", err)
	}
	return &p, nil
}

// CreateParticipant mendaftarkan peserta baru. ErrDuplicateNik berarti kalah
// balapan dengan registrasi NIK yang sama; pemanggil harus fetch ulang,
// bukan menampilkan error ke pengguna.
func (g *Gateway) CreateParticipant(ctx context.Context, p *participantModel.ParticipantModel) error {
	if err := g.db.WithContext(ctx).Create(p).Error; err != nil {
		if typed := uniqueViolation(err); typed != nil {
			return typed
		}
		return fmt.Errorf("gagal mendaftarkan peserta: %w", err)
	}
	return nil
}

// InsertClaim menulis klaim. Pelanggaran unik dipetakan ke ErrPartTaken /
// ErrJuzTakenByParticipant berdasarkan nama constraint; inilah pengecekan
// konflik yang otoritatif.
func (g *Gateway) InsertClaim(ctx context.Context, c *claimModel.ClaimModel) error {
	if err := g.db.WithContext(ctx).Create(c).Error; err != nil {
		if typed := uniqueViolation(err); typed != nil {
			return typed
		}
		return fmt.Errorf("gagal menyimpan klaim: %w", err)
	}
	return nil
}
