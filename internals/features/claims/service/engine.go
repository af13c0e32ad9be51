package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	claimModel "khataman_backend/internals/features/claims/model"
	participantModel "khataman_backend/internals/features/participants/model"
	"khataman_backend/internals/gateway"
)

// Store adalah irisan gateway yang dibutuhkan engine. Dipisah sebagai
// interface supaya alokasi bisa diuji dengan store in-memory yang meniru
// unique constraint.
type Store interface {
	FindParticipantByNik(ctx context.Context, nik string) (*participantModel.ParticipantModel, error)
	CreateParticipant(ctx context.Context, p *participantModel.ParticipantModel) error
	InsertClaim(ctx context.Context, c *claimModel.ClaimModel) error
}

// Routing entitas → kelompok: entitas utama bebas memilih kelompok,
// entitas lain selalu diarahkan ke kelompok default.
type Routing struct {
	PrimaryEntity    string
	DefaultGroupName string
}

// Request adalah permintaan klaim yang sudah lolos validasi bentuk
// (lihat dto.ClaimRequest); engine tinggal memeriksa semantik.
type Request struct {
	EntityName     string
	Nik            string
	Name           string
	JobTitle       string
	WhatsappNumber string
	GroupID        uuid.UUID
	JuzNumber      int
	PartID         uuid.UUID
}

// Engine menjalankan protokol alokasi klaim. Snapshot lokal hanya dipakai
// untuk menolak cepat dengan pesan yang enak dibaca; keputusan akhir selalu
// di unique constraint store saat InsertClaim.
type Engine struct {
	store   Store
	routing Routing
}

func NewEngine(store Store, routing Routing) *Engine {
	return &Engine{store: store, routing: routing}
}

// Allocate memproses satu percobaan klaim, tahap demi tahap; kegagalan
// pertama menghentikan proses. Tidak ada retry otomatis, kecuali balapan
// registrasi NIK yang dipulihkan transparan.
func (e *Engine) Allocate(ctx context.Context, req Request, snap gateway.Snapshot) (*claimModel.ClaimModel, error) {
	// 1. Prasyarat: harus ada kampanye aktif.
	campaign := ActiveCampaign(snap.Campaigns)
	if campaign == nil {
		return nil, ErrNoActiveCampaign
	}

	// 2. Cek referensial: part harus dikenal dan cocok dengan juz request.
	part := FindPart(snap.Parts, req.PartID)
	if part == nil {
		return nil, ErrPartNotFound
	}
	if part.JuzNumber != req.JuzNumber {
		return nil, ErrPartMismatch
	}

	// Routing kelompok. Form di klien sudah mengunci pilihan, tapi server
	// tidak mempercayainya.
	groupID, err := e.resolveGroup(req, snap)
	if err != nil {
		return nil, err
	}

	// 3. Pra-cek unik lokal (optimis, bisa basi, bukan sumber kebenaran).
	if IsClaimed(snap.Claims, campaign.ID, groupID, req.PartID) {
		return nil, ErrAlreadyClaimed
	}

	// 4. Resolusi peserta: temukan atau daftarkan, idempoten terhadap NIK.
	participant, existed, err := e.resolveParticipant(ctx, req)
	if err != nil {
		return nil, err
	}
	if existed && HasClaimInJuz(snap.Claims, campaign.ID, groupID, participant.ID, req.JuzNumber) {
		return nil, ErrAlreadyClaimedByYou
	}

	// 5. Commit. Unique constraint di store memvalidasi ulang keunikan part
	// dan juz; snapshot basi tidak pernah menghasilkan penerimaan yang salah.
	claim := &claimModel.ClaimModel{
		CampaignID:    campaign.ID,
		GroupID:       groupID,
		ParticipantID: participant.ID,
		JuzNumber:     part.JuzNumber,
		PartID:        part.ID,
	}
	if err := e.store.InsertClaim(ctx, claim); err != nil {
		switch {
		case errors.Is(err, gateway.ErrPartTaken), errors.Is(err, gateway.ErrConflict):
			return nil, ErrAlreadyClaimed
		case errors.Is(err, gateway.ErrJuzTakenByParticipant):
			return nil, ErrAlreadyClaimedByYou
		default:
			return nil, err
		}
	}
	claim.Participant = participant
	claim.Part = part
	return claim, nil
}

func (e *Engine) resolveGroup(req Request, snap gateway.Snapshot) (uuid.UUID, error) {
	if req.EntityName != e.routing.PrimaryEntity {
		for i := range snap.Groups {
			if snap.Groups[i].Name == e.routing.DefaultGroupName {
				return snap.Groups[i].ID, nil
			}
		}
		return uuid.Nil, ErrGroupNotFound
	}
	for i := range snap.Groups {
		if snap.Groups[i].ID == req.GroupID {
			return req.GroupID, nil
		}
	}
	return uuid.Nil, ErrGroupNotFound
}

// resolveParticipant mendaftarkan NIK baru atau memakai ulang peserta lama.
// Pola insert-or-fetch: kalah balapan ErrDuplicateNik dipulihkan dengan
// fetch ulang, tidak pernah muncul sebagai error pengguna.
func (e *Engine) resolveParticipant(ctx context.Context, req Request) (*participantModel.ParticipantModel, bool, error) {
	existing, err := e.store.FindParticipantByNik(ctx, req.Nik)
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, gateway.ErrNotFound) {
		return nil, false, err
	}

	p := &participantModel.ParticipantModel{
		EntityName:     strPtr(req.EntityName),
		Nik:            req.Nik,
		Name:           req.Name,
		JobTitle:       strPtr(req.JobTitle),
		WhatsappNumber: strPtr(req.WhatsappNumber),
	}
	err = e.store.CreateParticipant(ctx, p)
	if err == nil {
		return p, false, nil
	}
	if errors.Is(err, gateway.ErrDuplicateNik) {
		refetched, ferr := e.store.FindParticipantByNik(ctx, req.Nik)
		if ferr != nil {
			return nil, false, fmt.Errorf("gagal memulihkan registrasi ganda: %w", ferr)
		}
		return refetched, true, nil
	}
	return nil, false, err
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
