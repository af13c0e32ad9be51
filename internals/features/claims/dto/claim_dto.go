package dto

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	claimModel "khataman_backend/internals/features/claims/model"
	"khataman_backend/internals/features/claims/service"
	participantDTO "khataman_backend/internals/features/participants/dto"
)

var validate = validator.New()

// Zona tampilan waktu klaim. Fallback ke UTC+7 bila tzdata tidak tersedia.
var wib = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Jakarta"); err == nil {
		return loc
	}
	return time.FixedZone("WIB", 7*3600)
}()

type ClaimRequest struct {
	EntityName     string `json:"entity_name" validate:"required,max=100"`
	Nik            string `json:"nik" validate:"required,max=50"`
	Name           string `json:"name" validate:"required,max=100"`
	JobTitle       string `json:"job_title" validate:"required,max=100"`
	WhatsappNumber string `json:"whatsapp_number" validate:"required,max=15"`
	GroupID        string `json:"group_id" validate:"omitempty,uuid"`
	JuzNumber      int    `json:"juz_number" validate:"required,min=1,max=30"`
	PartID         string `json:"part_id" validate:"required,uuid"`
}

// Validate menjalankan seluruh pengecekan bentuk sebelum I/O apapun:
// tag validator dulu, lalu aturan yang bergantung entitas. Semuanya murni
// dan sinkron; gagal di sini berarti tidak ada round-trip ke store.
func (r *ClaimRequest) Validate(primaryEntity string) error {
	if err := validate.Struct(r); err != nil {
		return err
	}

	if r.EntityName == primaryEntity {
		if !allDigits(r.Nik) {
			return fmt.Errorf("NIK untuk %s harus berupa angka", primaryEntity)
		}
		if len(r.Nik) > 9 {
			return fmt.Errorf("NIK untuk %s maksimal 9 digit", primaryEntity)
		}
		if r.GroupID == "" {
			return fmt.Errorf("kelompok wajib dipilih")
		}
	}

	if !allDigits(r.WhatsappNumber) {
		return fmt.Errorf("nomor WhatsApp harus berupa angka")
	}
	if len(r.WhatsappNumber) < 10 {
		return fmt.Errorf("nomor WhatsApp minimal 10 digit")
	}

	return nil
}

// ToEngineRequest mengubah DTO tervalidasi menjadi request engine.
// GroupID kosong (entitas non-utama) dibiarkan uuid.Nil; engine yang
// menentukan kelompok lewat routing.
func (r *ClaimRequest) ToEngineRequest() (service.Request, error) {
	req := service.Request{
		EntityName:     r.EntityName,
		Nik:            r.Nik,
		Name:           r.Name,
		JobTitle:       r.JobTitle,
		WhatsappNumber: r.WhatsappNumber,
		JuzNumber:      r.JuzNumber,
	}

	partID, err := uuid.Parse(r.PartID)
	if err != nil {
		return service.Request{}, fmt.Errorf("part_id tidak valid")
	}
	req.PartID = partID

	if r.GroupID != "" {
		groupID, err := uuid.Parse(r.GroupID)
		if err != nil {
			return service.Request{}, fmt.Errorf("group_id tidak valid")
		}
		req.GroupID = groupID
	}

	return req, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

type ClaimResponse struct {
	ID           string                              `json:"id"`
	CampaignID   string                              `json:"campaign_id"`
	GroupID      string                              `json:"group_id"`
	GroupName    string                              `json:"group_name"`
	JuzNumber    int                                 `json:"juz_number"`
	PartNumber   int                                 `json:"part_number,omitempty"`
	PartLabel    string                              `json:"part_label,omitempty"`
	Participant  *participantDTO.ParticipantResponse `json:"participant,omitempty"`
	ClaimedAt    time.Time                           `json:"claimed_at"`
	ClaimedAtWIB string                              `json:"claimed_at_wib"`
}

// ToClaimResponse merender satu klaim; nama kelompok dicari lewat resolver
// karena klaim hanya membawa group_id.
func ToClaimResponse(c *claimModel.ClaimModel, groupName func(uuid.UUID) string) ClaimResponse {
	resp := ClaimResponse{
		ID:           c.ID.String(),
		CampaignID:   c.CampaignID.String(),
		GroupID:      c.GroupID.String(),
		GroupName:    groupName(c.GroupID),
		JuzNumber:    c.JuzNumber,
		ClaimedAt:    c.ClaimedAt,
		ClaimedAtWIB: c.ClaimedAt.In(wib).Format("02 Jan 2006 15:04"),
		Participant:  participantDTO.ToParticipantResponse(c.Participant),
	}
	if c.Part != nil {
		resp.PartNumber = c.Part.PartNumber
		resp.PartLabel = c.Part.PartLabel
	}
	return resp
}

func ToClaimResponseList(claims []claimModel.ClaimModel, groupName func(uuid.UUID) string) []ClaimResponse {
	out := make([]ClaimResponse, 0, len(claims))
	for i := range claims {
		out = append(out, ToClaimResponse(&claims[i], groupName))
	}
	return out
}
