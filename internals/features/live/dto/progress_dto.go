package dto

// Read-model progress per kelompok: status tiap juz beserta ketersediaan
// part di dalamnya. "belum_dikonfigurasi" (juz tanpa part) sengaja dibedakan
// dari "penuh" (semua part sudah diklaim); tindak lanjut penggunanya beda.
const (
	JuzStatusAvailable     = "tersedia"
	JuzStatusFull          = "penuh"
	JuzStatusNotConfigured = "belum_dikonfigurasi"
)

type PartStatus struct {
	ID              string `json:"id"`
	PartNumber      int    `json:"part_number"`
	PartLabel       string `json:"part_label"`
	Claimed         bool   `json:"claimed"`
	ParticipantName string `json:"participant_name,omitempty"`
	ClaimedAtWIB    string `json:"claimed_at_wib,omitempty"`
}

type JuzProgress struct {
	JuzNumber int          `json:"juz_number"`
	Status    string       `json:"status"`
	Parts     []PartStatus `json:"parts"`
}

type GroupProgress struct {
	CampaignID   string        `json:"campaign_id,omitempty"`
	CampaignName string        `json:"campaign_name,omitempty"`
	GroupID      string        `json:"group_id"`
	GroupName    string        `json:"group_name"`
	ClaimedJuz   int           `json:"claimed_juz"`
	TotalJuz     int           `json:"total_juz"`
	Juz          []JuzProgress `json:"juz"`
}
