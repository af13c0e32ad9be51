package database

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate menerapkan skema lengkap. Aman dipanggil berulang (IF NOT EXISTS).
// Unique index di sini adalah otoritas final untuk aturan klaim; pengecekan
// di aplikasi hanya mempercepat pesan error, bukan menggantikan constraint.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(schema).Error; err != nil {
		return fmt.Errorf("gagal menerapkan skema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS campaigns (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name VARCHAR(100) NOT NULL,
    start_date DATE NOT NULL,
    end_date DATE,
    is_active BOOLEAN NOT NULL DEFAULT false,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS groups (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name VARCHAR(50) NOT NULL UNIQUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS juz_parts (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    juz_number INT NOT NULL CHECK (juz_number BETWEEN 1 AND 30),
    part_number INT NOT NULL CHECK (part_number >= 1),
    part_label VARCHAR(100) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT uq_juz_parts_juz_part UNIQUE (juz_number, part_number)
);

CREATE TABLE IF NOT EXISTS participants (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    entity_name VARCHAR(100),
    nik VARCHAR(50) NOT NULL,
    name VARCHAR(100) NOT NULL,
    job_title VARCHAR(100),
    whatsapp_number VARCHAR(15),
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT participants_nik_key UNIQUE (nik)
);

CREATE TABLE IF NOT EXISTS claims (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    campaign_id UUID NOT NULL REFERENCES campaigns(id),
    group_id UUID NOT NULL REFERENCES groups(id),
    participant_id UUID NOT NULL REFERENCES participants(id),
    juz_number INT NOT NULL CHECK (juz_number BETWEEN 1 AND 30),
    part_id UUID NOT NULL REFERENCES juz_parts(id),
    claimed_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT uq_claims_campaign_group_part
        UNIQUE (campaign_id, group_id, part_id),
    CONSTRAINT uq_claims_campaign_group_participant_juz
        UNIQUE (campaign_id, group_id, participant_id, juz_number)
);

CREATE INDEX IF NOT EXISTS idx_claims_group_id ON claims(group_id);
CREATE INDEX IF NOT EXISTS idx_claims_campaign_id ON claims(campaign_id);

-- Channel notifikasi: setiap perubahan pada claims memicu refetch penuh di
-- sesi yang mendengarkan. Payload sengaja kosong (bukan patch inkremental).
CREATE OR REPLACE FUNCTION notify_claims_changed() RETURNS trigger AS $$
BEGIN
    PERFORM pg_notify('claims_changed', '');
    RETURN NULL;
END;
$$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS trg_claims_changed ON claims;
CREATE TRIGGER trg_claims_changed
    AFTER INSERT OR UPDATE OR DELETE ON claims
    FOR EACH STATEMENT EXECUTE FUNCTION notify_claims_changed();
`
