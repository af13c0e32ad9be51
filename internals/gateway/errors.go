package gateway

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Error bertipe dari lapisan store. Engine klaim memetakan error ini ke pesan
// pengguna; selain yang tercantum di sini, semua kegagalan backend dianggap
// StorageError dan dibungkus apa adanya.
var (
	// Peserta dengan NIK yang dicari tidak ada.
	ErrNotFound = errors.New("gateway: data tidak ditemukan")

	// Registrasi peserta kalah balapan dengan registrasi NIK yang sama.
	ErrDuplicateNik = errors.New("gateway: nik sudah terdaftar")

	// Part ini sudah diklaim untuk (campaign, group) yang sama.
	ErrPartTaken = errors.New("gateway: part sudah diklaim")

	// Peserta sudah memegang part lain di juz yang sama untuk
	// (campaign, group) yang sama.
	ErrJuzTakenByParticipant = errors.New("gateway: peserta sudah punya klaim di juz ini")

	// Pelanggaran unik yang tidak bisa diatribusikan ke constraint tertentu.
	ErrConflict = errors.New("gateway: konflik unik di store")
)

const (
	constraintClaimPart           = "uq_claims_campaign_group_part"
	constraintClaimParticipantJuz = "uq_claims_campaign_group_participant_juz"
	constraintParticipantNik      = "participants_nik_key"
)

// uniqueViolation memetakan pelanggaran unique constraint PostgreSQL (23505)
// ke error bertipe berdasarkan nama constraint. Driver postgres memakai pgx,
// jadi error server tiba sebagai *pgconn.PgError; nama constraint-nya adalah
// kunci atribusi konflik: part direbut orang lain vs. peserta balapan dengan
// dirinya sendiri menghasilkan pesan yang berbeda.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case constraintClaimPart:
			return ErrPartTaken
		case constraintClaimParticipantJuz:
			return ErrJuzTakenByParticipant
		case constraintParticipantNik:
			return ErrDuplicateNik
		default:
			return ErrConflict
		}
	}
	return nil
}
