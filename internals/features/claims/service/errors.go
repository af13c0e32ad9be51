package service

import "errors"

// Taksonomi kegagalan alokasi. Setiap error menghasilkan pesan pengguna yang
// berbeda karena tindak lanjutnya berbeda: pilih unit lain, pilih juz lain,
// atau coba ulang.
var (
	// Tidak ada kampanye yang ditandai aktif.
	ErrNoActiveCampaign = errors.New("tidak ada kampanye aktif")

	// part_id tidak dikenal di data referensi.
	ErrPartNotFound = errors.New("part tidak ditemukan")

	// juz_number pada request tidak sama dengan juz part yang dirujuk.
	ErrPartMismatch = errors.New("part tidak sesuai dengan juz yang dipilih")

	// Kelompok tujuan tidak dikenal (termasuk kelompok routing default
	// yang belum di-seed).
	ErrGroupNotFound = errors.New("kelompok tidak ditemukan")

	// Unit sudah diambil orang lain pada (campaign, group, part).
	ErrAlreadyClaimed = errors.New("part ini sudah diklaim di kelompok ini")

	// Peserta sudah memegang part dari juz ini di kelompok & kampanye ini.
	ErrAlreadyClaimedByYou = errors.New("anda sudah mengklaim part di juz ini untuk kelompok ini")
)
