package constants

// Daftar entitas yang dikenal form pendaftaran. Entitas utama (lihat
// configs.EntityPrimary) boleh memilih kelompok; sisanya dirutekan ke
// kelompok default.
var EntityOptions = []string{
	"PT Integrasi Aviasi Solusi",
	"PT Gapura Angkasa",
	"PT IAS Hospitality",
	"PT IAS Support",
	"PT IAS Property",
	"PT Angkasa Pura Suport",
}
