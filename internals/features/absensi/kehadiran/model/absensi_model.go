package model

import (
	"time"

	"gorm.io/datatypes"
)

// AbsensiModel: satu baris per pegawai per tanggal. Snapshot hasil klasifikasi
// disimpan sebagai JSONB supaya riwayat tetap utuh walau aturan jadwal berubah.
type AbsensiModel struct {
	AbsensiID         string  `gorm:"column:absensi_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"absensi_id"`
	AbsensiNIP        string  `gorm:"column:absensi_nip;type:varchar(30);not null;uniqueIndex:idx_absensi_nip_tanggal" json:"absensi_nip"`
	AbsensiTanggal    string  `gorm:"column:absensi_tanggal;type:varchar(10);not null;uniqueIndex:idx_absensi_nip_tanggal" json:"absensi_tanggal"` // YYYY-MM-DD
	AbsensiJamMasuk   *string `gorm:"column:absensi_jam_masuk;type:varchar(8)" json:"absensi_jam_masuk"`
	AbsensiJamPulang  *string `gorm:"column:absensi_jam_pulang;type:varchar(8)" json:"absensi_jam_pulang"`
	AbsensiStatus     string  `gorm:"column:absensi_status;type:varchar(20);not null" json:"absensi_status"`
	AbsensiKeterangan string  `gorm:"column:absensi_keterangan;type:text" json:"absensi_keterangan"`
	AbsensiDurasi     *string `gorm:"column:absensi_durasi;type:varchar(8)" json:"absensi_durasi"` // "J:MM"

	AbsensiFotoMasukURL  *string `gorm:"column:absensi_foto_masuk_url;type:text" json:"absensi_foto_masuk_url"`
	AbsensiFotoPulangURL *string `gorm:"column:absensi_foto_pulang_url;type:text" json:"absensi_foto_pulang_url"`
	AbsensiLokasiMasuk   *string `gorm:"column:absensi_lokasi_masuk;type:varchar(120)" json:"absensi_lokasi_masuk"`
	AbsensiLokasiPulang  *string `gorm:"column:absensi_lokasi_pulang;type:varchar(120)" json:"absensi_lokasi_pulang"`

	AbsensiKlasifikasiMasuk  datatypes.JSONMap `gorm:"column:absensi_klasifikasi_masuk;type:jsonb" json:"absensi_klasifikasi_masuk"`
	AbsensiKlasifikasiPulang datatypes.JSONMap `gorm:"column:absensi_klasifikasi_pulang;type:jsonb" json:"absensi_klasifikasi_pulang"`

	AbsensiCreatedAt time.Time `gorm:"column:absensi_created_at;autoCreateTime" json:"absensi_created_at"`
	AbsensiUpdatedAt time.Time `gorm:"column:absensi_updated_at;autoUpdateTime" json:"absensi_updated_at"`
}

func (AbsensiModel) TableName() string {
	return "absensi"
}
