package model

import "time"

// PengaturanWaktuModel: satu baris per hari dalam minggu (0=Minggu .. 6=Sabtu).
// Sumber kebenaran jadwal default; baris dibuat oleh seeder, bukan oleh path baca.
type PengaturanWaktuModel struct {
	PengaturanWaktuID                  string    `gorm:"column:pengaturan_waktu_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"pengaturan_waktu_id"`
	PengaturanWaktuHari                int       `gorm:"column:pengaturan_waktu_hari;not null;uniqueIndex" json:"pengaturan_waktu_hari"`
	PengaturanWaktuMulai               string    `gorm:"column:pengaturan_waktu_mulai;type:varchar(8);not null" json:"pengaturan_waktu_mulai"`
	PengaturanWaktuSelesai             string    `gorm:"column:pengaturan_waktu_selesai;type:varchar(8);not null" json:"pengaturan_waktu_selesai"`
	PengaturanWaktuBatasTerlambat      int       `gorm:"column:pengaturan_waktu_batas_terlambat;not null;default:15" json:"pengaturan_waktu_batas_terlambat"`
	PengaturanWaktuStatusHari          string    `gorm:"column:pengaturan_waktu_status_hari;type:varchar(20);not null;default:'Normal'" json:"pengaturan_waktu_status_hari"`
	PengaturanWaktuToleransiPulangAwal int       `gorm:"column:pengaturan_waktu_toleransi_pulang_awal;not null;default:0" json:"pengaturan_waktu_toleransi_pulang_awal"`
	PengaturanWaktuPersentaseKehadiran int       `gorm:"column:pengaturan_waktu_persentase_kehadiran;not null;default:100" json:"pengaturan_waktu_persentase_kehadiran"`
	PengaturanWaktuCreatedAt           time.Time `gorm:"column:pengaturan_waktu_created_at;autoCreateTime" json:"pengaturan_waktu_created_at"`
	PengaturanWaktuUpdatedAt           time.Time `gorm:"column:pengaturan_waktu_updated_at;autoUpdateTime" json:"pengaturan_waktu_updated_at"`
}

func (PengaturanWaktuModel) TableName() string {
	return "pengaturan_waktu"
}

// HariKhususModel: override jadwal untuk satu tanggal kalender (libur nasional,
// setengah hari, dsb). Bila ada, override penuh terhadap baris mingguan.
type HariKhususModel struct {
	HariKhususID                  string    `gorm:"column:hari_khusus_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"hari_khusus_id"`
	HariKhususTanggal             string    `gorm:"column:hari_khusus_tanggal;type:varchar(10);not null;uniqueIndex" json:"hari_khusus_tanggal"` // YYYY-MM-DD
	HariKhususKeterangan          string    `gorm:"column:hari_khusus_keterangan;type:varchar(100);not null" json:"hari_khusus_keterangan"`
	HariKhususStatus              string    `gorm:"column:hari_khusus_status;type:varchar(20);not null" json:"hari_khusus_status"` // Libur | Setengah Hari | Normal
	HariKhususWaktuMulai          string    `gorm:"column:hari_khusus_waktu_mulai;type:varchar(8);not null" json:"hari_khusus_waktu_mulai"`
	HariKhususWaktuSelesai        string    `gorm:"column:hari_khusus_waktu_selesai;type:varchar(8);not null" json:"hari_khusus_waktu_selesai"`
	HariKhususBatasTerlambat      int       `gorm:"column:hari_khusus_batas_terlambat;not null;default:0" json:"hari_khusus_batas_terlambat"`
	HariKhususToleransiPulangAwal int       `gorm:"column:hari_khusus_toleransi_pulang_awal;not null;default:0" json:"hari_khusus_toleransi_pulang_awal"`
	HariKhususCreatedAt           time.Time `gorm:"column:hari_khusus_created_at;autoCreateTime" json:"hari_khusus_created_at"`
	HariKhususUpdatedAt           time.Time `gorm:"column:hari_khusus_updated_at;autoUpdateTime" json:"hari_khusus_updated_at"`
}

func (HariKhususModel) TableName() string {
	return "hari_khusus"
}
