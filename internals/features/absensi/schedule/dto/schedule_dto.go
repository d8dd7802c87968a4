package dto

import (
	"absensiku_backend/internals/features/absensi/schedule/model"
	"absensiku_backend/internals/helpers/timeutil"
)

// ============================
// Status hari
// ============================

const (
	StatusHariNormal       = "Normal"
	StatusHariLibur        = "Libur"
	StatusHariSetengahHari = "Setengah Hari"
	StatusHariDefault      = "default" // fallback hard-coded, bukan dari storage
	StatusHariError        = "error"
)

// ============================
// Derived view (tidak pernah dipersist)
// ============================

// TimeOfDay: jam-menit terstruktur hasil resolusi jadwal.
// Selalu dibuat baru per resolusi, tidak pernah dimutasi setelah jadi.
type TimeOfDay struct {
	Jam    int    `json:"jam"`
	Menit  int    `json:"menit"`
	Status string `json:"status"`
	// Hanya terisi untuk waktu selesai.
	ToleransiPulangAwal int `json:"toleransi_pulang_awal,omitempty"`
}

func (t TimeOfDay) Format() string {
	return timeutil.FormatJamMenit(t.Jam, t.Menit)
}

// HariKhususInfo: hasil lookup override tanggal tertentu.
type HariKhususInfo struct {
	Tanggal             string    `json:"tanggal"`
	Keterangan          string    `json:"keterangan"`
	Status              string    `json:"status"`
	WaktuMulai          TimeOfDay `json:"waktu_mulai"`
	WaktuSelesai        TimeOfDay `json:"waktu_selesai"`
	BatasTerlambat      int       `json:"batas_terlambat"`
	ToleransiPulangAwal int       `json:"toleransi_pulang_awal"`
}

// JadwalHarian: jawaban terpadu "jadwal untuk tanggal ini".
// View turunan atas pengaturan_waktu + hari_khusus; tidak pernah dipersist.
type JadwalHarian struct {
	Tanggal             string    `json:"tanggal"` // YYYY-MM-DD
	HariDalamMinggu     int       `json:"hari_dalam_minggu"`
	NamaHari            string    `json:"nama_hari,omitempty"`
	Keterangan          string    `json:"keterangan,omitempty"`
	Status              string    `json:"status"`
	WaktuMulai          TimeOfDay `json:"waktu_mulai"`
	WaktuSelesai        TimeOfDay `json:"waktu_selesai"`
	BatasTerlambat      int       `json:"batas_terlambat"`
	ToleransiPulangAwal int       `json:"toleransi_pulang_awal"`
	IsHariKhusus        bool      `json:"is_hari_khusus"`
	Error               string    `json:"error,omitempty"`
}

// ============================
// Request DTO (admin)
// ============================

type UpdatePengaturanWaktuRequest struct {
	WaktuMulai          string `json:"waktu_mulai" validate:"required"`
	WaktuSelesai        string `json:"waktu_selesai" validate:"required"`
	BatasTerlambat      *int   `json:"batas_terlambat" validate:"omitempty,min=0"`
	StatusHari          string `json:"status_hari" validate:"omitempty,oneof=Normal Libur 'Setengah Hari'"`
	ToleransiPulangAwal *int   `json:"toleransi_pulang_awal" validate:"omitempty,min=0"`
	PersentaseKehadiran *int   `json:"persentase_kehadiran" validate:"omitempty,min=0,max=100"`
}

type CreateHariKhususRequest struct {
	Tanggal             string `json:"tanggal" validate:"required"`
	Keterangan          string `json:"keterangan" validate:"required,min=3"`
	Status              string `json:"status" validate:"required,oneof=Normal Libur 'Setengah Hari'"`
	WaktuMulai          string `json:"waktu_mulai" validate:"required"`
	WaktuSelesai        string `json:"waktu_selesai" validate:"required"`
	BatasTerlambat      int    `json:"batas_terlambat" validate:"min=0"`
	ToleransiPulangAwal int    `json:"toleransi_pulang_awal" validate:"min=0"`
}

// ============================
// Response DTO + converter
// ============================

type PengaturanWaktuDTO struct {
	PengaturanWaktuID   string `json:"pengaturan_waktu_id"`
	Hari                int    `json:"hari"`
	NamaHari            string `json:"nama_hari"`
	WaktuMulai          string `json:"waktu_mulai"`
	WaktuSelesai        string `json:"waktu_selesai"`
	BatasTerlambat      int    `json:"batas_terlambat"`
	StatusHari          string `json:"status_hari"`
	ToleransiPulangAwal int    `json:"toleransi_pulang_awal"`
	PersentaseKehadiran int    `json:"persentase_kehadiran"`
}

func ToPengaturanWaktuDTO(m model.PengaturanWaktuModel) PengaturanWaktuDTO {
	return PengaturanWaktuDTO{
		PengaturanWaktuID:   m.PengaturanWaktuID,
		Hari:                m.PengaturanWaktuHari,
		NamaHari:            timeutil.NamaHari(m.PengaturanWaktuHari),
		WaktuMulai:          m.PengaturanWaktuMulai,
		WaktuSelesai:        m.PengaturanWaktuSelesai,
		BatasTerlambat:      m.PengaturanWaktuBatasTerlambat,
		StatusHari:          m.PengaturanWaktuStatusHari,
		ToleransiPulangAwal: m.PengaturanWaktuToleransiPulangAwal,
		PersentaseKehadiran: m.PengaturanWaktuPersentaseKehadiran,
	}
}

type HariKhususDTO struct {
	HariKhususID        string `json:"hari_khusus_id"`
	Tanggal             string `json:"tanggal"`
	Keterangan          string `json:"keterangan"`
	Status              string `json:"status"`
	WaktuMulai          string `json:"waktu_mulai"`
	WaktuSelesai        string `json:"waktu_selesai"`
	BatasTerlambat      int    `json:"batas_terlambat"`
	ToleransiPulangAwal int    `json:"toleransi_pulang_awal"`
}

func ToHariKhususDTO(m model.HariKhususModel) HariKhususDTO {
	return HariKhususDTO{
		HariKhususID:        m.HariKhususID,
		Tanggal:             m.HariKhususTanggal,
		Keterangan:          m.HariKhususKeterangan,
		Status:              m.HariKhususStatus,
		WaktuMulai:          m.HariKhususWaktuMulai,
		WaktuSelesai:        m.HariKhususWaktuSelesai,
		BatasTerlambat:      m.HariKhususBatasTerlambat,
		ToleransiPulangAwal: m.HariKhususToleransiPulangAwal,
	}
}
