package dto

import (
	"absensiku_backend/internals/features/absensi/kehadiran/model"
	"absensiku_backend/internals/helpers/timeutil"
)

// ============================
// Request DTO
// ============================

type AbsenRequest struct {
	// Data URL foto bukti (data:image/...;base64,...), opsional.
	Foto   string `json:"foto" validate:"omitempty,startswith=data:image/"`
	GPS    string `json:"gps" validate:"omitempty,max=60"`    // "lat,lng"
	Lokasi string `json:"lokasi" validate:"omitempty,max=120"` // nama lokasi
}

type RiwayatQuery struct {
	Start string `query:"start" validate:"omitempty,datetime=2006-01-02"`
	End   string `query:"end" validate:"omitempty,datetime=2006-01-02"`
}

// ============================
// Response DTO
// ============================

type AbsensiDTO struct {
	AbsensiID  string  `json:"absensi_id"`
	NIP        string  `json:"nip"`
	Tanggal    string  `json:"tanggal"`
	JamMasuk   *string `json:"jam_masuk"`
	JamPulang  *string `json:"jam_pulang"`
	Status     string  `json:"status"`
	Keterangan string  `json:"keterangan"`
	Durasi     string  `json:"durasi"`
	FotoMasuk  *string `json:"foto_masuk,omitempty"`
	FotoPulang *string `json:"foto_pulang,omitempty"`
	Lokasi     *string `json:"lokasi,omitempty"`
}

func ToAbsensiDTO(m model.AbsensiModel) AbsensiDTO {
	durasi := "-"
	if m.AbsensiDurasi != nil {
		durasi = *m.AbsensiDurasi
	} else if m.AbsensiJamMasuk != nil && m.AbsensiJamPulang != nil {
		durasi = timeutil.ComputeDuration(*m.AbsensiJamMasuk, *m.AbsensiJamPulang)
	}
	return AbsensiDTO{
		AbsensiID:  m.AbsensiID,
		NIP:        m.AbsensiNIP,
		Tanggal:    m.AbsensiTanggal,
		JamMasuk:   m.AbsensiJamMasuk,
		JamPulang:  m.AbsensiJamPulang,
		Status:     m.AbsensiStatus,
		Keterangan: m.AbsensiKeterangan,
		Durasi:     durasi,
		FotoMasuk:  m.AbsensiFotoMasukURL,
		FotoPulang: m.AbsensiFotoPulangURL,
		Lokasi:     m.AbsensiLokasiMasuk,
	}
}
