package service

import (
	"strings"
	"testing"
	"time"

	scheduleDTO "absensiku_backend/internals/features/absensi/schedule/dto"
)

func jadwalNormal() scheduleDTO.JadwalHarian {
	return scheduleDTO.JadwalHarian{
		Tanggal:             "2025-08-20",
		HariDalamMinggu:     3,
		NamaHari:            "Rabu",
		Status:              scheduleDTO.StatusHariNormal,
		WaktuMulai:          scheduleDTO.TimeOfDay{Jam: 8, Menit: 0, Status: scheduleDTO.StatusHariNormal},
		WaktuSelesai:        scheduleDTO.TimeOfDay{Jam: 17, Menit: 0, Status: scheduleDTO.StatusHariNormal, ToleransiPulangAwal: 30},
		BatasTerlambat:      15,
		ToleransiPulangAwal: 30,
	}
}

func absenPada(jam, menit int) time.Time {
	return time.Date(2025, 8, 20, jam, menit, 0, 0, time.UTC)
}

func TestHitungStatusMasuk(t *testing.T) {
	svc := NewKlasifikasiService()
	tests := []struct {
		name         string
		jam, menit   int
		wantStatus   string
		wantSelisih  int
		inKeterangan string
	}{
		{name: "tepat waktu", jam: 8, menit: 0, wantStatus: StatusHadir, wantSelisih: 0, inKeterangan: "Tepat waktu (08:00)"},
		{name: "lebih awal", jam: 7, menit: 45, wantStatus: StatusHadir, wantSelisih: -15, inKeterangan: "Tepat waktu"},
		{name: "batas toleransi", jam: 8, menit: 15, wantStatus: StatusHadir, wantSelisih: 15, inKeterangan: "Masih dalam toleransi (Terlambat 15 menit)"},
		{name: "lewat satu menit", jam: 8, menit: 16, wantStatus: StatusTerlambat, wantSelisih: 16, inKeterangan: "Terlambat 16 menit (Jadwal: 08:00)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.HitungStatusKehadiran(absenPada(tt.jam, tt.menit), jadwalNormal(), TipeAbsenMasuk)
			if got.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", got.Status, tt.wantStatus)
			}
			if got.SelisihMenit != tt.wantSelisih {
				t.Errorf("selisih = %d, want %d", got.SelisihMenit, tt.wantSelisih)
			}
			if !strings.Contains(got.Keterangan, tt.inKeterangan) {
				t.Errorf("keterangan = %q, harus memuat %q", got.Keterangan, tt.inKeterangan)
			}
		})
	}
}

func TestHitungStatusPulang(t *testing.T) {
	svc := NewKlasifikasiService()
	tests := []struct {
		name         string
		jam, menit   int
		wantStatus   string
		wantSelisih  int
		inKeterangan string
	}{
		{name: "tepat waktu", jam: 17, menit: 0, wantStatus: StatusPulang, wantSelisih: 0, inKeterangan: "Tepat waktu (17:00)"},
		{name: "batas toleransi pulang awal", jam: 16, menit: 30, wantStatus: StatusPulang, wantSelisih: -30, inKeterangan: "Dalam toleransi pulang awal (30 menit)"},
		{name: "lewat toleransi", jam: 16, menit: 29, wantStatus: StatusPulangAwal, wantSelisih: -31, inKeterangan: "Pulang 31 menit lebih awal (Jadwal: 17:00)"},
		{name: "lembur satu jam satu menit", jam: 18, menit: 1, wantStatus: StatusLembur, wantSelisih: 61, inKeterangan: "Lembur 1 jam 1 menit"},
		{name: "pulang telat tapi belum lembur", jam: 18, menit: 0, wantStatus: StatusPulang, wantSelisih: 60, inKeterangan: "Tepat waktu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.HitungStatusKehadiran(absenPada(tt.jam, tt.menit), jadwalNormal(), TipeAbsenPulang)
			if got.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", got.Status, tt.wantStatus)
			}
			if got.SelisihMenit != tt.wantSelisih {
				t.Errorf("selisih = %d, want %d", got.SelisihMenit, tt.wantSelisih)
			}
			if !strings.Contains(got.Keterangan, tt.inKeterangan) {
				t.Errorf("keterangan = %q, harus memuat %q", got.Keterangan, tt.inKeterangan)
			}
		})
	}
}

func TestHitungStatusHariLibur(t *testing.T) {
	svc := NewKlasifikasiService()
	jadwal := scheduleDTO.JadwalHarian{
		Tanggal:         "2025-08-17",
		HariDalamMinggu: 0,
		Keterangan:      "Hari Kemerdekaan",
		Status:          scheduleDTO.StatusHariLibur,
		WaktuMulai:      scheduleDTO.TimeOfDay{Status: scheduleDTO.StatusHariLibur},
		WaktuSelesai:    scheduleDTO.TimeOfDay{Status: scheduleDTO.StatusHariLibur},
		IsHariKhusus:    true,
	}

	// Jam berapa pun, masuk maupun pulang, hasilnya Lembur selisih 0.
	for _, tipe := range []string{TipeAbsenMasuk, TipeAbsenPulang} {
		got := svc.HitungStatusKehadiran(absenPada(10, 30), jadwal, tipe)
		if got.Status != StatusLembur {
			t.Errorf("tipe %s: status = %q, want Lembur", tipe, got.Status)
		}
		if got.SelisihMenit != 0 {
			t.Errorf("tipe %s: selisih = %d, want 0", tipe, got.SelisihMenit)
		}
		if !strings.Contains(got.Keterangan, "Hari Kemerdekaan") {
			t.Errorf("tipe %s: keterangan = %q, harus menyebut hari khususnya", tipe, got.Keterangan)
		}
	}
}

func TestHitungStatusInputTidakValid(t *testing.T) {
	svc := NewKlasifikasiService()
	tests := []struct {
		name  string
		waktu time.Time
		jadw  scheduleDTO.JadwalHarian
		tipe  string
	}{
		{name: "waktu zero", waktu: time.Time{}, jadw: jadwalNormal(), tipe: TipeAbsenMasuk},
		{name: "jadwal kosong", waktu: absenPada(8, 0), jadw: scheduleDTO.JadwalHarian{}, tipe: TipeAbsenMasuk},
		{name: "tipe tidak dikenal", waktu: absenPada(8, 0), jadw: jadwalNormal(), tipe: "istirahat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.HitungStatusKehadiran(tt.waktu, tt.jadw, tt.tipe)
			if got.Status != StatusErrors {
				t.Errorf("status = %q, want Error", got.Status)
			}
			if got.SelisihMenit != 0 {
				t.Errorf("selisih = %d, want 0", got.SelisihMenit)
			}
			if !strings.Contains(got.Keterangan, "Terjadi kesalahan") {
				t.Errorf("keterangan = %q, harus memuat pesan kesalahan", got.Keterangan)
			}
		})
	}
}

func TestHitungStatusTimestampDariClock(t *testing.T) {
	fixed := time.Date(2025, 8, 20, 8, 5, 0, 0, time.UTC)
	svc := NewKlasifikasiServiceWithClock(func() time.Time { return fixed })

	got := svc.HitungStatusKehadiran(absenPada(8, 0), jadwalNormal(), TipeAbsenMasuk)
	if got.Timestamp != fixed.Format(time.RFC3339) {
		t.Errorf("timestamp = %q, want %q", got.Timestamp, fixed.Format(time.RFC3339))
	}
}

func TestHitungStatusBatasTerlambatDefault(t *testing.T) {
	svc := NewKlasifikasiService()
	jadwal := jadwalNormal()
	jadwal.BatasTerlambat = 0 // hilang → default 15

	got := svc.HitungStatusKehadiran(absenPada(8, 10), jadwal, TipeAbsenMasuk)
	if got.Status != StatusHadir {
		t.Errorf("status = %q, want Hadir (10 menit masih dalam default 15)", got.Status)
	}
}
