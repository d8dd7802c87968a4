package service

import (
	"fmt"
	"log"
	"time"

	scheduleDTO "absensiku_backend/internals/features/absensi/schedule/dto"
)

// Status kehadiran hasil klasifikasi.
const (
	StatusHadir      = "Hadir"
	StatusTerlambat  = "Terlambat"
	StatusPulang     = "Pulang"
	StatusPulangAwal = "Pulang Awal"
	StatusLembur     = "Lembur"
	StatusErrors     = "Error"
)

const (
	TipeAbsenMasuk  = "masuk"
	TipeAbsenPulang = "pulang"
)

const (
	defaultBatasTerlambat      = 15
	defaultToleransiPulangAwal = 30
	batasLemburMenit           = 60
)

// StatusKehadiran: hasil klasifikasi satu kejadian absen. Dibuat baru per
// panggilan; dipersist oleh pemanggil ke baris absensi, bukan oleh service ini.
type StatusKehadiran struct {
	Status       string `json:"status"`
	Keterangan   string `json:"keterangan"`
	SelisihMenit int    `json:"selisih_menit"`
	Timestamp    string `json:"timestamp"`
}

// KlasifikasiService menentukan status kehadiran (Hadir/Terlambat/Pulang/
// Pulang Awal/Lembur) dari waktu absen terhadap jadwal yang sudah di-resolve.
type KlasifikasiService struct {
	clock func() time.Time
}

func NewKlasifikasiService() *KlasifikasiService {
	return &KlasifikasiService{clock: time.Now}
}

func NewKlasifikasiServiceWithClock(clock func() time.Time) *KlasifikasiService {
	return &KlasifikasiService{clock: clock}
}

// HitungStatusKehadiran tidak pernah gagal keras: input tidak valid atau
// panic apa pun dikonversi jadi hasil ber-status Error supaya transaksi
// check-in/out pemanggil tidak ikut gugur.
func (s *KlasifikasiService) HitungStatusKehadiran(waktuAbsen time.Time, jadwal scheduleDTO.JadwalHarian, tipeAbsen string) (hasil StatusKehadiran) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] Gagal menghitung status kehadiran: %v", r)
			hasil = s.hasilError(fmt.Sprintf("%v", r))
		}
	}()

	if waktuAbsen.IsZero() {
		return s.hasilError("parameter waktuAbsen tidak valid")
	}
	if jadwal.Status == "" {
		return s.hasilError("parameter jadwal tidak valid")
	}
	if tipeAbsen != TipeAbsenMasuk && tipeAbsen != TipeAbsenPulang {
		return s.hasilError("parameter tipeAbsen tidak valid")
	}

	// Hari libur: absen apa pun dihitung lembur, tanpa melihat jam.
	if jadwal.Status == scheduleDTO.StatusHariLibur {
		keterangan := "Lembur pada hari libur"
		if jadwal.IsHariKhusus && jadwal.Keterangan != "" {
			keterangan = "Lembur pada " + jadwal.Keterangan
		}
		return StatusKehadiran{
			Status:       StatusLembur,
			Keterangan:   keterangan,
			SelisihMenit: 0,
			Timestamp:    s.timestamp(),
		}
	}

	totalMenitAbsen := waktuAbsen.Hour()*60 + waktuAbsen.Minute()

	if tipeAbsen == TipeAbsenMasuk {
		waktuMulai := jadwal.WaktuMulai
		batasTerlambat := jadwal.BatasTerlambat
		if batasTerlambat <= 0 {
			batasTerlambat = defaultBatasTerlambat
		}

		selisihMenit := totalMenitAbsen - (waktuMulai.Jam*60 + waktuMulai.Menit)
		waktuMulaiStr := waktuMulai.Format()

		switch {
		case selisihMenit <= 0:
			return StatusKehadiran{
				Status:       StatusHadir,
				Keterangan:   fmt.Sprintf("Tepat waktu (%s)", waktuMulaiStr),
				SelisihMenit: selisihMenit,
				Timestamp:    s.timestamp(),
			}
		case selisihMenit <= batasTerlambat:
			return StatusKehadiran{
				Status:       StatusHadir,
				Keterangan:   fmt.Sprintf("Masih dalam toleransi (Terlambat %d menit)", selisihMenit),
				SelisihMenit: selisihMenit,
				Timestamp:    s.timestamp(),
			}
		default:
			return StatusKehadiran{
				Status:       StatusTerlambat,
				Keterangan:   fmt.Sprintf("Terlambat %d menit (Jadwal: %s)", selisihMenit, waktuMulaiStr),
				SelisihMenit: selisihMenit,
				Timestamp:    s.timestamp(),
			}
		}
	}

	// tipeAbsen == pulang
	waktuSelesai := jadwal.WaktuSelesai
	toleransiPulangAwal := jadwal.ToleransiPulangAwal
	if toleransiPulangAwal <= 0 {
		toleransiPulangAwal = defaultToleransiPulangAwal
	}

	selisihMenit := totalMenitAbsen - (waktuSelesai.Jam*60 + waktuSelesai.Menit)
	waktuSelesaiStr := waktuSelesai.Format()

	switch {
	case selisihMenit >= 0:
		if selisihMenit > batasLemburMenit {
			return StatusKehadiran{
				Status:       StatusLembur,
				Keterangan:   fmt.Sprintf("Lembur %d jam %d menit", selisihMenit/60, selisihMenit%60),
				SelisihMenit: selisihMenit,
				Timestamp:    s.timestamp(),
			}
		}
		return StatusKehadiran{
			Status:       StatusPulang,
			Keterangan:   fmt.Sprintf("Tepat waktu (%s)", waktuSelesaiStr),
			SelisihMenit: selisihMenit,
			Timestamp:    s.timestamp(),
		}
	case selisihMenit >= -toleransiPulangAwal:
		return StatusKehadiran{
			Status:       StatusPulang,
			Keterangan:   fmt.Sprintf("Dalam toleransi pulang awal (%d menit)", -selisihMenit),
			SelisihMenit: selisihMenit,
			Timestamp:    s.timestamp(),
		}
	default:
		return StatusKehadiran{
			Status:       StatusPulangAwal,
			Keterangan:   fmt.Sprintf("Pulang %d menit lebih awal (Jadwal: %s)", -selisihMenit, waktuSelesaiStr),
			SelisihMenit: selisihMenit,
			Timestamp:    s.timestamp(),
		}
	}
}

func (s *KlasifikasiService) hasilError(pesan string) StatusKehadiran {
	return StatusKehadiran{
		Status:       StatusErrors,
		Keterangan:   "Terjadi kesalahan: " + pesan,
		SelisihMenit: 0,
		Timestamp:    s.timestamp(),
	}
}

func (s *KlasifikasiService) timestamp() string {
	return s.clock().Format(time.RFC3339)
}
