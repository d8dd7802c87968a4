package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"absensiku_backend/internals/features/absensi/schedule/dto"
	"absensiku_backend/internals/helpers/timeutil"
)

const jadwalCacheTTL = 5 * time.Minute

// JadwalService menyatukan hari khusus + pengaturan mingguan jadi satu
// JadwalHarian.
//
// Cache-nya satu slot dengan TTL 5 menit dan TIDAK di-key per tanggal:
// semua pemanggilan dalam satu jendela mengembalikan jadwal yang sama.
// Ini disengaja untuk burst check-in/out pada "hari ini"; panggil
// ResetCache setelah perubahan pengaturan.
type JadwalService struct {
	weekly     *PengaturanWaktuService
	hariKhusus *HariKhususService
	clock      func() time.Time
	ttl        time.Duration

	mu            sync.Mutex
	cached        *dto.JadwalHarian
	lastCacheTime time.Time
}

func NewJadwalService(weekly *PengaturanWaktuService, hariKhusus *HariKhususService) *JadwalService {
	return &JadwalService{
		weekly:     weekly,
		hariKhusus: hariKhusus,
		clock:      time.Now,
		ttl:        jadwalCacheTTL,
	}
}

// NewJadwalServiceWithClock dipakai test untuk mengontrol waktu dan TTL cache.
func NewJadwalServiceWithClock(weekly *PengaturanWaktuService, hariKhusus *HariKhususService, clock func() time.Time, ttl time.Duration) *JadwalService {
	s := NewJadwalService(weekly, hariKhusus)
	s.clock = clock
	s.ttl = ttl
	return s
}

// JadwalHari mengembalikan jadwal kerja untuk tanggal tersebut. Tidak pernah
// mengembalikan error: kegagalan apa pun menghasilkan jadwal status error
// dengan default 08:00/17:00, dan hasil itu ikut di-cache supaya storage
// tidak dihantam berulang selama jendela yang sama.
func (s *JadwalService) JadwalHari(ctx context.Context, tanggal time.Time) (result dto.JadwalHarian) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.clock().Sub(s.lastCacheTime) < s.ttl {
		return *s.cached
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] Gagal resolve jadwal: %v", r)
			result = s.jadwalError(tanggal, fmt.Sprintf("%v", r))
		}
		copied := result
		s.cached = &copied
		s.lastCacheTime = s.clock()
	}()

	tanggalStr := timeutil.FormatTanggal(tanggal)
	hariDalamMinggu := int(tanggal.Weekday())

	if info := s.hariKhusus.CekHariKhusus(ctx, tanggalStr); info != nil {
		result = dto.JadwalHarian{
			Tanggal:             tanggalStr,
			HariDalamMinggu:     hariDalamMinggu,
			Keterangan:          info.Keterangan,
			Status:              info.Status,
			WaktuMulai:          info.WaktuMulai,
			WaktuSelesai:        info.WaktuSelesai,
			BatasTerlambat:      info.BatasTerlambat,
			ToleransiPulangAwal: info.ToleransiPulangAwal,
			IsHariKhusus:        true,
		}
		return result
	}

	waktuMulai := s.weekly.WaktuMulaiUntukHari(ctx, hariDalamMinggu, "")
	waktuSelesai := s.weekly.WaktuSelesaiUntukHari(ctx, hariDalamMinggu, "")
	batasTerlambat := s.weekly.BatasTerlambatUntukHari(ctx, hariDalamMinggu)

	result = dto.JadwalHarian{
		Tanggal:             tanggalStr,
		HariDalamMinggu:     hariDalamMinggu,
		NamaHari:            timeutil.NamaHari(hariDalamMinggu),
		Status:              waktuMulai.Status,
		WaktuMulai:          waktuMulai,
		WaktuSelesai:        waktuSelesai,
		BatasTerlambat:      batasTerlambat,
		ToleransiPulangAwal: waktuSelesai.ToleransiPulangAwal,
		IsHariKhusus:        false,
	}
	return result
}

// ResetCache membuang jadwal ter-cache; dipanggil setelah admin mengubah
// pengaturan jadwal.
func (s *JadwalService) ResetCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = nil
	s.lastCacheTime = time.Time{}
	log.Println("[INFO] Cache jadwal direset")
}

func (s *JadwalService) jadwalError(tanggal time.Time, errMsg string) dto.JadwalHarian {
	return dto.JadwalHarian{
		Tanggal:         timeutil.FormatTanggal(tanggal),
		HariDalamMinggu: int(tanggal.Weekday()),
		Status:          "Error",
		WaktuMulai:      dto.TimeOfDay{Jam: 8, Menit: 0, Status: dto.StatusHariError},
		WaktuSelesai:    dto.TimeOfDay{Jam: 17, Menit: 0, Status: dto.StatusHariError},
		BatasTerlambat:  15,
		IsHariKhusus:    false,
		Error:           errMsg,
	}
}
