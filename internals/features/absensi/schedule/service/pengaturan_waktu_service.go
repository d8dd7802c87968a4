package service

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"time"

	"absensiku_backend/internals/features/absensi/schedule/dto"
	"absensiku_backend/internals/helpers/timeutil"
)

const (
	waktuMulaiCachePrefix   = "waktuMulai_"
	waktuSelesaiCachePrefix = "waktuSelesai_"
	pengaturanWaktuCacheTTL = 6 * time.Hour
)

var (
	defaultWaktuMulai   = dto.TimeOfDay{Jam: 8, Menit: 0, Status: dto.StatusHariDefault}
	defaultWaktuSelesai = dto.TimeOfDay{Jam: 17, Menit: 0, Status: dto.StatusHariDefault}
)

// PengaturanWaktuService: sumber jadwal default per hari-dalam-minggu
// (0=Minggu .. 6=Sabtu) dengan cache 6 jam. Konfigurasi hilang/rusak
// jatuh ke default 08:00/17:00 TANPA di-cache, supaya koreksi di storage
// langsung terbaca pada pembacaan berikutnya.
type PengaturanWaktuService struct {
	repo       PengaturanWaktuRepo
	hariKhusus *HariKhususService
	cache      CacheStore
}

func NewPengaturanWaktuService(repo PengaturanWaktuRepo, hariKhusus *HariKhususService, cache CacheStore) *PengaturanWaktuService {
	return &PengaturanWaktuService{repo: repo, hariKhusus: hariKhusus, cache: cache}
}

// WaktuMulaiUntukHari: waktu mulai kerja untuk hari tertentu.
// tanggal opsional; bila diisi, hari khusus pada tanggal itu menang.
func (s *PengaturanWaktuService) WaktuMulaiUntukHari(ctx context.Context, hari int, tanggal string) dto.TimeOfDay {
	cacheKey := waktuMulaiCachePrefix + strconv.Itoa(hari)
	if cached, ok := s.getCached(ctx, cacheKey); ok {
		return cached
	}

	if tanggal != "" {
		if info := s.hariKhusus.CekHariKhusus(ctx, tanggal); info != nil {
			return info.WaktuMulai
		}
	}

	row, err := s.repo.ByHari(ctx, hari)
	if err != nil || hari < 0 || hari > 6 {
		if err != nil {
			log.Printf("[WARNING] Pengaturan waktu hari %d tidak terbaca: %v", hari, err)
		}
		return defaultWaktuMulai
	}

	if !strings.Contains(row.PengaturanWaktuMulai, ":") {
		log.Printf("[WARNING] Format waktu mulai tidak valid: %q", row.PengaturanWaktuMulai)
		return defaultWaktuMulai
	}
	cp, err := timeutil.ParseClockString(row.PengaturanWaktuMulai)
	if err != nil {
		log.Printf("[WARNING] Format waktu mulai tidak valid: %v", err)
		return defaultWaktuMulai
	}

	result := dto.TimeOfDay{
		Jam:    cp.Jam,
		Menit:  cp.Menit,
		Status: statusHariAtauNormal(row.PengaturanWaktuStatusHari),
	}

	s.putCached(ctx, cacheKey, result)
	return result
}

// WaktuSelesaiUntukHari: waktu selesai kerja untuk hari tertentu,
// berikut toleransi pulang awal dari baris yang sama.
func (s *PengaturanWaktuService) WaktuSelesaiUntukHari(ctx context.Context, hari int, tanggal string) dto.TimeOfDay {
	cacheKey := waktuSelesaiCachePrefix + strconv.Itoa(hari)
	if cached, ok := s.getCached(ctx, cacheKey); ok {
		return cached
	}

	if tanggal != "" {
		if info := s.hariKhusus.CekHariKhusus(ctx, tanggal); info != nil {
			return info.WaktuSelesai
		}
	}

	row, err := s.repo.ByHari(ctx, hari)
	if err != nil || hari < 0 || hari > 6 {
		if err != nil {
			log.Printf("[WARNING] Pengaturan waktu hari %d tidak terbaca: %v", hari, err)
		}
		return defaultWaktuSelesai
	}

	if !strings.Contains(row.PengaturanWaktuSelesai, ":") {
		log.Printf("[WARNING] Format waktu selesai tidak valid: %q", row.PengaturanWaktuSelesai)
		return defaultWaktuSelesai
	}
	cp, err := timeutil.ParseClockString(row.PengaturanWaktuSelesai)
	if err != nil {
		log.Printf("[WARNING] Format waktu selesai tidak valid: %v", err)
		return defaultWaktuSelesai
	}

	result := dto.TimeOfDay{
		Jam:                 cp.Jam,
		Menit:               cp.Menit,
		Status:              statusHariAtauNormal(row.PengaturanWaktuStatusHari),
		ToleransiPulangAwal: row.PengaturanWaktuToleransiPulangAwal,
	}

	s.putCached(ctx, cacheKey, result)
	return result
}

// BatasTerlambatUntukHari membaca batas terlambat (menit) dari baris mingguan.
// Hilang atau nol → default 15.
func (s *PengaturanWaktuService) BatasTerlambatUntukHari(ctx context.Context, hari int) int {
	row, err := s.repo.ByHari(ctx, hari)
	if err != nil || row.PengaturanWaktuBatasTerlambat <= 0 {
		return 15
	}
	return row.PengaturanWaktuBatasTerlambat
}

func (s *PengaturanWaktuService) getCached(ctx context.Context, key string) (dto.TimeOfDay, bool) {
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return dto.TimeOfDay{}, false
	}
	var t dto.TimeOfDay
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		log.Printf("[WARNING] Cache pengaturan waktu korup (%s): %v", key, err)
		return dto.TimeOfDay{}, false
	}
	return t, true
}

func (s *PengaturanWaktuService) putCached(ctx context.Context, key string, t dto.TimeOfDay) {
	b, err := json.Marshal(t)
	if err != nil {
		return
	}
	s.cache.Put(ctx, key, string(b), pengaturanWaktuCacheTTL)
}

func statusHariAtauNormal(status string) string {
	if strings.TrimSpace(status) == "" {
		return dto.StatusHariNormal
	}
	return status
}
