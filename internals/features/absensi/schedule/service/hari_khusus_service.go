package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"absensiku_backend/internals/features/absensi/schedule/dto"
	"absensiku_backend/internals/helpers/timeutil"
)

const (
	hariKhususCachePrefix = "hariKhusus_"
	hariKhususCacheTTL    = 24 * time.Hour
)

// cachedHariKhusus menampung hasil positif maupun negatif.
// IsCached membedakan nilai tersimpan dari hasil zero-value parse.
type cachedHariKhusus struct {
	IsCached bool                `json:"is_cached"`
	IsNull   bool                `json:"is_null"`
	Info     *dto.HariKhususInfo `json:"info,omitempty"`
}

// HariKhususService: lookup override tanggal dengan cache 24 jam,
// termasuk cache negatif ("bukan hari khusus") supaya tabel tidak
// di-scan berulang untuk tanggal yang sama.
type HariKhususService struct {
	repo  HariKhususRepo
	cache CacheStore
}

func NewHariKhususService(repo HariKhususRepo, cache CacheStore) *HariKhususService {
	return &HariKhususService{repo: repo, cache: cache}
}

// CekHariKhusus mengembalikan info hari khusus untuk tanggal tersebut,
// atau nil bila bukan hari khusus. Tidak pernah mengembalikan error:
// kegagalan baca/parse diperlakukan sebagai "bukan hari khusus".
func (s *HariKhususService) CekHariKhusus(ctx context.Context, tanggal string) *dto.HariKhususInfo {
	normalized := timeutil.NormalizeTanggal(tanggal)
	if normalized == "" {
		return nil
	}

	cacheKey := hariKhususCachePrefix + normalized
	if raw, ok := s.cache.Get(ctx, cacheKey); ok {
		var cached cachedHariKhusus
		if err := json.Unmarshal([]byte(raw), &cached); err == nil && cached.IsCached {
			if cached.IsNull {
				return nil
			}
			if cached.Info != nil {
				return cached.Info
			}
		} else if err != nil {
			// cache korup → anggap miss, lanjut baca storage
			log.Printf("[WARNING] Cache hari khusus korup (%s): %v", cacheKey, err)
		}
	}

	rows, err := s.repo.All(ctx)
	if err != nil {
		log.Printf("[ERROR] Gagal baca tabel hari_khusus: %v", err)
		return nil
	}

	for _, row := range rows {
		if timeutil.NormalizeTanggal(row.HariKhususTanggal) != normalized {
			continue
		}

		mulai, errM := timeutil.ParseClockString(row.HariKhususWaktuMulai)
		selesai, errS := timeutil.ParseClockString(row.HariKhususWaktuSelesai)
		if errM != nil || errS != nil {
			log.Printf("[ERROR] Format waktu hari khusus %s tidak valid (mulai=%q selesai=%q)",
				normalized, row.HariKhususWaktuMulai, row.HariKhususWaktuSelesai)
			return nil
		}

		info := &dto.HariKhususInfo{
			Tanggal:    normalized,
			Keterangan: row.HariKhususKeterangan,
			Status:     row.HariKhususStatus,
			WaktuMulai: dto.TimeOfDay{
				Jam:    mulai.Jam,
				Menit:  mulai.Menit,
				Status: row.HariKhususStatus,
			},
			WaktuSelesai: dto.TimeOfDay{
				Jam:                 selesai.Jam,
				Menit:               selesai.Menit,
				Status:              row.HariKhususStatus,
				ToleransiPulangAwal: row.HariKhususToleransiPulangAwal,
			},
			BatasTerlambat:      row.HariKhususBatasTerlambat,
			ToleransiPulangAwal: row.HariKhususToleransiPulangAwal,
		}

		s.putCache(ctx, cacheKey, cachedHariKhusus{IsCached: true, Info: info})
		return info
	}

	// Tidak ditemukan: cache hasil negatif 24 jam.
	s.putCache(ctx, cacheKey, cachedHariKhusus{IsCached: true, IsNull: true})
	return nil
}

func (s *HariKhususService) putCache(ctx context.Context, key string, val cachedHariKhusus) {
	b, err := json.Marshal(val)
	if err != nil {
		return
	}
	s.cache.Put(ctx, key, string(b), hariKhususCacheTTL)
}
