package service

import (
	"context"
	"log"

	"absensiku_backend/internals/features/absensi/schedule/model"

	"gorm.io/gorm"
)

// SeedService membuat konfigurasi jadwal default. Ini satu-satunya jalur yang
// menulis pengaturan dari sisi service; path baca (resolver dkk) tidak pernah
// membuat baris.
type SeedService struct {
	db *gorm.DB
}

func NewSeedService(db *gorm.DB) *SeedService {
	return &SeedService{db: db}
}

// EnsureDefaults mengisi pengaturan_waktu (7 baris, satu per hari) dan contoh
// hari khusus bila tabelnya masih kosong. Idempoten.
func (s *SeedService) EnsureDefaults(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&model.PengaturanWaktuModel{}, &model.HariKhususModel{}); err != nil {
		return err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.PengaturanWaktuModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		rows := defaultPengaturanWaktu()
		if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
			return err
		}
		log.Println("[INFO] Pengaturan waktu default dibuat (7 hari)")
	}

	if err := s.db.WithContext(ctx).Model(&model.HariKhususModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		rows := contohHariKhusus()
		if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
			return err
		}
		log.Println("[INFO] Contoh hari khusus dibuat")
	}

	return nil
}

// Default: Senin-Jumat 08:00-17:00 toleransi 15 menit, Sabtu setengah hari
// 08:00-13:00 toleransi 30 menit, Minggu libur.
func defaultPengaturanWaktu() []model.PengaturanWaktuModel {
	rows := make([]model.PengaturanWaktuModel, 0, 7)
	for hari := 0; hari <= 6; hari++ {
		row := model.PengaturanWaktuModel{
			PengaturanWaktuHari:                hari,
			PengaturanWaktuMulai:               "08:00",
			PengaturanWaktuSelesai:             "17:00",
			PengaturanWaktuBatasTerlambat:      15,
			PengaturanWaktuStatusHari:          "Normal",
			PengaturanWaktuToleransiPulangAwal: 15,
			PengaturanWaktuPersentaseKehadiran: 100,
		}
		switch hari {
		case 0: // Minggu
			row.PengaturanWaktuSelesai = "00:00"
			row.PengaturanWaktuBatasTerlambat = 0
			row.PengaturanWaktuStatusHari = "Libur"
			row.PengaturanWaktuToleransiPulangAwal = 0
			row.PengaturanWaktuPersentaseKehadiran = 0
		case 6: // Sabtu
			row.PengaturanWaktuSelesai = "13:00"
			row.PengaturanWaktuStatusHari = "Setengah Hari"
			row.PengaturanWaktuToleransiPulangAwal = 30
		}
		rows = append(rows, row)
	}
	return rows
}

func contohHariKhusus() []model.HariKhususModel {
	libur := func(tanggal, keterangan string) model.HariKhususModel {
		return model.HariKhususModel{
			HariKhususTanggal:      tanggal,
			HariKhususKeterangan:   keterangan,
			HariKhususStatus:       "Libur",
			HariKhususWaktuMulai:   "00:00",
			HariKhususWaktuSelesai: "00:00",
		}
	}
	return []model.HariKhususModel{
		libur("2025-01-01", "Tahun Baru"),
		libur("2025-05-01", "Hari Buruh"),
		libur("2025-05-09", "Cuti Bersama"),
		libur("2025-08-17", "Hari Kemerdekaan"),
		{
			HariKhususTanggal:             "2025-12-24",
			HariKhususKeterangan:          "Malam Natal",
			HariKhususStatus:              "Setengah Hari",
			HariKhususWaktuMulai:          "08:00",
			HariKhususWaktuSelesai:        "13:00",
			HariKhususBatasTerlambat:      15,
			HariKhususToleransiPulangAwal: 30,
		},
		libur("2025-12-25", "Hari Natal"),
	}
}
