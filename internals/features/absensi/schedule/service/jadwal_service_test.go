package service

import (
	"context"
	"reflect"
	"testing"
	"time"

	"absensiku_backend/internals/features/absensi/schedule/dto"
	"absensiku_backend/internals/features/absensi/schedule/model"
)

func newJadwalFixture(pengaturan *fakePengaturanRepo, hariKhusus *fakeHariKhususRepo, clock func() time.Time) *JadwalService {
	cache := NewMemoryCacheStore()
	hk := NewHariKhususService(hariKhusus, cache)
	weekly := NewPengaturanWaktuService(pengaturan, hk, cache)
	return NewJadwalServiceWithClock(weekly, hk, clock, 5*time.Minute)
}

func jamTetap(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestJadwalHariSemuaHariPunyaWaktu(t *testing.T) {
	// Tabel pengaturan tidak ada sama sekali: setiap hari 0-6 tetap dapat
	// jadwal dengan waktu mulai/selesai terisi (default 08:00/17:00).
	base := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC) // Minggu
	for hari := 0; hari <= 6; hari++ {
		svc := newJadwalFixture(&fakePengaturanRepo{}, &fakeHariKhususRepo{}, time.Now)
		tanggal := base.AddDate(0, 0, hari)

		jadwal := svc.JadwalHari(context.Background(), tanggal)
		if jadwal.HariDalamMinggu != hari {
			t.Errorf("hari %d: HariDalamMinggu = %d", hari, jadwal.HariDalamMinggu)
		}
		if jadwal.WaktuMulai.Jam != 8 || jadwal.WaktuMulai.Menit != 0 {
			t.Errorf("hari %d: waktu mulai = %02d:%02d, want 08:00", hari, jadwal.WaktuMulai.Jam, jadwal.WaktuMulai.Menit)
		}
		if jadwal.WaktuSelesai.Jam != 17 || jadwal.WaktuSelesai.Menit != 0 {
			t.Errorf("hari %d: waktu selesai = %02d:%02d, want 17:00", hari, jadwal.WaktuSelesai.Jam, jadwal.WaktuSelesai.Menit)
		}
	}
}

func TestJadwalHariIdempotenDalamJendelaCache(t *testing.T) {
	pengaturan := &fakePengaturanRepo{rows: map[int]model.PengaturanWaktuModel{
		3: pengaturanRow(3, "08:00", "17:00", 15, 15, "Normal"),
	}}
	now := time.Date(2025, 8, 20, 8, 0, 0, 0, time.UTC) // Rabu
	current := now
	svc := newJadwalFixture(pengaturan, &fakeHariKhususRepo{}, func() time.Time { return current })
	ctx := context.Background()

	first := svc.JadwalHari(ctx, now)

	// Data di storage berubah, tapi masih dalam jendela 5 menit.
	pengaturan.rows[3] = pengaturanRow(3, "09:00", "18:00", 5, 5, "Normal")
	current = now.Add(4 * time.Minute)

	second := svc.JadwalHari(ctx, now)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("hasil dalam jendela cache harus identik:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestJadwalHariCacheKedaluwarsa(t *testing.T) {
	pengaturan := &fakePengaturanRepo{rows: map[int]model.PengaturanWaktuModel{
		3: pengaturanRow(3, "08:00", "17:00", 15, 15, "Normal"),
	}}
	now := time.Date(2025, 8, 20, 8, 0, 0, 0, time.UTC)
	current := now
	svc := newJadwalFixture(pengaturan, &fakeHariKhususRepo{}, func() time.Time { return current })
	ctx := context.Background()

	svc.JadwalHari(ctx, now)
	before := pengaturan.calls

	current = now.Add(6 * time.Minute)
	svc.JadwalHari(ctx, now)
	if pengaturan.calls == before {
		t.Error("setelah TTL lewat, resolver harus membaca ulang (repo tidak dipanggil lagi)")
	}
}

func TestJadwalHariKhususMenangAtasMingguan(t *testing.T) {
	pengaturan := &fakePengaturanRepo{rows: map[int]model.PengaturanWaktuModel{
		3: pengaturanRow(3, "08:00", "17:00", 15, 15, "Normal"), // Rabu normal
	}}
	hariKhusus := &fakeHariKhususRepo{rows: []model.HariKhususModel{
		{
			HariKhususTanggal:      "2025-08-20",
			HariKhususKeterangan:   "Cuti Bersama",
			HariKhususStatus:       "Libur",
			HariKhususWaktuMulai:   "00:00",
			HariKhususWaktuSelesai: "00:00",
		},
	}}
	svc := newJadwalFixture(pengaturan, hariKhusus, time.Now)

	jadwal := svc.JadwalHari(context.Background(), time.Date(2025, 8, 20, 8, 0, 0, 0, time.UTC))
	if !jadwal.IsHariKhusus {
		t.Fatal("jadwal harus bertanda hari khusus")
	}
	if jadwal.Status != dto.StatusHariLibur {
		t.Errorf("status = %q, want Libur", jadwal.Status)
	}
	if jadwal.Keterangan != "Cuti Bersama" {
		t.Errorf("keterangan = %q, want Cuti Bersama", jadwal.Keterangan)
	}
	if jadwal.WaktuMulai.Jam != 0 || jadwal.WaktuSelesai.Jam != 0 {
		t.Errorf("jadwal libur harus 00:00-00:00, dapat %02d:%02d-%02d:%02d",
			jadwal.WaktuMulai.Jam, jadwal.WaktuMulai.Menit, jadwal.WaktuSelesai.Jam, jadwal.WaktuSelesai.Menit)
	}
}

func TestResetCacheMemaksaResolusiUlang(t *testing.T) {
	pengaturan := &fakePengaturanRepo{rows: map[int]model.PengaturanWaktuModel{
		3: pengaturanRow(3, "08:00", "17:00", 15, 15, "Normal"),
	}}
	now := time.Date(2025, 8, 20, 8, 0, 0, 0, time.UTC)
	svc := newJadwalFixture(pengaturan, &fakeHariKhususRepo{}, jamTetap(now))
	ctx := context.Background()

	svc.JadwalHari(ctx, now)
	before := pengaturan.calls

	svc.ResetCache()
	svc.JadwalHari(ctx, now)
	if pengaturan.calls == before {
		t.Error("setelah ResetCache, resolver harus membaca ulang storage")
	}
}

func TestJadwalHariNamaHariTerisi(t *testing.T) {
	pengaturan := &fakePengaturanRepo{rows: map[int]model.PengaturanWaktuModel{
		1: pengaturanRow(1, "08:00", "17:00", 15, 15, "Normal"),
	}}
	svc := newJadwalFixture(pengaturan, &fakeHariKhususRepo{}, time.Now)

	jadwal := svc.JadwalHari(context.Background(), time.Date(2025, 8, 18, 8, 0, 0, 0, time.UTC)) // Senin
	if jadwal.NamaHari != "Senin" {
		t.Errorf("NamaHari = %q, want Senin", jadwal.NamaHari)
	}
	if jadwal.BatasTerlambat != 15 {
		t.Errorf("BatasTerlambat = %d, want 15", jadwal.BatasTerlambat)
	}
}
