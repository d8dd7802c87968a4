package service

import (
	"context"
	"testing"

	"absensiku_backend/internals/features/absensi/schedule/dto"
	"absensiku_backend/internals/features/absensi/schedule/model"
)

func newPengaturanFixture(repo *fakePengaturanRepo, hariKhusus []model.HariKhususModel) *PengaturanWaktuService {
	cache := NewMemoryCacheStore()
	hk := NewHariKhususService(&fakeHariKhususRepo{rows: hariKhusus}, cache)
	return NewPengaturanWaktuService(repo, hk, cache)
}

func TestWaktuMulaiDariStorage(t *testing.T) {
	repo := &fakePengaturanRepo{rows: map[int]model.PengaturanWaktuModel{
		1: pengaturanRow(1, "07:30", "16:30", 10, 20, "Normal"),
	}}
	svc := newPengaturanFixture(repo, nil)

	got := svc.WaktuMulaiUntukHari(context.Background(), 1, "")
	want := dto.TimeOfDay{Jam: 7, Menit: 30, Status: "Normal"}
	if got != want {
		t.Errorf("WaktuMulaiUntukHari(1) = %+v, want %+v", got, want)
	}
}

func TestWaktuMulaiHasilValidDiCache(t *testing.T) {
	repo := &fakePengaturanRepo{rows: map[int]model.PengaturanWaktuModel{
		2: pengaturanRow(2, "08:00", "17:00", 15, 15, "Normal"),
	}}
	svc := newPengaturanFixture(repo, nil)
	ctx := context.Background()

	svc.WaktuMulaiUntukHari(ctx, 2, "")
	svc.WaktuMulaiUntukHari(ctx, 2, "")
	if repo.calls != 1 {
		t.Errorf("repo dipanggil %d kali, want 1 (hasil valid harus di-cache 6 jam)", repo.calls)
	}
}

func TestWaktuMulaiDefaultTanpaCache(t *testing.T) {
	// Tabel kosong: default 08:00 dikembalikan TANPA di-cache, jadi
	// pembacaan berikutnya tetap menyentuh storage.
	repo := &fakePengaturanRepo{}
	svc := newPengaturanFixture(repo, nil)
	ctx := context.Background()

	got := svc.WaktuMulaiUntukHari(ctx, 3, "")
	if got != defaultWaktuMulai {
		t.Fatalf("WaktuMulaiUntukHari saat tabel kosong = %+v, want %+v", got, defaultWaktuMulai)
	}
	svc.WaktuMulaiUntukHari(ctx, 3, "")
	if repo.calls != 2 {
		t.Errorf("repo dipanggil %d kali, want 2 (default tidak boleh di-cache)", repo.calls)
	}
}

func TestWaktuMulaiFormatRusak(t *testing.T) {
	repo := &fakePengaturanRepo{rows: map[int]model.PengaturanWaktuModel{
		4: pengaturanRow(4, "0800", "17:00", 15, 15, "Normal"), // tanpa ':'
	}}
	svc := newPengaturanFixture(repo, nil)

	if got := svc.WaktuMulaiUntukHari(context.Background(), 4, ""); got != defaultWaktuMulai {
		t.Errorf("format tanpa ':' harus fallback ke default, dapat %+v", got)
	}
}

func TestWaktuSelesaiBawaToleransi(t *testing.T) {
	repo := &fakePengaturanRepo{rows: map[int]model.PengaturanWaktuModel{
		6: pengaturanRow(6, "08:00", "13:00", 15, 30, "Setengah Hari"),
	}}
	svc := newPengaturanFixture(repo, nil)

	got := svc.WaktuSelesaiUntukHari(context.Background(), 6, "")
	if got.Jam != 13 || got.Menit != 0 {
		t.Errorf("waktu selesai = %02d:%02d, want 13:00", got.Jam, got.Menit)
	}
	if got.Status != dto.StatusHariSetengahHari {
		t.Errorf("status = %q, want Setengah Hari", got.Status)
	}
	if got.ToleransiPulangAwal != 30 {
		t.Errorf("toleransi pulang awal = %d, want 30", got.ToleransiPulangAwal)
	}
}

func TestWaktuMulaiHariKhususMenang(t *testing.T) {
	repo := &fakePengaturanRepo{rows: map[int]model.PengaturanWaktuModel{
		3: pengaturanRow(3, "08:00", "17:00", 15, 15, "Normal"),
	}}
	svc := newPengaturanFixture(repo, []model.HariKhususModel{
		{
			HariKhususTanggal:      "2025-08-17",
			HariKhususKeterangan:   "Hari Kemerdekaan",
			HariKhususStatus:       "Libur",
			HariKhususWaktuMulai:   "00:00",
			HariKhususWaktuSelesai: "00:00",
		},
	})

	got := svc.WaktuMulaiUntukHari(context.Background(), 3, "2025-08-17")
	if got.Status != dto.StatusHariLibur {
		t.Errorf("status = %q, want Libur (override hari khusus)", got.Status)
	}
	if got.Jam != 0 || got.Menit != 0 {
		t.Errorf("waktu mulai = %02d:%02d, want 00:00", got.Jam, got.Menit)
	}
	if repo.calls != 0 {
		t.Errorf("repo pengaturan dipanggil %d kali, want 0 (hari khusus return lebih dulu)", repo.calls)
	}
}

func TestBatasTerlambatDefault(t *testing.T) {
	svc := newPengaturanFixture(&fakePengaturanRepo{}, nil)
	if got := svc.BatasTerlambatUntukHari(context.Background(), 1); got != 15 {
		t.Errorf("BatasTerlambatUntukHari tanpa data = %d, want 15", got)
	}
}

func TestStatusHariKosongJadiNormal(t *testing.T) {
	repo := &fakePengaturanRepo{rows: map[int]model.PengaturanWaktuModel{
		5: pengaturanRow(5, "08:00", "17:00", 15, 15, ""),
	}}
	svc := newPengaturanFixture(repo, nil)

	if got := svc.WaktuMulaiUntukHari(context.Background(), 5, ""); got.Status != dto.StatusHariNormal {
		t.Errorf("status kosong harus jadi Normal, dapat %q", got.Status)
	}
}
