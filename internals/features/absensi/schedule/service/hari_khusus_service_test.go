package service

import (
	"context"
	"testing"

	"absensiku_backend/internals/features/absensi/schedule/dto"
	"absensiku_backend/internals/features/absensi/schedule/model"
)

func newHariKhususFixture(rows []model.HariKhususModel) (*HariKhususService, *fakeHariKhususRepo) {
	repo := &fakeHariKhususRepo{rows: rows}
	return NewHariKhususService(repo, NewMemoryCacheStore()), repo
}

func TestCekHariKhususDitemukan(t *testing.T) {
	svc, _ := newHariKhususFixture([]model.HariKhususModel{
		{
			HariKhususTanggal:             "2025-12-24",
			HariKhususKeterangan:          "Malam Natal",
			HariKhususStatus:              "Setengah Hari",
			HariKhususWaktuMulai:          "08:00",
			HariKhususWaktuSelesai:        "13:00",
			HariKhususBatasTerlambat:      15,
			HariKhususToleransiPulangAwal: 30,
		},
	})

	info := svc.CekHariKhusus(context.Background(), "2025-12-24")
	if info == nil {
		t.Fatal("CekHariKhusus harus menemukan 2025-12-24")
	}
	if info.Status != dto.StatusHariSetengahHari {
		t.Errorf("status = %q, want Setengah Hari", info.Status)
	}
	if info.WaktuMulai.Jam != 8 || info.WaktuMulai.Menit != 0 {
		t.Errorf("waktu mulai = %02d:%02d, want 08:00", info.WaktuMulai.Jam, info.WaktuMulai.Menit)
	}
	if info.WaktuSelesai.Jam != 13 {
		t.Errorf("waktu selesai jam = %d, want 13", info.WaktuSelesai.Jam)
	}
	if info.WaktuSelesai.ToleransiPulangAwal != 30 {
		t.Errorf("toleransi pulang awal = %d, want 30", info.WaktuSelesai.ToleransiPulangAwal)
	}
	if info.BatasTerlambat != 15 {
		t.Errorf("batas terlambat = %d, want 15", info.BatasTerlambat)
	}
}

func TestCekHariKhususCachePositif(t *testing.T) {
	svc, repo := newHariKhususFixture([]model.HariKhususModel{
		{
			HariKhususTanggal:      "2025-01-01",
			HariKhususKeterangan:   "Tahun Baru",
			HariKhususStatus:       "Libur",
			HariKhususWaktuMulai:   "00:00",
			HariKhususWaktuSelesai: "00:00",
		},
	})
	ctx := context.Background()

	first := svc.CekHariKhusus(ctx, "2025-01-01")
	second := svc.CekHariKhusus(ctx, "2025-01-01")
	if first == nil || second == nil {
		t.Fatal("kedua lookup harus menemukan hari khusus")
	}
	if repo.calls != 1 {
		t.Errorf("repo dipanggil %d kali, want 1 (lookup kedua dari cache)", repo.calls)
	}
}

func TestCekHariKhususCacheNegatif(t *testing.T) {
	svc, repo := newHariKhususFixture(nil)
	ctx := context.Background()

	if info := svc.CekHariKhusus(ctx, "2025-03-03"); info != nil {
		t.Fatalf("tanggal tanpa override harus nil, dapat %+v", info)
	}
	if info := svc.CekHariKhusus(ctx, "2025-03-03"); info != nil {
		t.Fatalf("lookup kedua harus tetap nil, dapat %+v", info)
	}
	if repo.calls != 1 {
		t.Errorf("repo dipanggil %d kali, want 1 (hasil negatif harus di-cache)", repo.calls)
	}
}

func TestCekHariKhususTanggalTidakValid(t *testing.T) {
	svc, repo := newHariKhususFixture(nil)

	if info := svc.CekHariKhusus(context.Background(), "bukan-tanggal"); info != nil {
		t.Fatalf("tanggal tidak valid harus nil, dapat %+v", info)
	}
	if repo.calls != 0 {
		t.Errorf("repo dipanggil %d kali, want 0 (normalisasi gagal tidak perlu scan)", repo.calls)
	}
}

func TestCekHariKhususWaktuRusak(t *testing.T) {
	svc, _ := newHariKhususFixture([]model.HariKhususModel{
		{
			HariKhususTanggal:      "2025-06-06",
			HariKhususKeterangan:   "Data rusak",
			HariKhususStatus:       "Libur",
			HariKhususWaktuMulai:   "bukan jam",
			HariKhususWaktuSelesai: "00:00",
		},
	})

	if info := svc.CekHariKhusus(context.Background(), "2025-06-06"); info != nil {
		t.Fatalf("waktu rusak harus diperlakukan bukan hari khusus, dapat %+v", info)
	}
}

func TestCekHariKhususRepoError(t *testing.T) {
	repo := &fakeHariKhususRepo{err: context.DeadlineExceeded}
	svc := NewHariKhususService(repo, NewMemoryCacheStore())

	if info := svc.CekHariKhusus(context.Background(), "2025-02-02"); info != nil {
		t.Fatalf("error storage harus degradasi ke nil, dapat %+v", info)
	}
}
