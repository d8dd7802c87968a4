package service

import (
	"context"

	"absensiku_backend/internals/features/absensi/schedule/model"

	"gorm.io/gorm"
)

type fakePengaturanRepo struct {
	rows  map[int]model.PengaturanWaktuModel
	err   error
	calls int
}

func (f *fakePengaturanRepo) ByHari(_ context.Context, hari int) (*model.PengaturanWaktuModel, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	row, ok := f.rows[hari]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (f *fakePengaturanRepo) All(_ context.Context) ([]model.PengaturanWaktuModel, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.PengaturanWaktuModel, 0, len(f.rows))
	for _, r := range f.rows {
		out = append(out, r)
	}
	return out, nil
}

type fakeHariKhususRepo struct {
	rows  []model.HariKhususModel
	err   error
	calls int
}

func (f *fakeHariKhususRepo) All(_ context.Context) ([]model.HariKhususModel, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func pengaturanRow(hari int, mulai, selesai string, batas, toleransi int, status string) model.PengaturanWaktuModel {
	return model.PengaturanWaktuModel{
		PengaturanWaktuHari:                hari,
		PengaturanWaktuMulai:               mulai,
		PengaturanWaktuSelesai:             selesai,
		PengaturanWaktuBatasTerlambat:      batas,
		PengaturanWaktuStatusHari:          status,
		PengaturanWaktuToleransiPulangAwal: toleransi,
	}
}
