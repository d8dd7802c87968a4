package service

import (
	"context"

	"absensiku_backend/internals/features/absensi/schedule/model"

	"gorm.io/gorm"
)

// Repository sempit di batas storage: pengetahuan "kolom X artinya apa"
// berhenti di model gorm, service hanya melihat record bernama.

type PengaturanWaktuRepo interface {
	ByHari(ctx context.Context, hari int) (*model.PengaturanWaktuModel, error)
	All(ctx context.Context) ([]model.PengaturanWaktuModel, error)
}

type HariKhususRepo interface {
	All(ctx context.Context) ([]model.HariKhususModel, error)
}

// ============================
// Implementasi gorm
// ============================

type gormPengaturanWaktuRepo struct {
	db *gorm.DB
}

func NewPengaturanWaktuRepo(db *gorm.DB) PengaturanWaktuRepo {
	return &gormPengaturanWaktuRepo{db: db}
}

func (r *gormPengaturanWaktuRepo) ByHari(ctx context.Context, hari int) (*model.PengaturanWaktuModel, error) {
	var row model.PengaturanWaktuModel
	if err := r.db.WithContext(ctx).
		Where("pengaturan_waktu_hari = ?", hari).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *gormPengaturanWaktuRepo) All(ctx context.Context) ([]model.PengaturanWaktuModel, error) {
	var rows []model.PengaturanWaktuModel
	if err := r.db.WithContext(ctx).
		Order("pengaturan_waktu_hari ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

type gormHariKhususRepo struct {
	db *gorm.DB
}

func NewHariKhususRepo(db *gorm.DB) HariKhususRepo {
	return &gormHariKhususRepo{db: db}
}

func (r *gormHariKhususRepo) All(ctx context.Context) ([]model.HariKhususModel, error) {
	var rows []model.HariKhususModel
	if err := r.db.WithContext(ctx).
		Order("hari_khusus_tanggal ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
