package controller

import (
	"strconv"
	"time"

	"absensiku_backend/internals/features/absensi/schedule/dto"
	"absensiku_backend/internals/features/absensi/schedule/model"
	"absensiku_backend/internals/features/absensi/schedule/service"
	helper "absensiku_backend/internals/helpers"
	"absensiku_backend/internals/helpers/timeutil"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateSchedule = validator.New()

type ScheduleController struct {
	DB     *gorm.DB
	Jadwal *service.JadwalService
	Seed   *service.SeedService
	Cache  service.CacheStore
}

func NewScheduleController(db *gorm.DB, jadwal *service.JadwalService, seed *service.SeedService, cache service.CacheStore) *ScheduleController {
	return &ScheduleController{DB: db, Jadwal: jadwal, Seed: seed, Cache: cache}
}

// =======================
// 📅 Jadwal untuk satu tanggal (resolver)
// GET /jadwal?tanggal=YYYY-MM-DD
// =======================
func (ctrl *ScheduleController) GetJadwalHari(c *fiber.Ctx) error {
	tanggal := time.Now()
	if s := c.Query("tanggal"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
		}
		tanggal = parsed
	}
	return helper.JsonOK(c, "Jadwal kerja", ctrl.Jadwal.JadwalHari(c.UserContext(), tanggal))
}

// =======================
// 📄 Pengaturan waktu mingguan
// =======================
func (ctrl *ScheduleController) ListPengaturanWaktu(c *fiber.Ctx) error {
	var rows []model.PengaturanWaktuModel
	if err := ctrl.DB.Order("pengaturan_waktu_hari ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat pengaturan waktu")
	}
	data := make([]dto.PengaturanWaktuDTO, 0, len(rows))
	for _, row := range rows {
		data = append(data, dto.ToPengaturanWaktuDTO(row))
	}
	return helper.JsonOK(c, "Pengaturan waktu", data)
}

func (ctrl *ScheduleController) UpdatePengaturanWaktu(c *fiber.Ctx) error {
	hari, err := strconv.Atoi(c.Params("hari"))
	if err != nil || hari < 0 || hari > 6 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Hari harus 0 (Minggu) s/d 6 (Sabtu)")
	}

	var body dto.UpdatePengaturanWaktuRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSchedule.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if _, err := timeutil.ParseClockString(body.WaktuMulai); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Waktu mulai tidak valid: "+err.Error())
	}
	if _, err := timeutil.ParseClockString(body.WaktuSelesai); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Waktu selesai tidak valid: "+err.Error())
	}

	var row model.PengaturanWaktuModel
	if err := ctrl.DB.Where("pengaturan_waktu_hari = ?", hari).First(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengaturan waktu belum di-seed untuk hari ini")
	}

	row.PengaturanWaktuMulai = body.WaktuMulai
	row.PengaturanWaktuSelesai = body.WaktuSelesai
	if body.BatasTerlambat != nil {
		row.PengaturanWaktuBatasTerlambat = *body.BatasTerlambat
	}
	if body.StatusHari != "" {
		row.PengaturanWaktuStatusHari = body.StatusHari
	}
	if body.ToleransiPulangAwal != nil {
		row.PengaturanWaktuToleransiPulangAwal = *body.ToleransiPulangAwal
	}
	if body.PersentaseKehadiran != nil {
		row.PengaturanWaktuPersentaseKehadiran = *body.PersentaseKehadiran
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengaturan waktu")
	}

	ctrl.bustWeeklyCache(c, hari)
	return helper.JsonUpdated(c, "Pengaturan waktu diperbarui", dto.ToPengaturanWaktuDTO(row))
}

// =======================
// 🎌 Hari khusus
// =======================
func (ctrl *ScheduleController) ListHariKhusus(c *fiber.Ctx) error {
	var rows []model.HariKhususModel
	if err := ctrl.DB.Order("hari_khusus_tanggal ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat hari khusus")
	}
	data := make([]dto.HariKhususDTO, 0, len(rows))
	for _, row := range rows {
		data = append(data, dto.ToHariKhususDTO(row))
	}
	return helper.JsonOK(c, "Hari khusus", data)
}

func (ctrl *ScheduleController) CreateHariKhusus(c *fiber.Ctx) error {
	var body dto.CreateHariKhususRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSchedule.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	tanggal := timeutil.NormalizeTanggal(body.Tanggal)
	if tanggal == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}
	if _, err := timeutil.ParseClockString(body.WaktuMulai); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Waktu mulai tidak valid: "+err.Error())
	}
	if _, err := timeutil.ParseClockString(body.WaktuSelesai); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Waktu selesai tidak valid: "+err.Error())
	}

	row := model.HariKhususModel{
		HariKhususTanggal:             tanggal,
		HariKhususKeterangan:          body.Keterangan,
		HariKhususStatus:              body.Status,
		HariKhususWaktuMulai:          body.WaktuMulai,
		HariKhususWaktuSelesai:        body.WaktuSelesai,
		HariKhususBatasTerlambat:      body.BatasTerlambat,
		HariKhususToleransiPulangAwal: body.ToleransiPulangAwal,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Gagal menyimpan hari khusus (tanggal sudah ada?)")
	}

	ctrl.bustHariKhususCache(c, tanggal)
	return helper.JsonCreated(c, "Hari khusus dibuat", dto.ToHariKhususDTO(row))
}

func (ctrl *ScheduleController) DeleteHariKhusus(c *fiber.Ctx) error {
	id := c.Params("id")
	var row model.HariKhususModel
	if err := ctrl.DB.Where("hari_khusus_id = ?", id).First(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Hari khusus tidak ditemukan")
	}
	if err := ctrl.DB.Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus hari khusus")
	}

	ctrl.bustHariKhususCache(c, row.HariKhususTanggal)
	return helper.JsonDeleted(c, "Hari khusus dihapus", dto.ToHariKhususDTO(row))
}

// =======================
// ♻️ Cache & seeding
// =======================
func (ctrl *ScheduleController) ResetJadwalCache(c *fiber.Ctx) error {
	ctrl.Jadwal.ResetCache()
	return helper.JsonOK(c, "Cache jadwal direset", nil)
}

func (ctrl *ScheduleController) SeedDefaults(c *fiber.Ctx) error {
	if err := ctrl.Seed.EnsureDefaults(c.UserContext()); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pengaturan default: "+err.Error())
	}
	ctrl.Jadwal.ResetCache()
	return helper.JsonOK(c, "Pengaturan default siap", nil)
}

func (ctrl *ScheduleController) bustWeeklyCache(c *fiber.Ctx, hari int) {
	ctx := c.UserContext()
	ctrl.Cache.Delete(ctx, "waktuMulai_"+strconv.Itoa(hari))
	ctrl.Cache.Delete(ctx, "waktuSelesai_"+strconv.Itoa(hari))
	ctrl.Jadwal.ResetCache()
}

func (ctrl *ScheduleController) bustHariKhususCache(c *fiber.Ctx, tanggal string) {
	ctrl.Cache.Delete(c.UserContext(), "hariKhusus_"+tanggal)
	ctrl.Jadwal.ResetCache()
}
