package controller

import (
	"log"
	"time"

	"absensiku_backend/internals/configs"
	"absensiku_backend/internals/features/absensi/kehadiran/dto"
	"absensiku_backend/internals/features/absensi/kehadiran/model"
	kehadiranService "absensiku_backend/internals/features/absensi/kehadiran/service"
	scheduleService "absensiku_backend/internals/features/absensi/schedule/service"
	helper "absensiku_backend/internals/helpers"
	"absensiku_backend/internals/helpers/timeutil"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var validateAbsensi = validator.New()

type AbsensiController struct {
	DB          *gorm.DB
	Jadwal      *scheduleService.JadwalService
	Klasifikasi *kehadiranService.KlasifikasiService
	Foto        helper.PhotoStore
}

func NewAbsensiController(db *gorm.DB, jadwal *scheduleService.JadwalService, klasifikasi *kehadiranService.KlasifikasiService, foto helper.PhotoStore) *AbsensiController {
	return &AbsensiController{DB: db, Jadwal: jadwal, Klasifikasi: klasifikasi, Foto: foto}
}

func (ctrl *AbsensiController) lokasiWaktu() *time.Location {
	loc, err := time.LoadLocation(configs.AppTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// =======================
// ✅ Check-in
// =======================
func (ctrl *AbsensiController) CheckIn(c *fiber.Ctx) error {
	nip, _ := c.Locals("nip").(string)
	if nip == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "NIP tidak ditemukan di token")
	}

	var body dto.AbsenRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAbsensi.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	waktuAbsen := time.Now().In(ctrl.lokasiWaktu())
	tanggal := timeutil.FormatTanggal(waktuAbsen)
	jamMasuk := waktuAbsen.Format("15:04:05")

	// Satu check-in per NIP per tanggal.
	var existing model.AbsensiModel
	err := ctrl.DB.Where("absensi_nip = ? AND absensi_tanggal = ?", nip, tanggal).First(&existing).Error
	if err == nil && existing.AbsensiJamMasuk != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Sudah check-in hari ini")
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data absensi")
	}

	jadwal := ctrl.Jadwal.JadwalHari(c.UserContext(), waktuAbsen)
	status := ctrl.Klasifikasi.HitungStatusKehadiran(waktuAbsen, jadwal, kehadiranService.TipeAbsenMasuk)

	fotoURL := ctrl.simpanFoto(body.Foto, nip, kehadiranService.TipeAbsenMasuk, waktuAbsen)

	absensi := model.AbsensiModel{
		AbsensiNIP:        nip,
		AbsensiTanggal:    tanggal,
		AbsensiJamMasuk:   &jamMasuk,
		AbsensiStatus:     status.Status,
		AbsensiKeterangan: status.Keterangan,
		AbsensiFotoMasukURL: fotoURL,
		AbsensiKlasifikasiMasuk: datatypes.JSONMap{
			"status":        status.Status,
			"keterangan":    status.Keterangan,
			"selisih_menit": status.SelisihMenit,
			"timestamp":     status.Timestamp,
		},
	}
	if body.Lokasi != "" {
		absensi.AbsensiLokasiMasuk = &body.Lokasi
	} else if body.GPS != "" {
		absensi.AbsensiLokasiMasuk = &body.GPS
	}

	if err := ctrl.DB.Create(&absensi).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan check-in")
	}

	return helper.JsonCreated(c, "Check-in tercatat", fiber.Map{
		"absensi": dto.ToAbsensiDTO(absensi),
		"jadwal":  jadwal,
		"hasil":   status,
	})
}

// =======================
// 🏁 Check-out
// =======================
func (ctrl *AbsensiController) CheckOut(c *fiber.Ctx) error {
	nip, _ := c.Locals("nip").(string)
	if nip == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "NIP tidak ditemukan di token")
	}

	var body dto.AbsenRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAbsensi.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	waktuAbsen := time.Now().In(ctrl.lokasiWaktu())
	tanggal := timeutil.FormatTanggal(waktuAbsen)

	var absensi model.AbsensiModel
	err := ctrl.DB.Where("absensi_nip = ? AND absensi_tanggal = ?", nip, tanggal).First(&absensi).Error
	if err == gorm.ErrRecordNotFound || (err == nil && absensi.AbsensiJamMasuk == nil) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Belum check-in hari ini")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data absensi")
	}
	if absensi.AbsensiJamPulang != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Sudah check-out hari ini")
	}

	jadwal := ctrl.Jadwal.JadwalHari(c.UserContext(), waktuAbsen)
	status := ctrl.Klasifikasi.HitungStatusKehadiran(waktuAbsen, jadwal, kehadiranService.TipeAbsenPulang)

	jamPulang := waktuAbsen.Format("15:04:05")
	durasi := timeutil.ComputeDuration(*absensi.AbsensiJamMasuk, jamPulang)

	absensi.AbsensiJamPulang = &jamPulang
	absensi.AbsensiDurasi = &durasi
	absensi.AbsensiKlasifikasiPulang = datatypes.JSONMap{
		"status":        status.Status,
		"keterangan":    status.Keterangan,
		"selisih_menit": status.SelisihMenit,
		"timestamp":     status.Timestamp,
	}
	// Pulang awal/lembur menimpa keterangan hari itu.
	if status.Status != kehadiranService.StatusPulang {
		absensi.AbsensiKeterangan = status.Keterangan
	}
	if fotoURL := ctrl.simpanFoto(body.Foto, nip, kehadiranService.TipeAbsenPulang, waktuAbsen); fotoURL != nil {
		absensi.AbsensiFotoPulangURL = fotoURL
	}
	if body.Lokasi != "" {
		absensi.AbsensiLokasiPulang = &body.Lokasi
	} else if body.GPS != "" {
		absensi.AbsensiLokasiPulang = &body.GPS
	}

	if err := ctrl.DB.Save(&absensi).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan check-out")
	}

	return helper.JsonOK(c, "Check-out tercatat", fiber.Map{
		"absensi": dto.ToAbsensiDTO(absensi),
		"jadwal":  jadwal,
		"hasil":   status,
	})
}

// =======================
// 📄 Riwayat absensi (paginated)
// Query: ?start=YYYY-MM-DD&end=YYYY-MM-DD&page=1&per_page=10
// =======================
func (ctrl *AbsensiController) Riwayat(c *fiber.Ctx) error {
	nip, _ := c.Locals("nip").(string)
	if nip == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "NIP tidak ditemukan di token")
	}

	var q dto.RiwayatQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := validateAbsensi.Struct(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	paging := helper.ResolvePaging(c, 10, 100)

	tx := ctrl.DB.Model(&model.AbsensiModel{}).Where("absensi_nip = ?", nip)
	if q.Start != "" {
		tx = tx.Where("absensi_tanggal >= ?", q.Start)
	}
	if q.End != "" {
		tx = tx.Where("absensi_tanggal <= ?", q.End)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung riwayat")
	}

	var rows []model.AbsensiModel
	if err := tx.Order("absensi_tanggal DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat riwayat")
	}

	data := make([]dto.AbsensiDTO, 0, len(rows))
	for _, row := range rows {
		data = append(data, dto.ToAbsensiDTO(row))
	}

	return helper.JsonList(c, "Riwayat absensi", data, helper.BuildPagination(paging, total))
}

// simpanFoto mengompres dan menyimpan foto bukti; kegagalan foto tidak
// menggagalkan absen, hanya dicatat.
func (ctrl *AbsensiController) simpanFoto(fotoDataURL, nip, tipeAbsen string, waktuAbsen time.Time) *string {
	if fotoDataURL == "" || ctrl.Foto == nil {
		return nil
	}
	compressed, err := helper.CompressPhotoDataURL(fotoDataURL)
	if err != nil {
		log.Printf("[WARNING] Foto absen %s gagal diproses: %v", nip, err)
		return nil
	}
	filename := helper.GeneratePhotoFilename(nip, tipeAbsen, waktuAbsen)
	url, err := ctrl.Foto.Save(filename, compressed)
	if err != nil {
		log.Printf("[WARNING] Foto absen %s gagal disimpan: %v", nip, err)
		return nil
	}
	return &url
}
