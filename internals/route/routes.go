package routes

import (
	"log"

	"absensiku_backend/internals/configs"
	database "absensiku_backend/internals/databases"
	kehadiranController "absensiku_backend/internals/features/absensi/kehadiran/controller"
	kehadiranRoute "absensiku_backend/internals/features/absensi/kehadiran/route"
	kehadiranService "absensiku_backend/internals/features/absensi/kehadiran/service"
	scheduleController "absensiku_backend/internals/features/absensi/schedule/controller"
	scheduleRoute "absensiku_backend/internals/features/absensi/schedule/route"
	scheduleService "absensiku_backend/internals/features/absensi/schedule/service"
	helper "absensiku_backend/internals/helpers"
	"absensiku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== WIRING SERVICE =====================
	var cache scheduleService.CacheStore
	if database.Redis != nil {
		log.Println("[INFO] Cache jadwal: Redis")
		cache = scheduleService.NewRedisCacheStore(database.Redis)
	} else {
		log.Println("[INFO] Cache jadwal: in-memory (REDIS_ADDR tidak di-set)")
		cache = scheduleService.NewMemoryCacheStore()
	}

	hariKhususSvc := scheduleService.NewHariKhususService(scheduleService.NewHariKhususRepo(db), cache)
	pengaturanSvc := scheduleService.NewPengaturanWaktuService(scheduleService.NewPengaturanWaktuRepo(db), hariKhususSvc, cache)
	jadwalSvc := scheduleService.NewJadwalService(pengaturanSvc, hariKhususSvc)
	klasifikasiSvc := kehadiranService.NewKlasifikasiService()
	seedSvc := scheduleService.NewSeedService(db)

	fotoStore := &helper.LocalPhotoStore{
		Dir:     configs.PhotoDir,
		BaseURL: configs.GetEnvDefault("PHOTO_BASE_URL", "/uploads/foto-absen"),
	}

	scheduleCtl := scheduleController.NewScheduleController(db, jadwalSvc, seedSvc, cache)
	absensiCtl := kehadiranController.NewAbsensiController(db, jadwalSvc, klasifikasiSvc, fotoStore)

	// ===================== GROUPS =====================
	log.Println("[INFO] Setting up USER group (/api/u)...")
	user := app.Group("/api/u", middlewares.AuthMiddleware())
	kehadiranRoute.AbsensiUserRoutes(user.Group("/absensi"), absensiCtl)
	scheduleRoute.ScheduleUserRoutes(user, scheduleCtl)

	log.Println("[INFO] Setting up ADMIN group (/api/a)...")
	admin := app.Group("/api/a", middlewares.AuthMiddleware(), middlewares.AdminOnly())
	scheduleRoute.ScheduleAdminRoutes(admin.Group("/jadwal"), scheduleCtl)

	// Foto bukti absen tersimpan lokal; expose read-only.
	app.Static("/uploads/foto-absen", configs.PhotoDir)
}
