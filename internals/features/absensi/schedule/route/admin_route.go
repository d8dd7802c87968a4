package route

import (
	scheduleController "absensiku_backend/internals/features/absensi/schedule/controller"

	"github.com/gofiber/fiber/v2"
)

/*
Admin routes: pengaturan jadwal kerja
Mount contoh: ScheduleAdminRoutes(app.Group("/api/a/jadwal"), ctl)
*/
func ScheduleAdminRoutes(r fiber.Router, ctl *scheduleController.ScheduleController) {
	pengaturan := r.Group("/pengaturan-waktu")
	pengaturan.Get("/", ctl.ListPengaturanWaktu)        // GET    /pengaturan-waktu
	pengaturan.Put("/:hari", ctl.UpdatePengaturanWaktu) // PUT    /pengaturan-waktu/:hari (0=Minggu .. 6=Sabtu)

	hariKhusus := r.Group("/hari-khusus")
	hariKhusus.Get("/", ctl.ListHariKhusus)         // GET    /hari-khusus
	hariKhusus.Post("/", ctl.CreateHariKhusus)      // POST   /hari-khusus
	hariKhusus.Delete("/:id", ctl.DeleteHariKhusus) // DELETE /hari-khusus/:id

	r.Post("/reset-cache", ctl.ResetJadwalCache) // POST /reset-cache
	r.Post("/seed", ctl.SeedDefaults)            // POST /seed
}

// Rute baca jadwal untuk user biasa (resolver harian).
func ScheduleUserRoutes(r fiber.Router, ctl *scheduleController.ScheduleController) {
	r.Get("/jadwal", ctl.GetJadwalHari) // GET /jadwal?tanggal=YYYY-MM-DD
}
