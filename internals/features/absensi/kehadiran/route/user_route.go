package route

import (
	kehadiranController "absensiku_backend/internals/features/absensi/kehadiran/controller"

	"github.com/gofiber/fiber/v2"
)

/*
User routes: absen harian
Mount contoh: AbsensiUserRoutes(app.Group("/api/u/absensi"), ctl)
*/
func AbsensiUserRoutes(r fiber.Router, ctl *kehadiranController.AbsensiController) {
	r.Post("/check-in", ctl.CheckIn)   // POST /check-in
	r.Post("/check-out", ctl.CheckOut) // POST /check-out
	r.Get("/riwayat", ctl.Riwayat)     // GET  /riwayat?start=&end=&page=&per_page=
}
