// file: internals/helpers/timeutil/timeutil.go
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockParts adalah hasil parse string jam "HH:MM[:SS]".
type ClockParts struct {
	Jam   int
	Menit int
	Detik int
}

var namaHari = []string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

// NamaHari mengembalikan nama hari Indonesia untuk index 0 (Minggu) s/d 6 (Sabtu).
func NamaHari(hariDalamMinggu int) string {
	if hariDalamMinggu < 0 || hariDalamMinggu > 6 {
		return ""
	}
	return namaHari[hariDalamMinggu]
}

// ParseClockString memecah "HH:MM" atau "HH:MM:SS"; komponen yang hilang jadi 0.
// Error bila string tanpa ':' atau komponen di luar rentang valid.
func ParseClockString(s string) (ClockParts, error) {
	var cp ClockParts
	if !strings.Contains(s, ":") {
		return cp, fmt.Errorf("format waktu harus HH:MM atau HH:MM:SS, dapat %q", s)
	}
	parts := strings.Split(strings.TrimSpace(s), ":")
	nums := make([]int, 3)
	for i := 0; i < len(parts) && i < 3; i++ {
		if parts[i] == "" {
			continue
		}
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return cp, fmt.Errorf("komponen waktu %q tidak valid: %w", parts[i], err)
		}
		nums[i] = n
	}
	cp = ClockParts{Jam: nums[0], Menit: nums[1], Detik: nums[2]}
	if cp.Jam < 0 || cp.Jam > 23 {
		return ClockParts{}, fmt.Errorf("jam %d di luar rentang 0-23", cp.Jam)
	}
	if cp.Menit < 0 || cp.Menit > 59 {
		return ClockParts{}, fmt.Errorf("menit %d di luar rentang 0-59", cp.Menit)
	}
	if cp.Detik < 0 || cp.Detik > 59 {
		return ClockParts{}, fmt.Errorf("detik %d di luar rentang 0-59", cp.Detik)
	}
	return cp, nil
}

// CombineDateAndTime menggabungkan "YYYY-MM-DD" dan "HH:MM[:SS]" jadi time.Time
// di lokasi loc. Validasi gagal → kembalikan waktu sekarang, bukan error
// (hasilnya dipakai pencatatan absen yang tidak boleh gagal keras).
func CombineDateAndTime(dateStr, timeStr string, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	now := time.Now().In(loc)

	dParts := strings.Split(strings.TrimSpace(dateStr), "-")
	if len(dParts) != 3 {
		return now
	}
	year, err1 := strconv.Atoi(dParts[0])
	month, err2 := strconv.Atoi(dParts[1])
	day, err3 := strconv.Atoi(dParts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return now
	}
	if year < 2000 || year > 2100 || month < 1 || month > 12 || day < 1 || day > 31 {
		return now
	}

	cp, err := ParseClockString(timeStr)
	if err != nil {
		return now
	}

	return time.Date(year, time.Month(month), day, cp.Jam, cp.Menit, cp.Detik, 0, loc)
}

// ComputeDuration menghitung durasi "H:MM" antara dua string jam. Bila waktu
// selesai lebih kecil dianggap lewat tengah malam (+24 jam). Error parse → "-".
func ComputeDuration(startClock, endClock string) string {
	if startClock == "" || endClock == "" {
		return "-"
	}
	start, err := ParseClockString(startClock)
	if err != nil {
		return "-"
	}
	end, err := ParseClockString(endClock)
	if err != nil {
		return "-"
	}

	totalMenitMulai := start.Jam*60 + start.Menit
	totalMenitSelesai := end.Jam*60 + end.Menit
	if totalMenitSelesai < totalMenitMulai {
		totalMenitSelesai += 24 * 60
	}

	durasiMenit := totalMenitSelesai - totalMenitMulai
	return fmt.Sprintf("%d:%02d", durasiMenit/60, durasiMenit%60)
}

// FormatJamMenit memformat jam+menit ke "HH:MM"; nilai di luar rentang → "00:00".
func FormatJamMenit(jam, menit int) string {
	if jam < 0 || jam > 23 || menit < 0 || menit > 59 {
		return "00:00"
	}
	return fmt.Sprintf("%02d:%02d", jam, menit)
}

// NormalizeTanggal menormalkan input tanggal ke "YYYY-MM-DD".
// Input tidak valid → string kosong (diperlakukan "tidak ditemukan" oleh caller).
func NormalizeTanggal(tanggal string) string {
	s := strings.TrimSpace(tanggal)
	if s == "" {
		return ""
	}
	if parts := strings.Split(s, "-"); len(parts) == 3 {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			return t.Format("2006-01-02")
		}
		return ""
	}
	// fallback: format tanggal lain yang masih bisa di-parse
	for _, layout := range []string{"02/01/2006", "2006/01/02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// FormatTanggal memformat time.Time ke "YYYY-MM-DD".
func FormatTanggal(t time.Time) string {
	return t.Format("2006-01-02")
}
