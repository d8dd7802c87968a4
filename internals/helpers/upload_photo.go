// file: internals/helpers/upload_photo.go
package helper

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// PhotoStore menyimpan foto bukti absen. Core hanya bergantung pada
// interface sempit ini; implementasi default menulis ke disk lokal.
type PhotoStore interface {
	Save(filename string, data []byte) (url string, err error)
}

type LocalPhotoStore struct {
	Dir     string
	BaseURL string
}

func (s *LocalPhotoStore) Save(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder foto: %w", err)
	}
	path := filepath.Join(s.Dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan foto: %w", err)
	}
	return strings.TrimRight(s.BaseURL, "/") + "/" + filename, nil
}

// CompressPhotoDataURL menerima data URL (data:image/...;base64,xxxx),
// resize maksimal 1024px, lalu encode ke WebP quality 80.
func CompressPhotoDataURL(photoDataURL string) ([]byte, error) {
	idx := strings.Index(photoDataURL, ",")
	if idx < 0 {
		return nil, fmt.Errorf("format data URL foto tidak valid")
	}
	raw, err := base64.StdEncoding.DecodeString(photoDataURL[idx+1:])
	if err != nil {
		return nil, fmt.Errorf("gagal decode base64 foto: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("gagal decode gambar: %w", err)
	}

	resized := imaging.Fit(img, 1024, 1024, imaging.Lanczos)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, resized, &webp.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("gagal encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// Hapus karakter selain huruf, angka, titik, dash, underscore
var unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeFilename.ReplaceAllString(filename, "_")
}

// GeneratePhotoFilename: <nip>_<tipe>_<tanggal>_<waktu>-<uuid>.webp
func GeneratePhotoFilename(nip, tipeAbsen string, waktuAbsen time.Time) string {
	tanggal := waktuAbsen.Format("2006-01-02")
	waktu := waktuAbsen.Format("15-04-05")
	uuidStr := uuid.New().String()
	return sanitizeFilename(fmt.Sprintf("%s_%s_%s_%s-%s.webp", nip, tipeAbsen, tanggal, waktu, uuidStr))
}
