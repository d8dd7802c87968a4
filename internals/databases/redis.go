package database

import (
	"context"
	"log"
	"os"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Redis dipakai sebagai cache store jadwal (waktuMulai_*, waktuSelesai_*,
// hariKhusus_*). Nil saat REDIS_ADDR kosong; pemanggil wajib fallback ke
// cache in-memory.
var Redis *goredis.Client

func ConnectRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("⚠️ REDIS_ADDR kosong, cache jadwal pakai in-memory")
		return
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis tidak bisa dihubungi (%v), cache jadwal pakai in-memory", err)
		return
	}

	Redis = rdb
	log.Println("✅ Redis connected.")
}
