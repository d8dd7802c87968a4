package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// CacheStore: key/value dengan TTL untuk cache jadwal
// (waktuMulai_<hari>, waktuSelesai_<hari>, hariKhusus_<tanggal>).
// Nilai yang gagal di-parse diperlakukan sebagai cache miss oleh pemakai.
type CacheStore interface {
	Get(ctx context.Context, key string) (string, bool)
	Put(ctx context.Context, key, value string, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

// ============================
// Redis
// ============================

type RedisCacheStore struct {
	rdb *goredis.Client
}

func NewRedisCacheStore(rdb *goredis.Client) *RedisCacheStore {
	return &RedisCacheStore{rdb: rdb}
}

func (s *RedisCacheStore) Get(ctx context.Context, key string) (string, bool) {
	val, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			log.Printf("[WARNING] Redis GET %s gagal: %v", key, err)
		}
		return "", false
	}
	return val, true
}

func (s *RedisCacheStore) Put(ctx context.Context, key, value string, ttl time.Duration) {
	if err := s.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("[WARNING] Redis SET %s gagal: %v", key, err)
	}
}

func (s *RedisCacheStore) Delete(ctx context.Context, key string) {
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		log.Printf("[WARNING] Redis DEL %s gagal: %v", key, err)
	}
}

// ============================
// In-memory (dev tanpa Redis, dan test)
// ============================

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

type MemoryCacheStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCacheStore() *MemoryCacheStore {
	return &MemoryCacheStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// NewMemoryCacheStoreWithClock dipakai test untuk mengontrol kedaluwarsa.
func NewMemoryCacheStoreWithClock(now func() time.Time) *MemoryCacheStore {
	s := NewMemoryCacheStore()
	s.now = now
	return s
}

func (s *MemoryCacheStore) Get(_ context.Context, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return "", false
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, key)
		return "", false
	}
	return e.value, true
}

func (s *MemoryCacheStore) Put(_ context.Context, key, value string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{value: value, expiresAt: s.now().Add(ttl)}
}

func (s *MemoryCacheStore) Delete(_ context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}
