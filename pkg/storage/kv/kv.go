// Package kv menyediakan penyimpanan key-value lokal untuk state klinik.
package kv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

// ErrInvalidKey is returned for empty keys.
var ErrInvalidKey = errors.New("kv: invalid key")

// Store is a minimal key-value store. Get reports found=false for missing keys.
type Store interface {
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
}

// DBFile adalah nama file database di dalam STORAGE_DIR.
const DBFile = "klinik.db"

var bucket = []byte("klinik")

// BoltStore menyimpan semua key di satu bucket bbolt. Setiap Set adalah satu
// transaksi yang di-fsync saat commit.
type BoltStore struct {
	db *bolt.DB
}

// OpenBoltStore membuka (atau membuat) <dir>/klinik.db. File yang sedang
// dikunci proses lain gagal setelah satu detik, tidak menunggu selamanya.
func OpenBoltStore(dir string) (*BoltStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kv: create storage dir: %w", err)
	}
	db, err := bolt.Open(filepath.Join(dir, DBFile), 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("kv: open %s: %w", DBFile, err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("kv: create bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Get(key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, ErrInvalidKey
	}
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		// value hanya valid selama transaksi, jadi disalin
		if v := tx.Bucket(bucket).Get([]byte(key)); v != nil {
			out = append([]byte{}, v...)
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("kv: read %s: %w", key, err)
	}
	return out, out != nil, nil
}

// Set replaces the whole value in a single transaction.
func (s *BoltStore) Set(key string, value []byte) error {
	if key == "" {
		return ErrInvalidKey
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("kv: write %s: %w", key, err)
	}
	return nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

// MemoryStore adalah Store di memori, dipakai untuk pengujian.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemoryStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}
