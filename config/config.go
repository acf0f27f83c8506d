package config

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv           string
	Port             string
	StorageDir       string // direktori database bbolt (klinik.db)
	JWTSecret        string
	DoctorName       string
	Timezone         string // kosong = zona waktu lokal server
	PharmacyStage    bool
	DailyClosingCron string

	envErr error
}

var (
	cfg  *Config
	once sync.Once
)

func LoadConfig() *Config {
	once.Do(func() {
		err := godotenv.Load()
		cfg = FromEnv()
		cfg.envErr = err
	})
	return cfg
}

// EnvFileError mengembalikan error saat memuat .env, nil jika berhasil.
// Dicatat oleh pemanggil lewat logger aplikasi.
func (c *Config) EnvFileError() error {
	return c.envErr
}

// FromEnv membaca konfigurasi dari environment tanpa cache.
func FromEnv() *Config {
	return &Config{
		AppEnv:           os.Getenv("APP_ENV"),
		Port:             getenv("PORT", "8080"),
		StorageDir:       getenv("STORAGE_DIR", "./data"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		DoctorName:       getenv("DOCTOR_NAME", "Dr. Sentosa"),
		Timezone:         os.Getenv("APP_TIMEZONE"),
		PharmacyStage:    getbool("PHARMACY_STAGE"),
		DailyClosingCron: getenv("DAILY_CLOSING_CRON", "59 23 * * *"),
	}
}

// Location resolves Timezone, falling back to the server's local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
