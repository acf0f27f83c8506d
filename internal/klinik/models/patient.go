package models

import "time"

// Patient mewakili data pasien yang terdaftar di klinik.
type Patient struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	MRNumber     string    `json:"mrNumber"` // nomor rekam medis, contoh: RM-001
	Age          int       `json:"age"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// PatientInput berisi field pasien yang diisi oleh bagian pendaftaran.
// id, mrNumber dan registeredAt ditentukan oleh store.
type PatientInput struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
