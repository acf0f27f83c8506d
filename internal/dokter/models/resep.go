package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DiagnosisRequest adalah hasil pemeriksaan dokter beserta resepnya.
// Harga obat tidak dikirim client; diambil dari katalog saat disimpan.
type DiagnosisRequest struct {
	Notes         string             `json:"notes"`
	Prescriptions []ResepItemRequest `json:"prescriptions"`
}

type ResepItemRequest struct {
	MedicineID string `json:"medicine_id"`
	Dosage     string `json:"dosage"` // "3x1", "2x1", dst.
	Quantity   int    `json:"quantity"`
}

// Validate mengembalikan pesan kesalahan pertama, atau "" jika valid.
func (r DiagnosisRequest) Validate() string {
	if utf8.RuneCountInString(strings.TrimSpace(r.Notes)) < 10 {
		return "Diagnosis harus detail"
	}
	for i, p := range r.Prescriptions {
		switch {
		case strings.TrimSpace(p.MedicineID) == "":
			return fmt.Sprintf("Resep #%d: pilih obat", i+1)
		case strings.TrimSpace(p.Dosage) == "":
			return fmt.Sprintf("Resep #%d: dosis wajib diisi", i+1)
		case p.Quantity < 1:
			return fmt.Sprintf("Resep #%d: jumlah minimal 1", i+1)
		}
	}
	return ""
}

// StatusRequest mengganti status kunjungan secara langsung.
type StatusRequest struct {
	Status string `json:"status"`
}
