package models

import (
	"strings"
	"unicode/utf8"

	klinik "github.com/c14220110/klinik-sentosa/internal/klinik/models"
)

// NewPasienRequest adalah payload pendaftaran pasien baru sekaligus kunjungannya.
type NewPasienRequest struct {
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Complaint string `json:"complaint"`
}

// Validate mengembalikan pesan kesalahan pertama, atau "" jika valid.
func (r NewPasienRequest) Validate() string {
	switch {
	case runeLen(r.Name) < 2:
		return "Nama wajib diisi"
	case r.Age < 0:
		return "Umur tidak valid"
	case runeLen(r.Phone) < 10:
		return "Nomor HP minimal 10 digit"
	case runeLen(r.Address) < 5:
		return "Alamat wajib diisi"
	case runeLen(r.Complaint) < 5:
		return "Keluhan wajib diisi"
	}
	return ""
}

func (r NewPasienRequest) PatientInput() klinik.PatientInput {
	return klinik.PatientInput{
		Name:    strings.TrimSpace(r.Name),
		Age:     r.Age,
		Phone:   strings.TrimSpace(r.Phone),
		Address: strings.TrimSpace(r.Address),
	}
}

// KunjunganRequest mendaftarkan kunjungan untuk pasien lama.
type KunjunganRequest struct {
	PatientID string `json:"patient_id"`
	Complaint string `json:"complaint"`
}

func (r KunjunganRequest) Validate() string {
	switch {
	case strings.TrimSpace(r.PatientID) == "":
		return "Pilih pasien"
	case runeLen(r.Complaint) < 5:
		return "Keluhan wajib diisi"
	}
	return ""
}

// LoginRequest berisi peran yang dipilih di halaman login.
type LoginRequest struct {
	Role string `json:"role"`
}

func runeLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}
