package services

import (
	"fmt"

	klinik "github.com/c14220110/klinik-sentosa/internal/klinik/models"
	"github.com/c14220110/klinik-sentosa/internal/klinik/store"
)

type PendaftaranService struct {
	Store *store.Store
}

func NewPendaftaranService(s *store.Store) *PendaftaranService {
	return &PendaftaranService{Store: s}
}

// RegisterPasienWithKunjungan mendaftarkan pasien baru lalu langsung membuat
// kunjungan berstatus waiting untuknya.
func (s *PendaftaranService) RegisterPasienWithKunjungan(in klinik.PatientInput, complaint string) (klinik.Patient, klinik.Visit, error) {
	patientID, err := s.Store.RegisterPatient(in, true, "")
	if err != nil {
		return klinik.Patient{}, klinik.Visit{}, fmt.Errorf("register patient: %w", err)
	}
	patient, err := s.Store.Patient(patientID)
	if err != nil {
		return klinik.Patient{}, klinik.Visit{}, err
	}
	visit, err := s.Store.CreateVisit(patientID, complaint)
	if err != nil {
		return patient, klinik.Visit{}, fmt.Errorf("create visit: %w", err)
	}
	return patient, visit, nil
}

// CreateKunjunganPasienLama membuat kunjungan untuk pasien yang sudah terdaftar.
// Berbeda dengan store.CreateVisit, pasien harus ada.
func (s *PendaftaranService) CreateKunjunganPasienLama(patientID, complaint string) (klinik.Patient, klinik.Visit, error) {
	patient, err := s.Store.Patient(patientID)
	if err != nil {
		return klinik.Patient{}, klinik.Visit{}, err
	}
	id, err := s.Store.RegisterPatient(klinik.PatientInput{}, false, patient.ID)
	if err != nil {
		return klinik.Patient{}, klinik.Visit{}, err
	}
	visit, err := s.Store.CreateVisit(id, complaint)
	if err != nil {
		return patient, klinik.Visit{}, fmt.Errorf("create visit: %w", err)
	}
	return patient, visit, nil
}
