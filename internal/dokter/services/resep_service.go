package services

import (
	"fmt"
	"strings"

	"github.com/c14220110/klinik-sentosa/internal/dokter/models"
	klinik "github.com/c14220110/klinik-sentosa/internal/klinik/models"
	"github.com/c14220110/klinik-sentosa/internal/klinik/store"
)

type ResepService struct {
	Store *store.Store
}

func NewResepService(s *store.Store) *ResepService {
	return &ResepService{Store: s}
}

// SubmitDiagnosis menyusun baris resep dari katalog (nama dan harga disalin
// saat ini) lalu menyimpan diagnosis ke kunjungan. Kunjungan yang sudah
// ditagih atau lunas tidak bisa didiagnosis ulang.
func (s *ResepService) SubmitDiagnosis(visitID string, req models.DiagnosisRequest) (klinik.Visit, error) {
	v, err := s.Store.Visit(visitID)
	if err != nil {
		return klinik.Visit{}, err
	}
	if !v.Status.Before(klinik.StatusPaymentPending) {
		return klinik.Visit{}, fmt.Errorf("%w: diagnosis on %s visit", store.ErrInvalidTransition, v.Status)
	}

	lines := make([]klinik.PrescriptionLine, 0, len(req.Prescriptions))
	for _, p := range req.Prescriptions {
		line, err := s.Store.PrescriptionFromCatalog(strings.TrimSpace(p.MedicineID), strings.TrimSpace(p.Dosage), p.Quantity)
		if err != nil {
			return klinik.Visit{}, err
		}
		lines = append(lines, line)
	}
	return s.Store.SubmitDiagnosis(visitID, klinik.Diagnosis{
		Notes:         strings.TrimSpace(req.Notes),
		Prescriptions: lines,
	})
}

// SearchObat mencari obat di katalog berdasarkan nama.
func (s *ResepService) SearchObat(q string) []klinik.Medicine {
	q = strings.ToLower(strings.TrimSpace(q))
	out := []klinik.Medicine{}
	for _, m := range s.Store.Medicines() {
		if q == "" || strings.Contains(strings.ToLower(m.Name), q) {
			out = append(out, m)
		}
	}
	return out
}
