package services

import (
	"testing"

	"github.com/c14220110/klinik-sentosa/internal/dokter/models"
	klinik "github.com/c14220110/klinik-sentosa/internal/klinik/models"
	"github.com/c14220110/klinik-sentosa/internal/klinik/store"
	"github.com/c14220110/klinik-sentosa/pkg/storage/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitDiagnosisCopiesCatalogPrice(t *testing.T) {
	s, err := store.New(kv.NewMemoryStore())
	require.NoError(t, err)
	v, err := s.CreateVisit("p1", "demam")
	require.NoError(t, err)

	svc := NewResepService(s)
	got, err := svc.SubmitDiagnosis(v.ID, models.DiagnosisRequest{
		Notes: " Febris hari kedua ",
		Prescriptions: []models.ResepItemRequest{
			{MedicineID: "2", Dosage: "3x1", Quantity: 2},
			{MedicineID: "3", Dosage: "1x1", Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, klinik.StatusPaymentPending, got.Status)
	assert.Equal(t, int64(50000+24000+3000), got.TotalCost)
	require.NotNil(t, got.Diagnosis)
	assert.Equal(t, "Febris hari kedua", got.Diagnosis.Notes)
	assert.Equal(t, "Amoxicillin 500mg", got.Diagnosis.Prescriptions[0].MedicineName)
}

func TestSubmitDiagnosisUnknownMedicineLeavesVisit(t *testing.T) {
	s, err := store.New(kv.NewMemoryStore())
	require.NoError(t, err)
	v, err := s.CreateVisit("p1", "demam")
	require.NoError(t, err)

	_, err = NewResepService(s).SubmitDiagnosis(v.ID, models.DiagnosisRequest{
		Notes:         "Febris hari kedua",
		Prescriptions: []models.ResepItemRequest{{MedicineID: "99", Dosage: "1x1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, store.ErrMedicineNotFound)

	after, err := s.Visit(v.ID)
	require.NoError(t, err)
	assert.Equal(t, klinik.StatusWaiting, after.Status)
	assert.Nil(t, after.Diagnosis)
}

func TestSearchObat(t *testing.T) {
	s, err := store.New(kv.NewMemoryStore())
	require.NoError(t, err)
	svc := NewResepService(s)

	assert.Len(t, svc.SearchObat(""), 5)
	got := svc.SearchObat("VITAMIN")
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestSubmitDiagnosisRejectsBilledVisit(t *testing.T) {
	s, err := store.New(kv.NewMemoryStore())
	require.NoError(t, err)
	v, err := s.CreateVisit("p1", "demam")
	require.NoError(t, err)
	svc := NewResepService(s)

	req := models.DiagnosisRequest{Notes: "Febris hari kedua"}
	_, err = svc.SubmitDiagnosis(v.ID, req)
	require.NoError(t, err)
	_, err = s.ProcessPayment(v.ID, klinik.PaymentCash)
	require.NoError(t, err)

	_, err = svc.SubmitDiagnosis(v.ID, req)
	assert.ErrorIs(t, err, store.ErrInvalidTransition)

	after, err := s.Visit(v.ID)
	require.NoError(t, err)
	assert.Equal(t, klinik.StatusCompleted, after.Status)
	require.NotNil(t, after.PaymentMethod)
	assert.Equal(t, int64(50000), s.Revenue().Total)
}

func TestSubmitDiagnosisAllowedFromPharmacyQueue(t *testing.T) {
	s, err := store.New(kv.NewMemoryStore(), store.WithPharmacyStage(true))
	require.NoError(t, err)
	v, err := s.CreateVisit("p1", "demam")
	require.NoError(t, err)
	svc := NewResepService(s)

	req := models.DiagnosisRequest{
		Notes:         "Febris hari kedua",
		Prescriptions: []models.ResepItemRequest{{MedicineID: "1", Dosage: "3x1", Quantity: 1}},
	}
	got, err := svc.SubmitDiagnosis(v.ID, req)
	require.NoError(t, err)
	require.Equal(t, klinik.StatusPharmacyQueue, got.Status)

	// dokter masih boleh merevisi resep sebelum ditagih
	req.Prescriptions[0].Quantity = 2
	got, err = svc.SubmitDiagnosis(v.ID, req)
	require.NoError(t, err)
	assert.Equal(t, int64(60000), got.TotalCost)
}
