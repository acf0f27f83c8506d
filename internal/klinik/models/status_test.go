package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAdvanceIsForwardOnly(t *testing.T) {
	for _, from := range Statuses {
		for _, to := range Statuses {
			if from.CanAdvance(to) {
				assert.True(t, from.Before(to), "%s -> %s moves backward", from, to)
			}
		}
	}
}

func TestCanAdvanceTable(t *testing.T) {
	tests := []struct {
		from, to VisitStatus
		want     bool
	}{
		{StatusWaiting, StatusInConsultation, true},
		{StatusWaiting, StatusPaymentPending, true},
		{StatusWaiting, StatusCompleted, false},
		{StatusInConsultation, StatusPaymentPending, true},
		{StatusInConsultation, StatusPharmacyQueue, true},
		{StatusPharmacyQueue, StatusPaymentPending, true},
		{StatusPharmacyQueue, StatusCompleted, false},
		{StatusPaymentPending, StatusCompleted, true},
		{StatusCompleted, StatusWaiting, false},
		{VisitStatus("cancelled"), StatusWaiting, false},
		{StatusWaiting, VisitStatus("cancelled"), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanAdvance(tt.to))
		})
	}
}

func TestParseVisitStatus(t *testing.T) {
	s, err := ParseVisitStatus("payment-pending")
	assert.NoError(t, err)
	assert.Equal(t, StatusPaymentPending, s)

	_, err = ParseVisitStatus("done")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestParsePaymentMethod(t *testing.T) {
	m, err := ParsePaymentMethod("transfer")
	assert.NoError(t, err)
	assert.Equal(t, PaymentTransfer, m)

	_, err = ParsePaymentMethod("qris")
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
}

func TestParseRoleAndMenu(t *testing.T) {
	r, err := ParseRole("doctor")
	assert.NoError(t, err)
	assert.Equal(t, "/api/dokter/antrian", r.Menu()[0].Href)

	_, err = ParseRole("owner")
	assert.ErrorIs(t, err, ErrInvalidRole)
	assert.Empty(t, Role("").Menu())
}

func TestDiagnosisTotalCost(t *testing.T) {
	d := Diagnosis{Prescriptions: []PrescriptionLine{
		{Price: 5000, Quantity: 2},
		{Price: 3000, Quantity: 3},
	}}
	assert.Equal(t, int64(50000+10000+9000), d.TotalCost())
	assert.Equal(t, ConsultationFee, Diagnosis{}.TotalCost())
}
