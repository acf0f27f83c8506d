package store

import (
	"fmt"

	"github.com/c14220110/klinik-sentosa/internal/klinik/models"
)

// RegisterPatient creates a patient when isNew is set or no existingID is
// given, and returns its id. Otherwise existingID is returned unchanged and
// nothing is created. Fields are stored as given.
func (s *Store) RegisterPatient(in models.PatientInput, isNew bool, existingID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !isNew && existingID != "" {
		return existingID, nil
	}

	p := models.Patient{
		ID:           s.newID(),
		Name:         in.Name,
		MRNumber:     fmt.Sprintf("RM-%03d", len(s.patients)+1),
		Age:          in.Age,
		Phone:        in.Phone,
		Address:      in.Address,
		RegisteredAt: s.timestamp(),
	}
	next := make([]models.Patient, 0, len(s.patients)+1)
	next = append(append(next, s.patients...), p)
	if err := s.savePatients(next); err != nil {
		return "", err
	}
	s.patients = next

	s.log.Infow("patient registered", "patient_id", p.ID, "mr_number", p.MRNumber)
	return p.ID, nil
}

// CreateVisit appends a waiting visit for patientID. The patient reference
// is not checked here; a dangling id surfaces from Queue.
func (s *Store) CreateVisit(patientID, complaint string) (models.Visit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := models.Visit{
		ID:         s.newID(),
		PatientID:  patientID,
		DoctorName: s.doctorName,
		Status:     models.StatusWaiting,
		Complaint:  complaint,
		TotalCost:  0,
		Date:       s.timestamp(),
	}
	next := make([]models.Visit, 0, len(s.visits)+1)
	next = append(append(next, s.visits...), v)
	if err := s.saveVisits(next); err != nil {
		return models.Visit{}, err
	}
	s.visits = next

	s.log.Infow("visit created", "visit_id", v.ID, "patient_id", patientID)
	return v, nil
}

// UpdateVisitStatus overwrites the status of a visit without checking
// whether the move is legal.
func (s *Store) UpdateVisitStatus(visitID string, status models.VisitStatus) (models.Visit, error) {
	return s.mutateVisit(visitID, func(v *models.Visit) error {
		v.Status = status
		return nil
	})
}

// StartConsultation moves a waiting visit into consultation.
func (s *Store) StartConsultation(visitID string) (models.Visit, error) {
	return s.advance(visitID, models.StatusWaiting, models.StatusInConsultation)
}

// SubmitDiagnosis attaches d, sets the bill to the consultation fee plus
// every prescription line, and hands the visit to the cashier. With the
// pharmacy stage enabled, a diagnosis with prescriptions goes to the
// pharmacy queue first. Medicine stock is not touched.
func (s *Store) SubmitDiagnosis(visitID string, d models.Diagnosis) (models.Visit, error) {
	d.Prescriptions = append([]models.PrescriptionLine{}, d.Prescriptions...)
	return s.mutateVisit(visitID, func(v *models.Visit) error {
		v.Diagnosis = &d
		v.TotalCost = d.TotalCost()
		v.Status = models.StatusPaymentPending
		if s.pharmacyStage && len(d.Prescriptions) > 0 {
			v.Status = models.StatusPharmacyQueue
		}
		return nil
	})
}

// ProcessPrescription marks the pharmacy work done and forwards the visit
// to the cashier.
func (s *Store) ProcessPrescription(visitID string) (models.Visit, error) {
	return s.advance(visitID, models.StatusPharmacyQueue, models.StatusPaymentPending)
}

// ProcessPayment records the payment method and completes the visit. It does
// not require a diagnosis to exist.
func (s *Store) ProcessPayment(visitID string, method models.PaymentMethod) (models.Visit, error) {
	return s.mutateVisit(visitID, func(v *models.Visit) error {
		m := method
		v.PaymentMethod = &m
		v.Status = models.StatusCompleted
		return nil
	})
}

// PrescriptionFromCatalog builds a prescription line with the catalog name
// and price copied in at call time.
func (s *Store) PrescriptionFromCatalog(medicineID, dosage string, quantity int) (models.PrescriptionLine, error) {
	if quantity <= 0 {
		return models.PrescriptionLine{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.medicines {
		if m.ID == medicineID {
			return models.PrescriptionLine{
				MedicineID:   m.ID,
				MedicineName: m.Name,
				Dosage:       dosage,
				Quantity:     quantity,
				Price:        m.Price,
			}, nil
		}
	}
	return models.PrescriptionLine{}, fmt.Errorf("%w: %s", ErrMedicineNotFound, medicineID)
}

// advance moves a visit from one status to the next. The visit must be in
// from and the lifecycle must allow the move.
func (s *Store) advance(visitID string, from, to models.VisitStatus) (models.Visit, error) {
	return s.mutateVisit(visitID, func(v *models.Visit) error {
		if v.Status != from || !from.CanAdvance(to) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, v.Status, to)
		}
		v.Status = to
		return nil
	})
}

// mutateVisit applies fn to a copy of the visit collection, persists it and
// only then swaps it in. A failed fn or save leaves the store unchanged.
func (s *Store) mutateVisit(visitID string, fn func(v *models.Visit) error) (models.Visit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.visitIndex(visitID)
	if i < 0 {
		return models.Visit{}, fmt.Errorf("%w: %s", ErrVisitNotFound, visitID)
	}
	next := append([]models.Visit(nil), s.visits...)
	before := next[i].Status
	if err := fn(&next[i]); err != nil {
		return models.Visit{}, err
	}
	if err := s.saveVisits(next); err != nil {
		return models.Visit{}, err
	}
	s.visits = next

	s.log.Infow("visit updated", "visit_id", visitID, "from", before, "to", next[i].Status)
	return next[i], nil
}
