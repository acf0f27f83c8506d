// Package store holds the clinic state: session role, patients, visits and
// the medicine catalog. Every mutation is written back to the key-value
// backend before it becomes visible to queries.
package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/c14220110/klinik-sentosa/internal/klinik/models"
	"github.com/c14220110/klinik-sentosa/pkg/storage/kv"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrVisitNotFound     = errors.New("visit not found")
	ErrPatientNotFound   = errors.New("patient not found")
	ErrMedicineNotFound  = errors.New("medicine not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
)

type Store struct {
	mu sync.RWMutex

	backend       kv.Store
	log           *zap.SugaredLogger
	now           func() time.Time
	loc           *time.Location
	newID         func() string
	doctorName    string
	pharmacyStage bool

	role      models.Role
	patients  []models.Patient
	visits    []models.Visit
	medicines []models.Medicine
}

type Option func(*Store)

// WithLogger sets the logger used for load fallbacks and mutations.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Store) { s.log = l }
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLocation sets the zone used for the "today" revenue bucket.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) { s.loc = loc }
}

func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func WithDoctorName(name string) Option {
	return func(s *Store) { s.doctorName = name }
}

// WithPharmacyStage routes diagnoses with prescriptions through the
// pharmacy queue before payment.
func WithPharmacyStage(enabled bool) Option {
	return func(s *Store) { s.pharmacyStage = enabled }
}

// New builds a Store and loads patients and visits from backend, falling
// back to the seed data when a key is absent or unparseable.
func New(backend kv.Store, opts ...Option) (*Store, error) {
	s := &Store{
		backend:    backend,
		log:        zap.NewNop().Sugar(),
		now:        time.Now,
		loc:        time.Local,
		newID:      uuid.NewString,
		doctorName: DefaultDoctorName,
		medicines:  seedMedicines(),
	}
	for _, opt := range opts {
		opt(s)
	}

	var err error
	if s.patients, err = loadCollection(backend, PatientsKey, seedPatients(), s.log); err != nil {
		return nil, err
	}
	if s.visits, err = loadCollection(backend, VisitsKey, []models.Visit{}, s.log); err != nil {
		return nil, err
	}
	s.log.Infow("clinic store loaded", "patients", len(s.patients), "visits", len(s.visits))
	return s, nil
}

// Login sets the session role. The role is self-asserted.
func (s *Store) Login(role models.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.role = role
}

func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.role = ""
}

// CurrentRole returns the session role and whether one is set.
func (s *Store) CurrentRole() (models.Role, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role, s.role != ""
}

func (s *Store) Patients() []models.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Patient(nil), s.patients...)
}

func (s *Store) Visits() []models.Visit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Visit(nil), s.visits...)
}

func (s *Store) Medicines() []models.Medicine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Medicine(nil), s.medicines...)
}

func (s *Store) Patient(id string) (models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findPatient(id)
}

func (s *Store) Visit(id string) (models.Visit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.visitIndex(id)
	if i < 0 {
		return models.Visit{}, fmt.Errorf("%w: %s", ErrVisitNotFound, id)
	}
	return s.visits[i], nil
}

// SearchPatients matches term against name or medical-record number,
// case-insensitively. An empty term returns every patient.
func (s *Store) SearchPatients(term string) []models.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	term = strings.ToLower(strings.TrimSpace(term))
	out := []models.Patient{}
	for _, p := range s.patients {
		if term == "" ||
			strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.MRNumber), term) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) findPatient(id string) (models.Patient, error) {
	for _, p := range s.patients {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Patient{}, fmt.Errorf("%w: %s", ErrPatientNotFound, id)
}

func (s *Store) visitIndex(id string) int {
	for i, v := range s.visits {
		if v.ID == id {
			return i
		}
	}
	return -1
}

// timestamp drops the monotonic reading so persisted and reloaded values compare equal.
func (s *Store) timestamp() time.Time {
	return s.now().Round(0)
}
