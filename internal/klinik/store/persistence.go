package store

import (
	"encoding/json"
	"fmt"

	"github.com/c14220110/klinik-sentosa/internal/klinik/models"
	"github.com/c14220110/klinik-sentosa/pkg/storage/kv"
	"go.uber.org/zap"
)

// Storage keys for the two persisted collections.
const (
	PatientsKey = "clinic_patients"
	VisitsKey   = "clinic_visits"
)

// loadCollection decodes key into a slice. A missing or unparseable value
// yields fallback; only read errors from the backend are returned.
func loadCollection[T any](backend kv.Store, key string, fallback []T, log *zap.SugaredLogger) ([]T, error) {
	raw, found, err := backend.Get(key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if !found {
		log.Infow("storage key absent, using seed data", "key", key)
		return fallback, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Warnw("stored data unparseable, falling back to seed data", "key", key, "error", err)
		return fallback, nil
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func saveCollection[T any](backend kv.Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := backend.Set(key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *Store) savePatients(patients []models.Patient) error {
	return saveCollection(s.backend, PatientsKey, patients)
}

func (s *Store) saveVisits(visits []models.Visit) error {
	return saveCollection(s.backend, VisitsKey, visits)
}
