package store

import (
	"fmt"
	"time"

	"github.com/c14220110/klinik-sentosa/internal/klinik/models"
)

const dayLayout = "2006-01-02"

// Queue returns the visits in status, in insertion order, each joined with
// its patient. A visit whose patient cannot be resolved fails the whole
// query with ErrPatientNotFound.
func (s *Store) Queue(status models.VisitStatus) ([]models.QueueEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.QueueEntry{}
	for _, v := range s.visits {
		if v.Status != status {
			continue
		}
		p, err := s.findPatient(v.PatientID)
		if err != nil {
			return nil, fmt.Errorf("visit %s: %w", v.ID, err)
		}
		out = append(out, models.QueueEntry{Visit: v, Patient: p})
	}
	return out, nil
}

// Revenue sums completed visits. Today is the calendar day of the store's
// clock in the configured location.
func (s *Store) Revenue() models.Revenue {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var r models.Revenue
	ty, tm, td := s.now().In(s.loc).Date()
	for _, v := range s.visits {
		if v.Status != models.StatusCompleted {
			continue
		}
		r.Total += v.TotalCost
		if y, m, d := v.Date.In(s.loc).Date(); y == ty && m == tm && d == td {
			r.Today += v.TotalCost
		}
		if v.PaymentMethod == nil {
			continue
		}
		switch *v.PaymentMethod {
		case models.PaymentCash:
			r.ByMethod.Cash += v.TotalCost
		case models.PaymentTransfer:
			r.ByMethod.Transfer += v.TotalCost
		}
	}
	return r
}

// Summary counts patients, visits and visits per status.
func (s *Store) Summary() models.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := models.Summary{
		Patients: len(s.patients),
		Visits:   len(s.visits),
		Queues:   make(map[models.VisitStatus]int, len(models.Statuses)),
	}
	for _, st := range models.Statuses {
		sum.Queues[st] = 0
	}
	for _, v := range s.visits {
		sum.Queues[v.Status]++
	}
	return sum
}

// RevenueHistory returns completed-visit revenue for the last days calendar
// days, oldest first, ending with today.
func (s *Store) RevenueHistory(days int) []models.DailyRevenue {
	if days <= 0 {
		return []models.DailyRevenue{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now().In(s.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	out := make([]models.DailyRevenue, days)
	index := make(map[string]int, days)
	for i := range out {
		day := today.AddDate(0, 0, i-days+1).Format(dayLayout)
		out[i].Date = day
		index[day] = i
	}
	for _, v := range s.visits {
		if v.Status != models.StatusCompleted {
			continue
		}
		if i, ok := index[v.Date.In(s.loc).Format(dayLayout)]; ok {
			out[i].Total += v.TotalCost
		}
	}
	return out
}
