package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStatus        = errors.New("invalid visit status")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// VisitStatus adalah tahap kunjungan. Urutan konstanta mengikuti urutan alur.
type VisitStatus string

const (
	StatusWaiting        VisitStatus = "waiting"
	StatusInConsultation VisitStatus = "in-consultation"
	StatusPharmacyQueue  VisitStatus = "pharmacy-queue"
	StatusPaymentPending VisitStatus = "payment-pending"
	StatusCompleted      VisitStatus = "completed"
)

// Statuses lists every declared status in lifecycle order.
var Statuses = []VisitStatus{
	StatusWaiting,
	StatusInConsultation,
	StatusPharmacyQueue,
	StatusPaymentPending,
	StatusCompleted,
}

// rank is -1 for undeclared values.
func (s VisitStatus) rank() int {
	for i, st := range Statuses {
		if st == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is a declared status.
func (s VisitStatus) Valid() bool {
	return s.rank() >= 0
}

// ParseVisitStatus validates a raw status string.
func ParseVisitStatus(raw string) (VisitStatus, error) {
	s := VisitStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// CanAdvance reports whether a mutator may move a visit from s to next.
// Every pair of declared statuses has an answer; only the moves performed by
// the store's workflow operations are allowed.
func (s VisitStatus) CanAdvance(next VisitStatus) bool {
	switch s {
	case StatusWaiting:
		switch next {
		case StatusInConsultation, StatusPharmacyQueue, StatusPaymentPending:
			return true
		}
	case StatusInConsultation:
		switch next {
		case StatusPharmacyQueue, StatusPaymentPending:
			return true
		}
	case StatusPharmacyQueue:
		return next == StatusPaymentPending
	case StatusPaymentPending:
		return next == StatusCompleted
	case StatusCompleted:
		return false
	}
	return false
}

// Before reports whether s comes earlier in the lifecycle than other.
func (s VisitStatus) Before(other VisitStatus) bool {
	return s.Valid() && other.Valid() && s.rank() < other.rank()
}

// PaymentMethod adalah metode pembayaran di kasir.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
)

// ParsePaymentMethod validates a raw payment method string.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	switch m := PaymentMethod(raw); m {
	case PaymentCash, PaymentTransfer:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, raw)
}
