package store

import (
	"time"

	"github.com/c14220110/klinik-sentosa/internal/klinik/models"
)

// DefaultDoctorName is used when no doctor name is configured.
const DefaultDoctorName = "Dr. Sentosa"

func seedMedicines() []models.Medicine {
	return []models.Medicine{
		{ID: "1", Name: "Paracetamol 500mg", Price: 5000, Stock: 100},
		{ID: "2", Name: "Amoxicillin 500mg", Price: 12000, Stock: 50},
		{ID: "3", Name: "Vitamin C", Price: 3000, Stock: 200},
		{ID: "4", Name: "Ibuprofen 400mg", Price: 8000, Stock: 80},
		{ID: "5", Name: "OBH Sirup", Price: 25000, Stock: 30},
	}
}

// seedPatients dipakai ketika storage kosong atau rusak.
func seedPatients() []models.Patient {
	return []models.Patient{
		{
			ID:           "p1",
			Name:         "Budi Santoso",
			MRNumber:     "RM-001",
			Age:          45,
			Phone:        "08123456789",
			Address:      "Jl. Merdeka No. 1",
			RegisteredAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "p2",
			Name:         "Siti Aminah",
			MRNumber:     "RM-002",
			Age:          32,
			Phone:        "08198765432",
			Address:      "Jl. Mawar No. 12",
			RegisteredAt: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}
