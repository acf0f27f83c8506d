package models

import "time"

// ConsultationFee adalah biaya konsultasi dokter yang ditambahkan ke setiap tagihan.
const ConsultationFee int64 = 50000

// PrescriptionLine adalah satu baris resep. Nama dan harga obat disalin dari
// katalog saat resep dibuat, sehingga perubahan harga tidak mengubah tagihan lama.
type PrescriptionLine struct {
	MedicineID   string `json:"medicineId"`
	MedicineName string `json:"medicineName"`
	Dosage       string `json:"dosage"` // "3x1", "2x1", dst.
	Quantity     int    `json:"quantity"`
	Price        int64  `json:"price"`
}

// Subtotal returns price times quantity.
func (l PrescriptionLine) Subtotal() int64 {
	return l.Price * int64(l.Quantity)
}

// Diagnosis berisi catatan dokter dan daftar resep.
type Diagnosis struct {
	Notes         string             `json:"notes"`
	Prescriptions []PrescriptionLine `json:"prescriptions"`
}

// TotalCost returns the bill for this diagnosis, consultation fee included.
func (d Diagnosis) TotalCost() int64 {
	total := ConsultationFee
	for _, p := range d.Prescriptions {
		total += p.Subtotal()
	}
	return total
}

// Visit mewakili satu kunjungan pasien dari pendaftaran sampai pembayaran.
type Visit struct {
	ID            string         `json:"id"`
	PatientID     string         `json:"patientId"`
	DoctorName    string         `json:"doctorName"`
	Status        VisitStatus    `json:"status"`
	Complaint     string         `json:"complaint"`
	Diagnosis     *Diagnosis     `json:"diagnosis,omitempty"`
	TotalCost     int64          `json:"totalCost"`
	PaymentMethod *PaymentMethod `json:"paymentMethod,omitempty"`
	Date          time.Time      `json:"date"`
}

// QueueEntry adalah kunjungan beserta data pasiennya.
type QueueEntry struct {
	Visit
	Patient Patient `json:"patient"`
}

// RevenueByMethod memecah pendapatan per metode pembayaran.
type RevenueByMethod struct {
	Cash     int64 `json:"cash"`
	Transfer int64 `json:"transfer"`
}

// Revenue adalah ringkasan pendapatan dari kunjungan yang sudah selesai.
type Revenue struct {
	Total    int64           `json:"total"`
	Today    int64           `json:"today"`
	ByMethod RevenueByMethod `json:"byMethod"`
}

// Summary dipakai oleh dashboard pemilik.
type Summary struct {
	Patients int                 `json:"patients"`
	Visits   int                 `json:"visits"`
	Queues   map[VisitStatus]int `json:"queues"`
}

// DailyRevenue adalah pendapatan satu hari kalender.
type DailyRevenue struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Total int64  `json:"total"`
}
