package models

import (
	"time"

	klinik "github.com/c14220110/klinik-sentosa/internal/klinik/models"
)

// DashboardData is the aggregated data for the owner dashboard.
type DashboardData struct {
	Pendapatan       klinik.Revenue        `json:"pendapatan"`
	PendapatanHarian []klinik.DailyRevenue `json:"pendapatan_harian"`
	Ringkasan        klinik.Summary        `json:"ringkasan"`
}

// KunjunganRow adalah satu baris tabel kunjungan terbaru.
type KunjunganRow struct {
	ID          string                `json:"id"`
	NamaPasien  string                `json:"nama_pasien"`
	NoRM        string                `json:"no_rm"`
	Status      klinik.VisitStatus    `json:"status"`
	TotalBiaya  int64                 `json:"total_biaya"`
	MetodeBayar *klinik.PaymentMethod `json:"metode_bayar"`
	Tanggal     time.Time             `json:"tanggal"`
}
