package response

import (
	"github.com/c14220110/klinik-sentosa/internal/klinik/models"
	"github.com/c14220110/klinik-sentosa/ws"
)

// PublishVisit mengabarkan perubahan status kunjungan ke layar antrian.
func PublishVisit(p Publisher, v models.Visit) {
	if p == nil {
		return
	}
	p.Publish(ws.EventQueueUpdate, map[string]interface{}{
		"id_kunjungan": v.ID,
		"id_pasien":    v.PatientID,
		"status":       v.Status,
		"total_biaya":  v.TotalCost,
	})
}
