package models

// PembayaranRequest berisi metode pembayaran: "cash" atau "transfer".
type PembayaranRequest struct {
	Method string `json:"method"`
}
