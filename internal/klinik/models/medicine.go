package models

// Medicine merepresentasikan satu item katalog obat.
type Medicine struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Stock int    `json:"stock"`
}
