package models

import (
	"errors"
	"fmt"
)

var ErrInvalidRole = errors.New("invalid role")

// Role adalah peran yang dipilih saat login. Tidak ada pemeriksaan kredensial.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDoctor       Role = "doctor"
	RoleReceptionist Role = "receptionist"
	RoleCashier      Role = "cashier"
	RolePharmacist   Role = "pharmacist"
)

// ParseRole validates a raw role string.
func ParseRole(raw string) (Role, error) {
	switch r := Role(raw); r {
	case RoleAdmin, RoleDoctor, RoleReceptionist, RoleCashier, RolePharmacist:
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, raw)
}

// MenuItem adalah satu entri navigasi untuk suatu peran.
type MenuItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

var menus = map[Role][]MenuItem{
	RoleReceptionist: {{Label: "Pendaftaran", Href: "/api/pasien"}},
	RoleDoctor:       {{Label: "Pemeriksaan", Href: "/api/dokter/antrian"}},
	RolePharmacist:   {{Label: "Apotek", Href: "/api/apotek/antrian"}},
	RoleCashier:      {{Label: "Pembayaran", Href: "/api/kasir/antrian"}},
	RoleAdmin:        {{Label: "Dashboard", Href: "/api/dashboard"}},
}

// Menu returns the navigation entries shown to r.
func (r Role) Menu() []MenuItem {
	return menus[r]
}
