package entity

import "time"

// Kullanıcı rolleri.
const (
	RoleAdmin      = "ADMIN"
	RoleAccountant = "ACCOUNTANT"
	RoleSales      = "SALES"
	RoleStock      = "STOCK"
)

// User uygulama kullanıcısı.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CompanyInfo firma ayarları (tek kayıt).
type CompanyInfo struct {
	ID        string
	Name      string // Ticari ünvan
	TaxNo     string
	TaxOffice string
	MersisNo  string
	Address   string
	Phone     string
	Email     string
	Website   string
	LogoURL   string
	UpdatedAt time.Time
}
