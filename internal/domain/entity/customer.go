package entity

import "time"

// Customer bir cari hesap (müşteri) kaydını temsil eder.
// Faturaları, tahsilatları, çekleri ve mutabakatları bu kayda bağlıdır;
// bağlı kayıt varken silinemez.
type Customer struct {
	ID            string
	Name          string // Ticari ünvan
	Email         string
	TaxNo         string // Vergi no veya TCKN
	TaxOffice     string // Vergi dairesi
	Address       string
	Phone         string
	City          string
	District      string
	PostCode      string
	IsLegalEntity bool // Tüzel kişi mi (şirket) yoksa şahıs mı
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
