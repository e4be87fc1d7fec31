package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/litrosmakina/ticari-api/internal/domain"
)

// Çek durumları. PENDING başlangıç durumudur; diğer üçü terminaldir ve
// geri alınamaz.
const (
	CheckPending   = "PENDING"   // Portföyde, vadesi bekleniyor
	CheckCollected = "COLLECTED" // Tahsil edildi
	CheckBounced   = "BOUNCED"   // Karşılıksız
	CheckReturned  = "RETURNED"  // İade / ciro edildi
)

// Check vadeli bir müşteri çekini temsil eder. Tahsilat yöntemi CHECK olan
// bir Payment kaydının yan etkisi olarak oluşturulur, sonrasında bağımsız
// bir ekrandan yönetilir.
type Check struct {
	ID          string
	CheckNumber string
	BankName    string
	Drawer      string // Keşideci
	Amount      decimal.Decimal
	Currency    string
	IssueDate   time.Time
	DueDate     time.Time // Vade
	Status      string
	CustomerID  string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidCheckStatus geçerli bir çek durumu mu kontrol eder.
func ValidCheckStatus(s string) bool {
	switch s {
	case CheckPending, CheckCollected, CheckBounced, CheckReturned:
		return true
	}
	return false
}

// IsTerminal çekin terminal (geri alınamaz) bir durumda olup olmadığını döner.
func (c *Check) IsTerminal() bool {
	return c.Status != CheckPending
}

// TransitionTo çekin durumunu değiştirir. İzin verilen tek geçiş
// PENDING -> {COLLECTED, BOUNCED, RETURNED} geçişidir; terminal bir
// durumdan her geçiş denemesi ErrCheckNotPending ile reddedilir.
func (c *Check) TransitionTo(status string) error {
	if !ValidCheckStatus(status) || status == CheckPending {
		return domain.ErrInvalidInput
	}
	if c.IsTerminal() {
		return domain.ErrCheckNotPending
	}
	c.Status = status
	c.UpdatedAt = time.Now()
	return nil
}
