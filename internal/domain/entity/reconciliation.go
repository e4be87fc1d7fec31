package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Mutabakat sonuçları.
const (
	ReconciliationAgreed    = "AGREED"     // Mutabık
	ReconciliationNotAgreed = "NOT_AGREED" // Mutabık değil
)

// Reconciliation bir müşteriyle yapılan dönem mutabakatının kalıcı anlık
// görüntüsüdür. Salt denetim kaydıdır: hesaplanan bakiyeyi ve karşı tarafın
// onayını saklar, sonraki ekstre hesaplamalarını asla etkilemez.
type Reconciliation struct {
	ID          string
	CustomerID  string
	Date        time.Time
	PeriodStart time.Time
	PeriodEnd   time.Time
	Balance     decimal.Decimal // Dönem sonu TRY bakiyesi
	Status      string
	Note        string
	CreatedAt   time.Time
}
