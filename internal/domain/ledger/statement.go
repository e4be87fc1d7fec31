package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/litrosmakina/ticari-api/internal/domain/entity"
)

// Statement bir müşterinin tam geçmiş ekstresidir. Balance son satırın
// yürüyen bakiyesine eşittir: pozitifse müşteri borçlu, negatifse alacaklıdır.
type Statement struct {
	Lines   []Entry
	Balance decimal.Decimal
}

// BuildStatement bir müşterinin tüm fatura ve tahsilatlarından kronolojik
// ekstreyi kurar. Saf fonksiyondur, yan etkisi yoktur.
//
// Algoritma: faturalar borç (+tutar x kur), tahsilatlar alacak (-tutar x kur)
// kaydına çevrilir; (tarih, oluşturulma zamanı, id) ile sıralanır; sıra
// üzerinde yürüyen bakiye hesaplanır.
func BuildStatement(docs []*entity.Document, payments []*entity.Payment) (*Statement, error) {
	entries, err := collectEntries(docs, payments)
	if err != nil {
		return nil, err
	}
	sortEntries(entries)

	running := decimal.Zero
	for i := range entries {
		running = running.Add(entries[i].BaseEffect)
		entries[i].Balance = running
	}
	return &Statement{Lines: entries, Balance: running}, nil
}

// BalanceAsOf verilen tarih itibarıyla (tarih dahil) bakiyeyi döner.
// Dönem mutabakatının tutarlılık kontrolünde kullanılır: herhangi bir D
// tarihi için dönem motorunun dönem sonu bakiyesi bu değere eşit olmalıdır.
func (s *Statement) BalanceAsOf(date time.Time) decimal.Decimal {
	balance := decimal.Zero
	for _, e := range s.Lines {
		if e.Date.After(date) {
			break
		}
		balance = e.Balance
	}
	return balance
}
