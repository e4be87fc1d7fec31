package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/litrosmakina/ticari-api/internal/domain/entity"
)

// Kayıt türleri: fatura borç yazar, tahsilat alacak yazar.
const (
	EntryInvoice    = "INVOICE"
	EntryCollection = "COLLECTION"
)

// Entry ekstredeki tek bir satırdır: fatura veya tahsilatın ortak görünümü.
// BaseEffect kaydın TRY cinsinden cari bakiyeye etkisidir (fatura pozitif,
// tahsilat negatif). Balance yalnızca ekstre kurulduktan sonra doludur.
type Entry struct {
	ID          string
	Date        time.Time
	CreatedAt   time.Time
	Kind        string
	Description string
	DocID       string // Kaynak belge referansı
	Debit       decimal.Decimal // Borç, kaydın kendi para biriminde
	Credit      decimal.Decimal // Alacak, kaydın kendi para biriminde
	Currency    string
	BaseEffect  decimal.Decimal
	Balance     decimal.Decimal
}

// entryFromInvoice bir satış faturasını borç kaydına dönüştürür.
func entryFromInvoice(inv *entity.Document) (Entry, error) {
	effect, err := BaseAmount(inv.TotalAmount, inv.ExchangeRate, inv.Currency)
	if err != nil {
		return Entry{}, fmt.Errorf("fatura %s: %w", inv.ID, err)
	}
	return Entry{
		ID:          inv.ID,
		Date:        inv.Date,
		CreatedAt:   inv.CreatedAt,
		Kind:        EntryInvoice,
		Description: "Satış Faturası - " + inv.ID,
		DocID:       inv.ID,
		Debit:       inv.TotalAmount,
		Currency:    inv.Currency,
		BaseEffect:  effect,
	}, nil
}

// entryFromPayment bir tahsilatı alacak kaydına dönüştürür.
func entryFromPayment(pay *entity.Payment) (Entry, error) {
	base, err := BaseAmount(pay.Amount, pay.ExchangeRate, pay.Currency)
	if err != nil {
		return Entry{}, fmt.Errorf("tahsilat %s: %w", pay.ID, err)
	}
	desc := pay.Description
	if desc == "" {
		desc = "Tahsilat"
	}
	return Entry{
		ID:          pay.ID,
		Date:        pay.Date,
		CreatedAt:   pay.CreatedAt,
		Kind:        EntryCollection,
		Description: desc,
		DocID:       pay.DocID,
		Credit:      pay.Amount,
		Currency:    pay.Currency,
		BaseEffect:  base.Neg(),
	}, nil
}

// collectEntries fatura ve tahsilatları tek bir kayıt listesinde birleştirir.
// Belge listesinden yalnızca faturalar dikkate alınır.
func collectEntries(docs []*entity.Document, payments []*entity.Payment) ([]Entry, error) {
	entries := make([]Entry, 0, len(docs)+len(payments))
	for _, d := range docs {
		if d.Type != entity.DocTypeInvoice {
			continue
		}
		e, err := entryFromInvoice(d)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	for _, p := range payments {
		e, err := entryFromPayment(p)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// sortEntries kayıtları kronolojik sıraya koyar. Aynı güne düşen kayıtlar
// için ikincil anahtar oluşturulma zamanı, üçüncül anahtar ID'dir; böylece
// ekstre her çağrıda aynı deterministik sırayı üretir.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.Before(entries[j].CreatedAt)
		}
		return entries[i].ID < entries[j].ID
	})
}
