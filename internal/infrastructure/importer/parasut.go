// Package importer Paraşüt'ten dışa aktarılan CSV dosyalarını okur.
//
// Paraşüt satış raporu gruplu dışa aktarır: aynı müşterinin ardışık
// satırlarında müşteri kolonları boş bırakılır. Okuma sırasında bu kolonlar
// bir önceki dolu değerle doldurulur (fill-down). Tutarlar Türkçe sayı
// biçimindedir ("1.450,50"), tarihler uzun Türkçe biçimde gelebilir
// ("05 Aralık 2025").
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/litrosmakina/ticari-api/internal/domain"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
)

// InvoiceRow CSV'den okunan tek satış satırı.
type InvoiceRow struct {
	CustomerName string
	TaxNo        string
	DocumentNo   string
	Date         time.Time
	Total        decimal.Decimal
	Currency     string
	ExchangeRate decimal.Decimal
}

// Beklenen kolon başlıkları (Paraşüt satış raporu).
var expectedHeader = []string{"Müşteri", "VKN", "Fatura No", "Tarih", "Tutar", "Para Birimi", "Kur"}

// ParseInvoices CSV akışını okur ve satış satırlarını döner.
func ParseInvoices(r io.Reader) ([]InvoiceRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(expectedHeader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("csv başlığı okunamadı: %w", err)
	}
	for i, want := range expectedHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return nil, fmt.Errorf("csv başlığı beklenen biçimde değil: %q sütununda %q var: %w", want, header[i], domain.ErrInvalidInput)
		}
	}

	var rows []InvoiceRow
	var lastCustomer, lastTaxNo string
	lineNo := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		lineNo++
		if err != nil {
			return nil, fmt.Errorf("csv satır %d: %w", lineNo, err)
		}

		customer := strings.TrimSpace(record[0])
		taxNo := strings.TrimSpace(record[1])
		// Fill-down: gruplu dışa aktarımda boş müşteri kolonları önceki
		// satırdan devralınır.
		if customer == "" {
			customer = lastCustomer
			if taxNo == "" {
				taxNo = lastTaxNo
			}
		}
		if customer == "" {
			return nil, fmt.Errorf("csv satır %d: müşteri adı yok: %w", lineNo, domain.ErrInvalidInput)
		}
		lastCustomer, lastTaxNo = customer, taxNo

		date, err := ParseTurkishDate(record[3])
		if err != nil {
			return nil, fmt.Errorf("csv satır %d: %w", lineNo, err)
		}
		total, err := ParseTurkishMoney(record[4])
		if err != nil {
			return nil, fmt.Errorf("csv satır %d: %w", lineNo, err)
		}
		currency := normalizeCurrency(record[5])
		if !entity.ValidCurrency(currency) {
			return nil, fmt.Errorf("csv satır %d: tanınmayan para birimi %q: %w", lineNo, record[5], domain.ErrInvalidInput)
		}

		// Kur kolonu boşsa varsayılan yok; TRY dışı satır aşağıdaki
		// denetimde durur.
		rate := decimal.Zero
		if rateStr := strings.TrimSpace(record[6]); rateStr != "" {
			rate, err = ParseTurkishMoney(rateStr)
			if err != nil {
				return nil, fmt.Errorf("csv satır %d: kur: %w", lineNo, err)
			}
		} else if currency == entity.CurrencyTRY {
			rate = decimal.NewFromInt(1)
		}
		if currency != entity.CurrencyTRY && !rate.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("csv satır %d: döviz satırında kur yok: %w", lineNo, domain.ErrMissingExchangeRate)
		}

		rows = append(rows, InvoiceRow{
			CustomerName: customer,
			TaxNo:        taxNo,
			DocumentNo:   strings.TrimSpace(record[2]),
			Date:         date,
			Total:        total,
			Currency:     currency,
			ExchangeRate: rate,
		})
	}
	return rows, nil
}

// ParseTurkishMoney Türkçe sayı biçimini çözer: "1.450,50" -> 1450.50.
// Düz biçim ("1450.50") da kabul edilir.
func ParseTurkishMoney(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "₺")
	s = strings.TrimSpace(strings.TrimSuffix(s, "TL"))
	if s == "" {
		return decimal.Zero, fmt.Errorf("boş tutar: %w", domain.ErrInvalidInput)
	}
	if strings.Contains(s, ",") {
		// Türkçe biçim: binlik nokta, ondalık virgül.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("tutar çözümlenemedi %q: %w", s, domain.ErrInvalidInput)
	}
	return d, nil
}

var turkishMonths = map[string]time.Month{
	"ocak": time.January, "şubat": time.February, "mart": time.March,
	"nisan": time.April, "mayıs": time.May, "haziran": time.June,
	"temmuz": time.July, "ağustos": time.August, "eylül": time.September,
	"ekim": time.October, "kasım": time.November, "aralık": time.December,
}

// ParseTurkishDate "05 Aralık 2025", "05.12.2025" ve "2025-12-05"
// biçimlerini çözer.
func ParseTurkishDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02", "02.01.2006", "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	parts := strings.Fields(s)
	if len(parts) == 3 {
		month, ok := turkishMonths[strings.ToLower(parts[1])]
		if ok {
			if t, err := time.Parse("2 2006", parts[0]+" "+parts[2]); err == nil {
				return time.Date(t.Year(), month, t.Day(), 0, 0, 0, 0, time.UTC), nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("tarih çözümlenemedi %q: %w", s, domain.ErrInvalidInput)
}

// normalizeCurrency Paraşüt'ün para birimi adlarını ISO koda çevirir.
func normalizeCurrency(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TL", "TRY", "₺", "":
		return entity.CurrencyTRY
	case "USD", "$", "DOLAR":
		return entity.CurrencyUSD
	case "EUR", "€", "EURO":
		return entity.CurrencyEUR
	default:
		return strings.ToUpper(strings.TrimSpace(s))
	}
}
