package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/litrosmakina/ticari-api/internal/domain/entity"
)

// ProfitFilter kâr raporunun isteğe bağlı süzgeçleri. Boş alanlar süzgeç
// uygulamaz; From/To uçları dahildir.
type ProfitFilter struct {
	From       *time.Time
	To         *time.Time
	CustomerID string
	ProductID  string
	CategoryID string
}

// ProfitLine satılan tek bir kalemin gelir/maliyet/kâr dökümüdür.
// Tüm tutarlar TRY cinsindendir.
type ProfitLine struct {
	Date        time.Time
	DocID       string
	CustomerID  string
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
	Unit        string
	Revenue     decimal.Decimal // satır tutarı x fatura kuru
	Cost        decimal.Decimal // miktar x ürünün güncel TRY maliyeti
	Profit      decimal.Decimal
}

// ProfitReport satır dökümü ve toplamlar.
type ProfitReport struct {
	Lines       []ProfitLine
	TotalRevenue decimal.Decimal
	TotalCost    decimal.Decimal
	TotalProfit  decimal.Decimal
}

// ComputeCostProfit faturalanan her kalemi ürünün güncel maliyetiyle
// eşleştirerek brüt kârı hesaplar.
//
// Bu bir anlık görüntü hesabıdır: maliyet, raporun çalıştığı andaki ürün
// maliyetidir, satış anındaki maliyet değil. Geçmiş maliyet katmanları
// tutulmadığından gerçek FIFO maliyetlendirme burada mümkün değildir;
// rapor bunu iddia etmez.
//
// Gelir fatura kuru üzerinden TRY'ye çevrilir; ürün maliyeti zaten TRY
// cinsinden tutulur (stok girişinde alış kuru ile çevrilerek yazılır).
func ComputeCostProfit(invoices []*entity.Document, itemsByDoc map[string][]*entity.LineItem, products map[string]*entity.Product, filter ProfitFilter) (*ProfitReport, error) {
	report := &ProfitReport{
		TotalRevenue: decimal.Zero,
		TotalCost:    decimal.Zero,
		TotalProfit:  decimal.Zero,
	}
	for _, inv := range invoices {
		if inv.Type != entity.DocTypeInvoice {
			continue
		}
		if filter.CustomerID != "" && inv.CustomerID != filter.CustomerID {
			continue
		}
		if filter.From != nil && inv.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && inv.Date.After(*filter.To) {
			continue
		}
		for _, item := range itemsByDoc[inv.ID] {
			if filter.ProductID != "" && item.ProductID != filter.ProductID {
				continue
			}
			product := products[item.ProductID]
			if filter.CategoryID != "" {
				if product == nil || product.CategoryID != filter.CategoryID {
					continue
				}
			}
			revenue, err := BaseAmount(item.Total, inv.ExchangeRate, inv.Currency)
			if err != nil {
				return nil, err
			}
			cost := decimal.Zero
			if product != nil {
				cost = item.Quantity.Mul(product.Cost)
			}
			line := ProfitLine{
				Date:        inv.Date,
				DocID:       inv.ID,
				CustomerID:  inv.CustomerID,
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				Unit:        item.Unit,
				Revenue:     revenue,
				Cost:        cost,
				Profit:      revenue.Sub(cost),
			}
			report.Lines = append(report.Lines, line)
			report.TotalRevenue = report.TotalRevenue.Add(line.Revenue)
			report.TotalCost = report.TotalCost.Add(line.Cost)
			report.TotalProfit = report.TotalProfit.Add(line.Profit)
		}
	}
	return report, nil
}

// RestockCost stok girişinde yeni ağırlıklı ortalama maliyeti hesaplar.
// Giriş maliyeti çağıran tarafından alış kuru ile TRY'ye çevrilmiş olmalıdır.
// YeniMaliyet = ((mevcutStok x mevcutMaliyet) + (girişMiktar x girişMaliyet)) / (mevcutStok + girişMiktar)
func RestockCost(currentStock, currentCost, inQty, inCost decimal.Decimal) decimal.Decimal {
	total := currentStock.Add(inQty)
	if total.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return currentStock.Mul(currentCost).Add(inQty.Mul(inCost)).Div(total)
}
