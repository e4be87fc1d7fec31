package dto

import "github.com/shopspring/decimal"

// ProfitReportRequest kâr raporu süzgeçleri (tüm alanlar isteğe bağlı).
type ProfitReportRequest struct {
	From       string `query:"from"`
	To         string `query:"to"`
	CustomerID string `query:"customer_id"`
	ProductID  string `query:"product_id"`
	CategoryID string `query:"category_id"`
}

// ProfitLineResponse satılan kalemin kâr dökümü (TRY).
type ProfitLineResponse struct {
	Date        string          `json:"date"`
	DocID       string          `json:"doc_id"`
	CustomerID  string          `json:"customer_id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit,omitempty"`
	Revenue     decimal.Decimal `json:"revenue"`
	Cost        decimal.Decimal `json:"cost"`
	Profit      decimal.Decimal `json:"profit"`
}

// ProfitReportResponse kâr raporu. Maliyet, raporun çalıştığı andaki ürün
// maliyetidir (anlık görüntü); satış anı maliyeti değildir.
type ProfitReportResponse struct {
	Lines        []ProfitLineResponse `json:"lines"`
	TotalRevenue decimal.Decimal      `json:"total_revenue"`
	TotalCost    decimal.Decimal      `json:"total_cost"`
	TotalProfit  decimal.Decimal      `json:"total_profit"`
}

// CustomerBalanceResponse cari bakiye raporu satırı.
type CustomerBalanceResponse struct {
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	City         string          `json:"city,omitempty"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	Balance      decimal.Decimal `json:"balance"`
}

// StockValuationLine stok değer raporu satırı.
type StockValuationLine struct {
	ProductID  string          `json:"product_id"`
	Name       string          `json:"name"`
	SKU        string          `json:"sku"`
	CategoryID string          `json:"category_id,omitempty"`
	Stock      decimal.Decimal `json:"stock"`
	Cost       decimal.Decimal `json:"cost"`
	TotalValue decimal.Decimal `json:"total_value"` // stok x maliyet (TRY)
}

// DashboardResponse özet göstergeler.
type DashboardResponse struct {
	TotalRevenue       decimal.Decimal `json:"total_revenue"` // Faturalanan toplam (TRY)
	PendingOrdersCount int             `json:"pending_orders_count"`
	LowStockCount      int             `json:"low_stock_count"`
	OpenChecksCount    int             `json:"open_checks_count"`
}
