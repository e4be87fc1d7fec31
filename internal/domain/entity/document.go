package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Belge türleri: satış iş akışı teklif -> sipariş -> fatura (+ irsaliye) şeklinde ilerler.
const (
	DocTypeQuote   = "QUOTE"   // Teklif
	DocTypeOrder   = "ORDER"   // Sipariş
	DocTypeInvoice = "INVOICE" // Fatura
	DocTypeWaybill = "WAYBILL" // İrsaliye
)

// Belge durumları.
const (
	StatusDraft       = "DRAFT"        // Taslak
	StatusPending     = "PENDING"      // Beklemede
	StatusApproved    = "APPROVED"     // Onaylandı
	StatusShipped     = "SHIPPED"      // Sevk edildi
	StatusPartial     = "PARTIAL"      // Kısmi sevk
	StatusInvoiced    = "INVOICED"     // Faturalandı
	StatusPartialPaid = "PARTIAL_PAID" // Kısmi ödeme
	StatusPaid        = "PAID"         // Ödendi
	StatusCancelled   = "CANCELLED"    // İptal
	StatusRejected    = "REJECTED"     // Reddedildi
)

// Satır durumları (sipariş takibi).
const (
	ItemStatusWaiting   = "WAITING"
	ItemStatusPreparing = "PREPARING"
	ItemStatusShipped   = "SHIPPED"
	ItemStatusDelivered = "DELIVERED"
)

// Document bir ticari belgenin (teklif/sipariş/fatura/irsaliye) başlığıdır.
//
// ExchangeRate belge oluşturulurken dondurulur: belgenin cari hesaba etkisi
// oluşturma anındaki kurla sabitlenir, kur tablosu sonradan güncellense bile
// geçmiş ekstreler değişmez.
type Document struct {
	ID             string
	Type           string
	CustomerID     string
	Title          string
	Date           time.Time // Belge tarihi (vergi/ekstre tarihi)
	PaymentDueDate *time.Time
	Currency       string
	ExchangeRate   decimal.Decimal // TRY karşılığı kur; TRY belgelerde 1
	TotalAmount    decimal.Decimal // Belgenin kendi para birimindeki KDV dahil toplamı
	Status         string
	RelatedDocID   string // İş akışı bağı: faturanın siparişi, siparişin teklifi
	Notes          string
	Terms          string
	EInvoiceStatus string // DRAFT, QUEUED, SENT, ERROR (gönderim entegratör tarafında)
	EInvoiceNumber string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LineItem belge satırı.
type LineItem struct {
	ID              string
	DocumentID      string
	ProductID       string
	ProductName     string
	SKU             string
	Description     string
	Quantity        decimal.Decimal
	Unit            string
	ShippedQuantity decimal.Decimal
	UnitPrice       decimal.Decimal
	TaxRate         decimal.Decimal // KDV yüzdesi (20 = %20)
	Discount        decimal.Decimal // İskonto yüzdesi
	Total           decimal.Decimal // miktar x birim fiyat x (1 - iskonto/100), KDV hariç
	ItemStatus      string
}

// LineTotal satır tutarını hesaplar: miktar x birim fiyat x (1 - iskonto/100).
func LineTotal(quantity, unitPrice, discount decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	factor := hundred.Sub(discount).Div(hundred)
	return quantity.Mul(unitPrice).Mul(factor)
}
