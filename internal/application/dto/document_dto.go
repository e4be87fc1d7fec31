package dto

import "github.com/shopspring/decimal"

// CreateDocumentItemRequest belge satırı isteği.
type CreateDocumentItemRequest struct {
	ProductID   string          `json:"product_id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"` // 0 ise ürün fiyatı kullanılır
	Discount    decimal.Decimal `json:"discount"`   // İskonto yüzdesi
}

// CreateDocumentRequest yeni belge (teklif/sipariş/fatura/irsaliye) isteği.
// Date "2006-01-02" formatındadır. ExchangeRate belge para birimi TRY ise 1
// olmalı, döviz ise pozitif olmalıdır; kayıt anında dondurulur.
type CreateDocumentRequest struct {
	Type           string                      `json:"type"`
	CustomerID     string                      `json:"customer_id"`
	Title          string                      `json:"title"`
	Date           string                      `json:"date"`
	PaymentDueDate string                      `json:"payment_due_date"`
	Currency       string                      `json:"currency"`
	ExchangeRate   decimal.Decimal             `json:"exchange_rate"`
	Items          []CreateDocumentItemRequest `json:"items"`
	Notes          string                      `json:"notes"`
	Terms          string                      `json:"terms"`
}

// DocumentItemResponse belge satırı yanıtı.
type DocumentItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
	ItemStatus  string          `json:"item_status,omitempty"`
}

// DocumentResponse belge yanıtı.
type DocumentResponse struct {
	ID             string                 `json:"id"`
	Type           string                 `json:"type"`
	CustomerID     string                 `json:"customer_id"`
	CustomerName   string                 `json:"customer_name,omitempty"`
	Title          string                 `json:"title,omitempty"`
	Date           string                 `json:"date"`
	PaymentDueDate string                 `json:"payment_due_date,omitempty"`
	Currency       string                 `json:"currency"`
	ExchangeRate   decimal.Decimal        `json:"exchange_rate"`
	TotalAmount    decimal.Decimal        `json:"total_amount"`
	Status         string                 `json:"status"`
	RelatedDocID   string                 `json:"related_doc_id,omitempty"`
	Notes          string                 `json:"notes,omitempty"`
	Terms          string                 `json:"terms,omitempty"`
	Items          []DocumentItemResponse `json:"items,omitempty"`
}

// ConvertDocumentRequest iş akışı dönüşümü: teklif -> sipariş -> fatura.
// Title ve Date boş bırakılırsa kaynak belgenin başlığı ve günün tarihi kullanılır.
type ConvertDocumentRequest struct {
	TargetType string `json:"target_type"`
	Title      string `json:"title"`
	Date       string `json:"date"`
}
