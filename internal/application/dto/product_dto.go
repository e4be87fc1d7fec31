package dto

import "github.com/shopspring/decimal"

// CreateProductRequest yeni ürün isteği. Cost TRY cinsindendir.
type CreateProductRequest struct {
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	CategoryID string          `json:"category_id"`
	Stock      decimal.Decimal `json:"stock"`
	Unit       string          `json:"unit"`
	Price      decimal.Decimal `json:"price"`
	Currency   string          `json:"currency"`
	Cost       decimal.Decimal `json:"cost"`
	VATRate    decimal.Decimal `json:"vat_rate"`
	Barcode    string          `json:"barcode"`
	TrackStock bool            `json:"track_stock"`
}

// UpdateProductRequest ürün güncelleme isteği (stok ve maliyet hariç;
// onlar stok girişiyle değişir).
type UpdateProductRequest struct {
	Name       string          `json:"name"`
	CategoryID string          `json:"category_id"`
	Unit       string          `json:"unit"`
	Price      decimal.Decimal `json:"price"`
	Currency   string          `json:"currency"`
	VATRate    decimal.Decimal `json:"vat_rate"`
	Barcode    string          `json:"barcode"`
	TrackStock bool            `json:"track_stock"`
}

// RestockRequest stok girişi isteği. UnitCost giriş para birimindedir;
// ExchangeRate ile TRY'ye çevrilip ağırlıklı ortalamaya katılır.
type RestockRequest struct {
	Quantity     decimal.Decimal `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	Currency     string          `json:"currency"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
}

// ProductResponse ürün yanıtı.
type ProductResponse struct {
	ID              string          `json:"id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	CategoryID      string          `json:"category_id,omitempty"`
	Stock           decimal.Decimal `json:"stock"`
	Unit            string          `json:"unit,omitempty"`
	Price           decimal.Decimal `json:"price"`
	Currency        string          `json:"currency"`
	Cost            decimal.Decimal `json:"cost"`
	VATRate         decimal.Decimal `json:"vat_rate"`
	Barcode         string          `json:"barcode,omitempty"`
	TrackStock      bool            `json:"track_stock"`
	LastRestockDate string          `json:"last_restock_date,omitempty"`
}
