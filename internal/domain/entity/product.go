package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product stoktaki bir ürünü (SKU) temsil eder.
// Cost her zaman TRY cinsinden tutulur ve stok girişlerinde ağırlıklı
// ortalama ile güncellenir; geçmiş maliyet katmanları saklanmaz.
// Price ise ürünün kendi para birimindeki (Currency) satış fiyatıdır.
type Product struct {
	ID              string
	SKU             string
	Name            string
	CategoryID      string
	Stock           decimal.Decimal
	Unit            string // Adet, Kg, Metre...
	Price           decimal.Decimal
	Currency        string
	Cost            decimal.Decimal // TRY cinsinden güncel ortalama maliyet
	VATRate         decimal.Decimal // KDV oranı: 0, 1, 10, 20
	Barcode         string
	TrackStock      bool
	LastRestockDate *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Category ürün kategorisi.
type Category struct {
	ID          string
	Name        string
	Description string
}
