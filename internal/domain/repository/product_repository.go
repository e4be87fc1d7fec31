package repository

import (
	"github.com/shopspring/decimal"

	"github.com/litrosmakina/ticari-api/internal/domain/entity"
)

// ProductRepository ürün kalıcılık portu.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	ListAll() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStockAndCost stok girişi/çıkışında miktar ve ortalama maliyeti
	// birlikte yazar.
	UpdateStockAndCost(productID string, stock, cost decimal.Decimal) error
	Delete(id string) error
}

// CategoryRepository ürün kategorisi kalıcılık portu.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
}
