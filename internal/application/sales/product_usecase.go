package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/domain"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
	"github.com/litrosmakina/ticari-api/internal/domain/ledger"
	"github.com/litrosmakina/ticari-api/internal/domain/repository"
)

// ProductUseCase ürün CRUD'u, stok girişi ve silme koruması.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	docRepo     repository.DocumentRepository
}

// NewProductUseCase servisi kurar.
func NewProductUseCase(productRepo repository.ProductRepository, docRepo repository.DocumentRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, docRepo: docRepo}
}

// Create yeni ürün tanımlar.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Currency == "" {
		in.Currency = entity.CurrencyTRY
	}
	if !entity.ValidCurrency(in.Currency) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		SKU:        in.SKU,
		Name:       in.Name,
		CategoryID: in.CategoryID,
		Stock:      in.Stock,
		Unit:       in.Unit,
		Price:      in.Price,
		Currency:   in.Currency,
		Cost:       in.Cost,
		VATRate:    in.VATRate,
		Barcode:    in.Barcode,
		TrackStock: in.TrackStock,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Get ürünü döner.
func (uc *ProductUseCase) Get(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List ürünleri sayfalı listeler.
func (uc *ProductUseCase) List(limit, offset int) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Update ürünün tanım alanlarını günceller; stok ve maliyet stok girişiyle değişir.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Currency != "" && !entity.ValidCurrency(in.Currency) {
		return nil, domain.ErrInvalidInput
	}
	product.Name = in.Name
	product.CategoryID = in.CategoryID
	product.Unit = in.Unit
	product.Price = in.Price
	if in.Currency != "" {
		product.Currency = in.Currency
	}
	product.VATRate = in.VATRate
	product.Barcode = in.Barcode
	product.TrackStock = in.TrackStock
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Restock stok girişi yapar: giriş maliyeti alış kuru ile TRY'ye çevrilir ve
// ortalama maliyet ağırlıklı olarak güncellenir.
func (uc *ProductUseCase) Restock(id string, in dto.RestockRequest) (*dto.ProductResponse, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) || in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	currency := in.Currency
	if currency == "" {
		currency = entity.CurrencyTRY
	}
	costTRY, err := ledger.BaseAmount(in.UnitCost, in.ExchangeRate, currency)
	if err != nil {
		return nil, err
	}
	newCost := ledger.RestockCost(product.Stock, product.Cost, in.Quantity, costTRY)
	product.Stock = product.Stock.Add(in.Quantity)
	product.Cost = newCost
	now := time.Now()
	product.LastRestockDate = &now
	product.UpdatedAt = now
	if err := uc.productRepo.UpdateStockAndCost(product.ID, product.Stock, product.Cost); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete ürünü siler; belge satırlarında geçen ürün silinemez.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	count, err := uc.docRepo.CountItemsByProduct(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrProductInUse
	}
	return uc.productRepo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:         p.ID,
		SKU:        p.SKU,
		Name:       p.Name,
		CategoryID: p.CategoryID,
		Stock:      p.Stock,
		Unit:       p.Unit,
		Price:      p.Price,
		Currency:   p.Currency,
		Cost:       p.Cost,
		VATRate:    p.VATRate,
		Barcode:    p.Barcode,
		TrackStock: p.TrackStock,
	}
	if p.LastRestockDate != nil {
		resp.LastRestockDate = p.LastRestockDate.Format("2006-01-02")
	}
	return resp
}
