package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/domain"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
	"github.com/litrosmakina/ticari-api/internal/domain/repository"
)

// dateLayout istek/yanıt gövdelerindeki tarih formatı.
const dateLayout = "2006-01-02"

// DocumentUseCase teklif/sipariş/fatura/irsaliye iş akışını yürütür.
// Fatura kaydı stok düşümüyle birlikte tek transaction içinde yapılır.
type DocumentUseCase struct {
	docRepo      repository.DocumentRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	txRunner     DocumentTxRunner
}

// NewDocumentUseCase servisi kurar.
func NewDocumentUseCase(
	docRepo repository.DocumentRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	txRunner DocumentTxRunner,
) *DocumentUseCase {
	return &DocumentUseCase{
		docRepo:      docRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		txRunner:     txRunner,
	}
}

var validDocTypes = map[string]bool{
	entity.DocTypeQuote:   true,
	entity.DocTypeOrder:   true,
	entity.DocTypeInvoice: true,
	entity.DocTypeWaybill: true,
}

var validDocStatuses = map[string]bool{
	entity.StatusDraft:       true,
	entity.StatusPending:     true,
	entity.StatusApproved:    true,
	entity.StatusShipped:     true,
	entity.StatusPartial:     true,
	entity.StatusInvoiced:    true,
	entity.StatusPartialPaid: true,
	entity.StatusPaid:        true,
	entity.StatusCancelled:   true,
	entity.StatusRejected:    true,
}

// Create yeni belge oluşturur. Kur kaydedilirken dondurulur: TRY belgelerde 1,
// döviz belgelerde istekle gelen pozitif kur. Fatura stoktan düşer.
func (uc *DocumentUseCase) Create(ctx context.Context, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	if !validDocTypes[in.Type] {
		return nil, domain.ErrInvalidInput
	}
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidCurrency(in.Currency) {
		return nil, domain.ErrInvalidInput
	}
	rate, err := frozenRate(in.Currency, in.ExchangeRate)
	if err != nil {
		return nil, err
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	var dueDate *time.Time
	if in.PaymentDueDate != "" {
		d, err := time.Parse(dateLayout, in.PaymentDueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		dueDate = &d
	}

	now := time.Now()
	doc := &entity.Document{
		ID:             uuid.New().String(),
		Type:           in.Type,
		CustomerID:     in.CustomerID,
		Title:          in.Title,
		Date:           date,
		PaymentDueDate: dueDate,
		Currency:       in.Currency,
		ExchangeRate:   rate,
		Status:         initialStatus(in.Type),
		Notes:          in.Notes,
		Terms:          in.Terms,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	items, total, err := uc.buildItems(doc.ID, in.Items)
	if err != nil {
		return nil, err
	}
	doc.TotalAmount = total

	err = uc.txRunner.RunDocument(ctx, func(docRepo repository.DocumentRepository, productRepo repository.ProductRepository) error {
		if err := docRepo.Create(doc); err != nil {
			return err
		}
		for _, item := range items {
			if err := docRepo.CreateItem(item); err != nil {
				return err
			}
		}
		if doc.Type == entity.DocTypeInvoice {
			return deductStock(productRepo, items)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toDocumentResponse(doc, items, customer.Name), nil
}

// buildItems satırları ürün kartından tamamlar ve KDV dahil toplamı hesaplar.
func (uc *DocumentUseCase) buildItems(docID string, reqs []dto.CreateDocumentItemRequest) ([]*entity.LineItem, decimal.Decimal, error) {
	hundred := decimal.NewFromInt(100)
	total := decimal.Zero
	items := make([]*entity.LineItem, 0, len(reqs))
	for _, r := range reqs {
		if !r.Quantity.GreaterThan(decimal.Zero) {
			return nil, decimal.Zero, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(r.ProductID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if product == nil {
			return nil, decimal.Zero, domain.ErrNotFound
		}
		unitPrice := r.UnitPrice
		if unitPrice.IsZero() {
			unitPrice = product.Price
		}
		lineTotal := entity.LineTotal(r.Quantity, unitPrice, r.Discount)
		item := &entity.LineItem{
			ID:          uuid.New().String(),
			DocumentID:  docID,
			ProductID:   product.ID,
			ProductName: product.Name,
			SKU:         product.SKU,
			Description: r.Description,
			Quantity:    r.Quantity,
			Unit:        product.Unit,
			UnitPrice:   unitPrice,
			TaxRate:     product.VATRate,
			Discount:    r.Discount,
			Total:       lineTotal,
			ItemStatus:  entity.ItemStatusWaiting,
		}
		items = append(items, item)
		vat := lineTotal.Mul(product.VATRate).Div(hundred)
		total = total.Add(lineTotal).Add(vat)
	}
	return items, total, nil
}

// deductStock fatura satırlarındaki stok takipli ürünlerden düşer.
func deductStock(productRepo repository.ProductRepository, items []*entity.LineItem) error {
	for _, item := range items {
		product, err := productRepo.GetByID(item.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if !product.TrackStock {
			continue
		}
		newStock := product.Stock.Sub(item.Quantity)
		if newStock.IsNegative() {
			return domain.ErrInsufficientStock
		}
		if err := productRepo.UpdateStockAndCost(product.ID, newStock, product.Cost); err != nil {
			return err
		}
	}
	return nil
}

// restoreStock fatura silinirken stokları geri ekler.
func restoreStock(productRepo repository.ProductRepository, items []*entity.LineItem) error {
	for _, item := range items {
		product, err := productRepo.GetByID(item.ProductID)
		if err != nil {
			return err
		}
		if product == nil || !product.TrackStock {
			continue
		}
		if err := productRepo.UpdateStockAndCost(product.ID, product.Stock.Add(item.Quantity), product.Cost); err != nil {
			return err
		}
	}
	return nil
}

// Convert belgeyi iş akışında ileri taşır: teklif -> sipariş, sipariş -> fatura,
// teklif -> fatura. Yeni belge kaynağın satırlarını ve dondurulmuş kurunu taşır;
// hedef fatura ise stok düşümü aynı transaction içinde yapılır.
func (uc *DocumentUseCase) Convert(ctx context.Context, sourceID string, in dto.ConvertDocumentRequest) (*dto.DocumentResponse, error) {
	source, err := uc.docRepo.GetByID(sourceID)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, domain.ErrNotFound
	}
	if !validConversion(source.Type, in.TargetType) {
		return nil, domain.ErrInvalidInput
	}
	sourceItems, err := uc.docRepo.GetItemsByDocumentID(sourceID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	title := in.Title
	if title == "" {
		title = source.Title
	}
	docDate := now
	if in.Date != "" {
		parsed, err := time.Parse(dateLayout, in.Date)
		if err != nil {
			return nil, fmt.Errorf("belge tarihi çözümlenemedi: %w", domain.ErrInvalidInput)
		}
		docDate = parsed
	}
	doc := &entity.Document{
		ID:             uuid.New().String(),
		Type:           in.TargetType,
		CustomerID:     source.CustomerID,
		Title:          title,
		Date:           docDate,
		PaymentDueDate: source.PaymentDueDate,
		Currency:       source.Currency,
		ExchangeRate:   source.ExchangeRate,
		TotalAmount:    source.TotalAmount,
		Status:         initialStatus(in.TargetType),
		RelatedDocID:   source.ID,
		Notes:          source.Notes,
		Terms:          source.Terms,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	items := make([]*entity.LineItem, 0, len(sourceItems))
	for _, src := range sourceItems {
		copy := *src
		copy.ID = uuid.New().String()
		copy.DocumentID = doc.ID
		copy.ShippedQuantity = decimal.Zero
		copy.ItemStatus = entity.ItemStatusWaiting
		items = append(items, &copy)
	}

	err = uc.txRunner.RunDocument(ctx, func(docRepo repository.DocumentRepository, productRepo repository.ProductRepository) error {
		if err := docRepo.Create(doc); err != nil {
			return err
		}
		for _, item := range items {
			if err := docRepo.CreateItem(item); err != nil {
				return err
			}
		}
		if err := docRepo.UpdateStatus(source.ID, convertedStatus(in.TargetType)); err != nil {
			return err
		}
		if doc.Type == entity.DocTypeInvoice {
			return deductStock(productRepo, items)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toDocumentResponse(doc, items, ""), nil
}

// Get belgeyi satırlarıyla döner.
func (uc *DocumentUseCase) Get(id string) (*dto.DocumentResponse, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.docRepo.GetItemsByDocumentID(id)
	if err != nil {
		return nil, err
	}
	customerName := ""
	if customer, err := uc.customerRepo.GetByID(doc.CustomerID); err == nil && customer != nil {
		customerName = customer.Name
	}
	return uc.toDocumentResponse(doc, items, customerName), nil
}

// List belirli türdeki belgeleri sayfalı listeler.
func (uc *DocumentUseCase) List(docType string, limit, offset int) ([]dto.DocumentResponse, error) {
	if !validDocTypes[docType] {
		return nil, domain.ErrInvalidInput
	}
	docs, err := uc.docRepo.ListByType(docType, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, *uc.toDocumentResponse(d, nil, ""))
	}
	return out, nil
}

// ListByCustomer müşterinin belirli türdeki belgelerini döner.
func (uc *DocumentUseCase) ListByCustomer(customerID, docType string) ([]dto.DocumentResponse, error) {
	if !validDocTypes[docType] {
		return nil, domain.ErrInvalidInput
	}
	docs, err := uc.docRepo.ListByCustomerAndType(customerID, docType)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, *uc.toDocumentResponse(d, nil, ""))
	}
	return out, nil
}

// UpdateStatus belge durumunu değiştirir.
func (uc *DocumentUseCase) UpdateStatus(id, status string) error {
	if !validDocStatuses[status] {
		return domain.ErrInvalidInput
	}
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	return uc.docRepo.UpdateStatus(id, status)
}

// Delete belgeyi satırlarıyla siler; fatura siliniyorsa düşülen stoklar
// aynı transaction içinde geri eklenir.
func (uc *DocumentUseCase) Delete(ctx context.Context, id string) error {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	items, err := uc.docRepo.GetItemsByDocumentID(id)
	if err != nil {
		return err
	}
	return uc.txRunner.RunDocument(ctx, func(docRepo repository.DocumentRepository, productRepo repository.ProductRepository) error {
		if doc.Type == entity.DocTypeInvoice {
			if err := restoreStock(productRepo, items); err != nil {
				return err
			}
		}
		return docRepo.Delete(id)
	})
}

// frozenRate belge kurunu doğrular: TRY belgelerde 1'e sabitlenir, döviz
// belgelerde pozitif kur zorunludur.
func frozenRate(currency string, rate decimal.Decimal) (decimal.Decimal, error) {
	if currency == entity.CurrencyTRY {
		return decimal.NewFromInt(1), nil
	}
	if !rate.GreaterThan(decimal.Zero) {
		return decimal.Zero, domain.ErrMissingExchangeRate
	}
	return rate, nil
}

func initialStatus(docType string) string {
	switch docType {
	case entity.DocTypeOrder:
		return entity.StatusApproved
	case entity.DocTypeWaybill:
		return entity.StatusShipped
	default:
		return entity.StatusPending
	}
}

// convertedStatus dönüşüm sonrası kaynak belgenin durumu.
func convertedStatus(targetType string) string {
	if targetType == entity.DocTypeInvoice {
		return entity.StatusInvoiced
	}
	return entity.StatusApproved
}

func validConversion(sourceType, targetType string) bool {
	switch sourceType {
	case entity.DocTypeQuote:
		return targetType == entity.DocTypeOrder || targetType == entity.DocTypeInvoice
	case entity.DocTypeOrder:
		return targetType == entity.DocTypeInvoice || targetType == entity.DocTypeWaybill
	case entity.DocTypeWaybill:
		return targetType == entity.DocTypeInvoice
	default:
		return false
	}
}

func (uc *DocumentUseCase) toDocumentResponse(doc *entity.Document, items []*entity.LineItem, customerName string) *dto.DocumentResponse {
	resp := &dto.DocumentResponse{
		ID:           doc.ID,
		Type:         doc.Type,
		CustomerID:   doc.CustomerID,
		CustomerName: customerName,
		Title:        doc.Title,
		Date:         doc.Date.Format(dateLayout),
		Currency:     doc.Currency,
		ExchangeRate: doc.ExchangeRate,
		TotalAmount:  doc.TotalAmount,
		Status:       doc.Status,
		RelatedDocID: doc.RelatedDocID,
		Notes:        doc.Notes,
		Terms:        doc.Terms,
	}
	if doc.PaymentDueDate != nil {
		resp.PaymentDueDate = doc.PaymentDueDate.Format(dateLayout)
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.DocumentItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			SKU:         item.SKU,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			UnitPrice:   item.UnitPrice,
			TaxRate:     item.TaxRate,
			Discount:    item.Discount,
			Total:       item.Total,
			ItemStatus:  item.ItemStatus,
		})
	}
	return resp
}
