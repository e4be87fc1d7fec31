package sales

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
	"github.com/litrosmakina/ticari-api/internal/domain/repository"
	"github.com/litrosmakina/ticari-api/internal/infrastructure/importer"
)

// ImportUseCase Paraşüt satış raporu CSV'sinden geçmiş faturaları aktarır.
//
// Satırlar VKN üzerinden cari hesaba bağlanır; eşleşen kayıt yoksa yalnızca
// ünvan ve VKN ile yeni cari açılır. Aktarılan faturalar kalemsizdir, stok
// hareketi doğurmaz; cari ekstreye toplam tutarlarıyla girerler.
type ImportUseCase struct {
	customerRepo repository.CustomerRepository
	docRepo      repository.DocumentRepository
}

// NewImportUseCase kullanım senaryosunu kurar.
func NewImportUseCase(customerRepo repository.CustomerRepository, docRepo repository.DocumentRepository) *ImportUseCase {
	return &ImportUseCase{customerRepo: customerRepo, docRepo: docRepo}
}

// ImportInvoices CSV akışını okur, cari hesapları eşler ve faturaları yazar.
// Ayrıştırma hatası tüm aktarımı durdurur; kısmi dosya kabul edilmez.
func (uc *ImportUseCase) ImportInvoices(r io.Reader) (*dto.ImportResultResponse, error) {
	rows, err := importer.ParseInvoices(r)
	if err != nil {
		return nil, err
	}

	result := &dto.ImportResultResponse{TotalRows: len(rows)}
	for _, row := range rows {
		customerID, created, err := uc.resolveCustomer(row)
		if err != nil {
			return nil, err
		}
		if created {
			result.CustomersCreated++
		}

		rate := row.ExchangeRate
		if row.Currency == entity.CurrencyTRY {
			rate = decimal.NewFromInt(1)
		}
		now := time.Now()
		doc := &entity.Document{
			ID:           uuid.New().String(),
			Type:         entity.DocTypeInvoice,
			CustomerID:   customerID,
			Title:        row.DocumentNo,
			Date:         row.Date,
			Currency:     row.Currency,
			ExchangeRate: rate,
			TotalAmount:  row.Total,
			Status:       entity.StatusInvoiced,
			Notes:        "Paraşüt aktarımı",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := uc.docRepo.Create(doc); err != nil {
			return nil, fmt.Errorf("aktarılan fatura yazılamadı (%s): %w", row.DocumentNo, err)
		}
		result.Imported++
		result.DocumentIDs = append(result.DocumentIDs, doc.ID)
	}
	return result, nil
}

// resolveCustomer VKN ile carileri eşler, bulunamazsa yeni kayıt açar.
func (uc *ImportUseCase) resolveCustomer(row importer.InvoiceRow) (id string, created bool, err error) {
	existing, err := uc.customerRepo.GetByTaxNo(row.TaxNo)
	if err != nil {
		return "", false, fmt.Errorf("cari hesap aranamadı: %w", err)
	}
	if existing != nil {
		return existing.ID, false, nil
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:            uuid.New().String(),
		Name:          row.CustomerName,
		TaxNo:         row.TaxNo,
		IsLegalEntity: len(row.TaxNo) == 10, // VKN 10 hane, TCKN 11 hane
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return "", false, fmt.Errorf("cari hesap açılamadı: %w", err)
	}
	return customer.ID, true, nil
}
