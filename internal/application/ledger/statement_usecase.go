// Package ledger saf cari hesap motorunu kalıcılık katmanına bağlayan
// uygulama servislerini içerir: ekstre, mutabakat ve raporlar.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/domain"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
	domledger "github.com/litrosmakina/ticari-api/internal/domain/ledger"
	"github.com/litrosmakina/ticari-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// StatementUseCase müşteri ekstresi üretir. Tamamen okuma tarafıdır: kayıtları
// yükler, saf motora verir, sonucu DTO'ya çevirir.
type StatementUseCase struct {
	customerRepo repository.CustomerRepository
	docRepo      repository.DocumentRepository
	paymentRepo  repository.PaymentRepository
}

// NewStatementUseCase servisi kurar.
func NewStatementUseCase(customerRepo repository.CustomerRepository, docRepo repository.DocumentRepository, paymentRepo repository.PaymentRepository) *StatementUseCase {
	return &StatementUseCase{customerRepo: customerRepo, docRepo: docRepo, paymentRepo: paymentRepo}
}

// BuildStatement müşterinin tam geçmiş ekstresini kurar.
func (uc *StatementUseCase) BuildStatement(customerID string) (*dto.StatementResponse, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	st, err := uc.buildDomainStatement(customerID)
	if err != nil {
		return nil, err
	}
	return &dto.StatementResponse{
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Lines:        toStatementLines(st.Lines),
		Balance:      st.Balance,
	}, nil
}

// Balance müşterinin güncel net TRY bakiyesini döner.
func (uc *StatementUseCase) Balance(customerID string) (decimal.Decimal, error) {
	st, err := uc.buildDomainStatement(customerID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return st.Balance, nil
}

func (uc *StatementUseCase) buildDomainStatement(customerID string) (*domledger.Statement, error) {
	docs, err := uc.docRepo.ListByCustomerAndType(customerID, entity.DocTypeInvoice)
	if err != nil {
		return nil, err
	}
	payments, err := uc.paymentRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return domledger.BuildStatement(docs, payments)
}

func toStatementLines(entries []domledger.Entry) []dto.StatementLine {
	lines := make([]dto.StatementLine, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, dto.StatementLine{
			ID:          e.ID,
			Date:        e.Date.Format(dateLayout),
			Kind:        e.Kind,
			Description: e.Description,
			DocID:       e.DocID,
			Debit:       e.Debit,
			Credit:      e.Credit,
			Currency:    e.Currency,
			BaseEffect:  e.BaseEffect,
			Balance:     e.Balance,
		})
	}
	return lines
}
