package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/domain"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
	domledger "github.com/litrosmakina/ticari-api/internal/domain/ledger"
	"github.com/litrosmakina/ticari-api/internal/domain/repository"
)

// ReconciliationUseCase dönem mutabakatı: ön izleme hesabı ve anlık görüntü
// kaydı. Kaydedilen sonuç salt denetim izidir, sonraki hesapları etkilemez.
type ReconciliationUseCase struct {
	customerRepo repository.CustomerRepository
	docRepo      repository.DocumentRepository
	paymentRepo  repository.PaymentRepository
	reconRepo    repository.ReconciliationRepository
}

// NewReconciliationUseCase servisi kurar.
func NewReconciliationUseCase(
	customerRepo repository.CustomerRepository,
	docRepo repository.DocumentRepository,
	paymentRepo repository.PaymentRepository,
	reconRepo repository.ReconciliationRepository,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		customerRepo: customerRepo,
		docRepo:      docRepo,
		paymentRepo:  paymentRepo,
		reconRepo:    reconRepo,
	}
}

// Preview dönem mutabakat hesabını yapar: devreden bakiye + dönem içi
// satırlar + dönem sonu bakiyesi.
func (uc *ReconciliationUseCase) Preview(in dto.ReconciliationPreviewRequest) (*dto.ReconciliationPreviewResponse, error) {
	customer, start, end, err := uc.resolvePeriod(in.CustomerID, in.PeriodStart, in.PeriodEnd)
	if err != nil {
		return nil, err
	}
	docs, err := uc.docRepo.ListByCustomerAndType(customer.ID, entity.DocTypeInvoice)
	if err != nil {
		return nil, err
	}
	payments, err := uc.paymentRepo.ListByCustomer(customer.ID)
	if err != nil {
		return nil, err
	}
	ps, err := domledger.BuildPeriodStatement(docs, payments, start, end)
	if err != nil {
		return nil, err
	}
	return &dto.ReconciliationPreviewResponse{
		CustomerID:     customer.ID,
		CustomerName:   customer.Name,
		PeriodStart:    start.Format(dateLayout),
		PeriodEnd:      end.Format(dateLayout),
		BroughtForward: ps.BroughtForward,
		Lines:          toStatementLines(ps.Lines),
		FinalBalance:   ps.FinalBalance,
	}, nil
}

// Save mutabakat sonucunu karşı tarafın onay durumuyla birlikte kalıcı
// anlık görüntü olarak saklar.
func (uc *ReconciliationUseCase) Save(in dto.SaveReconciliationRequest) (*dto.ReconciliationResponse, error) {
	if in.Status != entity.ReconciliationAgreed && in.Status != entity.ReconciliationNotAgreed {
		return nil, domain.ErrInvalidInput
	}
	preview, err := uc.Preview(dto.ReconciliationPreviewRequest{
		CustomerID:  in.CustomerID,
		PeriodStart: in.PeriodStart,
		PeriodEnd:   in.PeriodEnd,
	})
	if err != nil {
		return nil, err
	}
	now := time.Now()
	start, _ := time.Parse(dateLayout, in.PeriodStart)
	end, _ := time.Parse(dateLayout, in.PeriodEnd)
	rec := &entity.Reconciliation{
		ID:          uuid.New().String(),
		CustomerID:  in.CustomerID,
		Date:        now,
		PeriodStart: start,
		PeriodEnd:   end,
		Balance:     preview.FinalBalance,
		Status:      in.Status,
		Note:        in.Note,
		CreatedAt:   now,
	}
	if err := uc.reconRepo.Create(rec); err != nil {
		return nil, err
	}
	return toReconciliationResponse(rec), nil
}

// Get tek bir mutabakat kaydını döner.
func (uc *ReconciliationUseCase) Get(id string) (*dto.ReconciliationResponse, error) {
	rec, err := uc.reconRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return toReconciliationResponse(rec), nil
}

// ListByCustomer müşterinin geçmiş mutabakatlarını döner.
func (uc *ReconciliationUseCase) ListByCustomer(customerID string) ([]dto.ReconciliationResponse, error) {
	recs, err := uc.reconRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReconciliationResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, *toReconciliationResponse(r))
	}
	return out, nil
}

// List tüm mutabakat kayıtlarını sayfalı döner.
func (uc *ReconciliationUseCase) List(limit, offset int) ([]dto.ReconciliationResponse, error) {
	recs, err := uc.reconRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReconciliationResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, *toReconciliationResponse(r))
	}
	return out, nil
}

func (uc *ReconciliationUseCase) resolvePeriod(customerID, startStr, endStr string) (*entity.Customer, time.Time, time.Time, error) {
	var zero time.Time
	if customerID == "" {
		return nil, zero, zero, domain.ErrInvalidInput
	}
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return nil, zero, zero, domain.ErrInvalidInput
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return nil, zero, zero, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, zero, zero, err
	}
	if customer == nil {
		return nil, zero, zero, domain.ErrNotFound
	}
	return customer, start, end, nil
}

func toReconciliationResponse(rec *entity.Reconciliation) *dto.ReconciliationResponse {
	return &dto.ReconciliationResponse{
		ID:          rec.ID,
		CustomerID:  rec.CustomerID,
		Date:        rec.Date.Format(dateLayout),
		PeriodStart: rec.PeriodStart.Format(dateLayout),
		PeriodEnd:   rec.PeriodEnd.Format(dateLayout),
		Balance:     rec.Balance,
		Status:      rec.Status,
		Note:        rec.Note,
		CreatedAt:   rec.CreatedAt.Format(time.RFC3339),
	}
}
