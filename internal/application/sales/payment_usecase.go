package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/domain"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
	"github.com/litrosmakina/ticari-api/internal/domain/repository"
)

// PaymentUseCase müşteri tahsilatlarını yürütür.
//
// BANK/CASH tahsilatı hesaba COLLECTION hareketi ile birlikte tek transaction
// içinde yazılır. CHECK tahsilatı ise PENDING durumda bir çek oluşturur; hesap
// hareketi çek tahsil edildiğinde (treasury tarafında) yazılır.
type PaymentUseCase struct {
	paymentRepo  repository.PaymentRepository
	customerRepo repository.CustomerRepository
	docRepo      repository.DocumentRepository
	txRunner     PaymentTxRunner
}

// NewPaymentUseCase servisi kurar.
func NewPaymentUseCase(
	paymentRepo repository.PaymentRepository,
	customerRepo repository.CustomerRepository,
	docRepo repository.DocumentRepository,
	txRunner PaymentTxRunner,
) *PaymentUseCase {
	return &PaymentUseCase{
		paymentRepo:  paymentRepo,
		customerRepo: customerRepo,
		docRepo:      docRepo,
		txRunner:     txRunner,
	}
}

// Create yeni tahsilat kaydeder.
func (uc *PaymentUseCase) Create(ctx context.Context, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if !in.Amount.GreaterThan(decimal.Zero) {
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
	if in.DocID != "" {
		doc, err := uc.docRepo.GetByID(in.DocID)
		if err != nil {
			return nil, err
		}
		if doc == nil {
			return nil, domain.ErrNotFound
		}
		if doc.Type != entity.DocTypeInvoice {
			return nil, domain.ErrInvalidInput
		}
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	payment := &entity.Payment{
		ID:           uuid.New().String(),
		CustomerID:   in.CustomerID,
		DocID:        in.DocID,
		Date:         date,
		Amount:       in.Amount,
		Currency:     in.Currency,
		ExchangeRate: rate,
		Method:       in.Method,
		Description:  in.Description,
		CreatedAt:    now,
	}

	switch in.Method {
	case entity.MethodBank, entity.MethodCash:
		if in.AccountID == "" {
			return nil, domain.ErrInvalidInput
		}
		payment.AccountID = in.AccountID
		err = uc.txRunner.RunPayment(ctx, func(
			paymentRepo repository.PaymentRepository,
			_ repository.CheckRepository,
			accountRepo repository.AccountRepository,
			txRepo repository.TransactionRepository,
		) error {
			account, err := accountRepo.GetByIDForUpdate(in.AccountID)
			if err != nil {
				return err
			}
			if account == nil {
				return domain.ErrNotFound
			}
			if account.Currency != in.Currency {
				return domain.ErrCurrencyMismatch
			}
			if err := paymentRepo.Create(payment); err != nil {
				return err
			}
			newBalance := account.Balance.Add(in.Amount)
			tx := &entity.Transaction{
				ID:           uuid.New().String(),
				AccountID:    account.ID,
				Date:         date,
				Amount:       in.Amount,
				Type:         entity.TxCollection,
				Description:  collectionDescription(customer.Name, in.Description),
				RelatedID:    payment.ID,
				BalanceAfter: newBalance,
				CreatedAt:    now,
			}
			if err := txRepo.Create(tx); err != nil {
				return err
			}
			return accountRepo.UpdateBalance(account.ID, newBalance)
		})
	case entity.MethodCheck:
		if in.CheckNumber == "" || in.DueDate == "" {
			return nil, domain.ErrInvalidInput
		}
		dueDate, perr := time.Parse(dateLayout, in.DueDate)
		if perr != nil {
			return nil, domain.ErrInvalidInput
		}
		check := &entity.Check{
			ID:          uuid.New().String(),
			CheckNumber: in.CheckNumber,
			BankName:    in.BankName,
			Drawer:      in.Drawer,
			Amount:      in.Amount,
			Currency:    in.Currency,
			IssueDate:   date,
			DueDate:     dueDate,
			Status:      entity.CheckPending,
			CustomerID:  in.CustomerID,
			Description: in.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		payment.CheckID = check.ID
		err = uc.txRunner.RunPayment(ctx, func(
			paymentRepo repository.PaymentRepository,
			checkRepo repository.CheckRepository,
			_ repository.AccountRepository,
			_ repository.TransactionRepository,
		) error {
			if err := checkRepo.Create(check); err != nil {
				return err
			}
			return paymentRepo.Create(payment)
		})
	default:
		return nil, domain.ErrInvalidInput
	}
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// Get tahsilatı döner.
func (uc *PaymentUseCase) Get(id string) (*dto.PaymentResponse, error) {
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	return toPaymentResponse(payment), nil
}

// List tahsilatları sayfalı listeler.
func (uc *PaymentUseCase) List(limit, offset int) ([]dto.PaymentResponse, error) {
	payments, err := uc.paymentRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, *toPaymentResponse(p))
	}
	return out, nil
}

// ListByCustomer müşterinin tahsilatlarını döner.
func (uc *PaymentUseCase) ListByCustomer(customerID string) ([]dto.PaymentResponse, error) {
	payments, err := uc.paymentRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, *toPaymentResponse(p))
	}
	return out, nil
}

// Delete tahsilatı siler. BANK/CASH tahsilatında yazılmış COLLECTION
// hareketi aynı transaction içinde ters kayıtla geri alınır. Çekle yapılan
// tahsilat buradan silinemez; çek kendi ekranından yönetilir.
func (uc *PaymentUseCase) Delete(ctx context.Context, id string) error {
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if payment == nil {
		return domain.ErrNotFound
	}
	if payment.Method == entity.MethodCheck {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.RunPayment(ctx, func(
		paymentRepo repository.PaymentRepository,
		_ repository.CheckRepository,
		accountRepo repository.AccountRepository,
		txRepo repository.TransactionRepository,
	) error {
		account, err := accountRepo.GetByIDForUpdate(payment.AccountID)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.ErrNotFound
		}
		newBalance := account.Balance.Sub(payment.Amount)
		tx := &entity.Transaction{
			ID:           uuid.New().String(),
			AccountID:    account.ID,
			Date:         time.Now(),
			Amount:       payment.Amount.Neg(),
			Type:         entity.TxCollection,
			Description:  "Tahsilat iptali",
			RelatedID:    payment.ID,
			BalanceAfter: newBalance,
			CreatedAt:    time.Now(),
		}
		if err := txRepo.Create(tx); err != nil {
			return err
		}
		if err := accountRepo.UpdateBalance(account.ID, newBalance); err != nil {
			return err
		}
		return paymentRepo.Delete(payment.ID)
	})
}

func collectionDescription(customerName, note string) string {
	if note != "" {
		return customerName + " - " + note
	}
	return customerName + " tahsilatı"
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:           p.ID,
		CustomerID:   p.CustomerID,
		DocID:        p.DocID,
		AccountID:    p.AccountID,
		CheckID:      p.CheckID,
		Date:         p.Date.Format(dateLayout),
		Amount:       p.Amount,
		Currency:     p.Currency,
		ExchangeRate: p.ExchangeRate,
		Method:       p.Method,
		Description:  p.Description,
	}
}
