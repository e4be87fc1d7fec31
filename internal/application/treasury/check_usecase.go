package treasury

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/domain"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
	"github.com/litrosmakina/ticari-api/internal/domain/repository"
)

// CheckUseCase çek portföyünü yönetir. Çekler tahsilat kaydıyla doğar;
// burada yalnızca listelenir ve durum geçişi yapılır.
type CheckUseCase struct {
	checkRepo repository.CheckRepository
	txRunner  CheckTxRunner
}

// NewCheckUseCase servisi kurar.
func NewCheckUseCase(checkRepo repository.CheckRepository, txRunner CheckTxRunner) *CheckUseCase {
	return &CheckUseCase{checkRepo: checkRepo, txRunner: txRunner}
}

// Get çeki döner.
func (uc *CheckUseCase) Get(id string) (*dto.CheckResponse, error) {
	check, err := uc.checkRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if check == nil {
		return nil, domain.ErrNotFound
	}
	return toCheckResponse(check), nil
}

// List çekleri duruma göre süzerek sayfalı listeler; status boşsa hepsi döner.
func (uc *CheckUseCase) List(status string, limit, offset int) ([]dto.CheckResponse, error) {
	if status != "" && !entity.ValidCheckStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	checks, err := uc.checkRepo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CheckResponse, 0, len(checks))
	for _, c := range checks {
		out = append(out, *toCheckResponse(c))
	}
	return out, nil
}

// ListByCustomer müşterinin çeklerini döner.
func (uc *CheckUseCase) ListByCustomer(customerID string) ([]dto.CheckResponse, error) {
	checks, err := uc.checkRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CheckResponse, 0, len(checks))
	for _, c := range checks {
		out = append(out, *toCheckResponse(c))
	}
	return out, nil
}

// UpdateStatus çekin durumunu değiştirir. Tek geçerli geçiş
// PENDING -> {COLLECTED, BOUNCED, RETURNED} geçişidir. COLLECTED için hesap
// zorunludur: çek tutarı o hesaba COLLECTION hareketi olarak aynı transaction
// içinde yazılır.
func (uc *CheckUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateCheckStatusRequest) (*dto.CheckResponse, error) {
	if in.Status == entity.CheckCollected && in.AccountID == "" {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Check
	err := uc.txRunner.RunCheck(ctx, func(
		checkRepo repository.CheckRepository,
		accountRepo repository.AccountRepository,
		txRepo repository.TransactionRepository,
	) error {
		// Satır kilidi PENDING -> uç durum geçişini çek bazında
		// sıraya sokar; tahsilat hareketi iki kez yazılamaz.
		check, err := checkRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if check == nil {
			return domain.ErrNotFound
		}
		if err := check.TransitionTo(in.Status); err != nil {
			return err
		}
		if err := checkRepo.Update(check); err != nil {
			return err
		}
		updated = check
		if in.Status != entity.CheckCollected {
			return nil
		}

		account, err := accountRepo.GetByIDForUpdate(in.AccountID)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.ErrNotFound
		}
		if account.Currency != check.Currency {
			return domain.ErrCurrencyMismatch
		}
		now := time.Now()
		newBalance := account.Balance.Add(check.Amount)
		if err := txRepo.Create(&entity.Transaction{
			ID:           uuid.New().String(),
			AccountID:    account.ID,
			Date:         now,
			Amount:       check.Amount,
			Type:         entity.TxCollection,
			Description:  "Çek tahsilatı - " + check.CheckNumber,
			RelatedID:    check.ID,
			BalanceAfter: newBalance,
			CreatedAt:    now,
		}); err != nil {
			return err
		}
		return accountRepo.UpdateBalance(account.ID, newBalance)
	})
	if err != nil {
		return nil, err
	}
	return toCheckResponse(updated), nil
}

func toCheckResponse(c *entity.Check) *dto.CheckResponse {
	return &dto.CheckResponse{
		ID:          c.ID,
		CheckNumber: c.CheckNumber,
		BankName:    c.BankName,
		Drawer:      c.Drawer,
		Amount:      c.Amount,
		Currency:    c.Currency,
		IssueDate:   c.IssueDate.Format(dateLayout),
		DueDate:     c.DueDate.Format(dateLayout),
		Status:      c.Status,
		CustomerID:  c.CustomerID,
		Description: c.Description,
	}
}
