package treasury

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

const dateLayout = "2006-01-02"

// AccountUseCase kasa/banka hesaplarını ve hareketlerini yönetir.
//
// Bakiye bir önbellektir: her yazım hareketle birlikte tek transaction içinde
// güncellenir, şüphe halinde RebuildBalance hareket toplamından yeniden kurar.
type AccountUseCase struct {
	accountRepo repository.AccountRepository
	txRepo      repository.TransactionRepository
	txRunner    TreasuryTxRunner
}

// NewAccountUseCase servisi kurar.
func NewAccountUseCase(
	accountRepo repository.AccountRepository,
	txRepo repository.TransactionRepository,
	txRunner TreasuryTxRunner,
) *AccountUseCase {
	return &AccountUseCase{accountRepo: accountRepo, txRepo: txRepo, txRunner: txRunner}
}

// Create yeni hesap açar. Açılış bakiyesi sıfırdan farklıysa hesapla birlikte
// bir DEPOSIT hareketi yazılır ki bakiye her zaman hareketlerden türetilebilsin.
func (uc *AccountUseCase) Create(ctx context.Context, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.AccountCash && in.Type != entity.AccountBank {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidCurrency(in.Currency) {
		return nil, domain.ErrInvalidInput
	}
	if in.Balance.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	account := &entity.Account{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Type:      in.Type,
		Currency:  in.Currency,
		Balance:   in.Balance,
		IBAN:      in.IBAN,
		BankName:  in.BankName,
		Branch:    in.Branch,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := uc.txRunner.RunTreasury(ctx, func(accountRepo repository.AccountRepository, txRepo repository.TransactionRepository) error {
		if err := accountRepo.Create(account); err != nil {
			return err
		}
		if account.Balance.IsZero() {
			return nil
		}
		return txRepo.Create(&entity.Transaction{
			ID:           uuid.New().String(),
			AccountID:    account.ID,
			Date:         now,
			Amount:       account.Balance,
			Type:         entity.TxDeposit,
			Description:  "Açılış bakiyesi",
			BalanceAfter: account.Balance,
			CreatedAt:    now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// Get hesabı döner.
func (uc *AccountUseCase) Get(id string) (*dto.AccountResponse, error) {
	account, err := uc.accountRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	return toAccountResponse(account), nil
}

// List tüm hesapları döner.
func (uc *AccountUseCase) List() ([]dto.AccountResponse, error) {
	accounts, err := uc.accountRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, *toAccountResponse(a))
	}
	return out, nil
}

// Update hesabın tanım alanlarını günceller; bakiyeye dokunmaz.
func (uc *AccountUseCase) Update(id string, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	account, err := uc.accountRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	account.Name = in.Name
	account.IBAN = in.IBAN
	account.BankName = in.BankName
	account.Branch = in.Branch
	account.UpdatedAt = time.Now()
	if err := uc.accountRepo.Update(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// Transactions hesabın hareketlerini sayfalı listeler.
func (uc *AccountUseCase) Transactions(accountID string, limit, offset int) ([]dto.TransactionResponse, error) {
	account, err := uc.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	txs, err := uc.txRepo.ListByAccount(accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, *toTransactionResponse(tx))
	}
	return out, nil
}

var signedTxTypes = map[string]bool{
	entity.TxDeposit:    true,  // giriş
	entity.TxCollection: true,  // giriş
	entity.TxWithdrawal: false, // çıkış
	entity.TxPayment:    false, // çıkış
}

// RecordTransaction hesaba manuel hareket yazar. Tutar pozitif alınır,
// işaret hareket türünden gelir; hesap yazım boyunca kilitlenir.
func (uc *AccountUseCase) RecordTransaction(ctx context.Context, accountID string, in dto.RecordTransactionRequest) (*dto.TransactionResponse, error) {
	inflow, ok := signedTxTypes[in.Type]
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	date := time.Now()
	if in.Date != "" {
		d, err := time.Parse(dateLayout, in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = d
	}
	amount := in.Amount
	if !inflow {
		amount = amount.Neg()
	}
	var created *entity.Transaction
	err := uc.txRunner.RunTreasury(ctx, func(accountRepo repository.AccountRepository, txRepo repository.TransactionRepository) error {
		account, err := accountRepo.GetByIDForUpdate(accountID)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.ErrNotFound
		}
		newBalance := account.Balance.Add(amount)
		created = &entity.Transaction{
			ID:           uuid.New().String(),
			AccountID:    account.ID,
			Date:         date,
			Amount:       amount,
			Type:         in.Type,
			Description:  in.Description,
			BalanceAfter: newBalance,
			CreatedAt:    time.Now(),
		}
		if err := txRepo.Create(created); err != nil {
			return err
		}
		return accountRepo.UpdateBalance(account.ID, newBalance)
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(created), nil
}

// Transfer iki hesap arasında virman yapar. Para birimleri aynı olmalıdır;
// iki TRANSFER bacağı ortak bir RelatedID ile tek transaction içinde yazılır.
// Hesaplar kilitlenme sırası sabit olsun diye ID sırasıyla kilitlenir.
func (uc *AccountUseCase) Transfer(ctx context.Context, in dto.TransferRequest) error {
	if in.FromAccountID == "" || in.ToAccountID == "" || in.FromAccountID == in.ToAccountID {
		return domain.ErrInvalidInput
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	transferID := uuid.New().String()
	now := time.Now()
	return uc.txRunner.RunTreasury(ctx, func(accountRepo repository.AccountRepository, txRepo repository.TransactionRepository) error {
		firstID, secondID := in.FromAccountID, in.ToAccountID
		if secondID < firstID {
			firstID, secondID = secondID, firstID
		}
		locked := make(map[string]*entity.Account, 2)
		for _, id := range []string{firstID, secondID} {
			account, err := accountRepo.GetByIDForUpdate(id)
			if err != nil {
				return err
			}
			if account == nil {
				return domain.ErrNotFound
			}
			locked[id] = account
		}
		from := locked[in.FromAccountID]
		to := locked[in.ToAccountID]
		if from.Currency != to.Currency {
			return domain.ErrCurrencyMismatch
		}

		fromBalance := from.Balance.Sub(in.Amount)
		if err := txRepo.Create(&entity.Transaction{
			ID:           uuid.New().String(),
			AccountID:    from.ID,
			Date:         now,
			Amount:       in.Amount.Neg(),
			Type:         entity.TxTransfer,
			Description:  transferDescription(in.Description, to.Name, "giden"),
			RelatedID:    transferID,
			BalanceAfter: fromBalance,
			CreatedAt:    now,
		}); err != nil {
			return err
		}
		if err := accountRepo.UpdateBalance(from.ID, fromBalance); err != nil {
			return err
		}

		toBalance := to.Balance.Add(in.Amount)
		if err := txRepo.Create(&entity.Transaction{
			ID:           uuid.New().String(),
			AccountID:    to.ID,
			Date:         now,
			Amount:       in.Amount,
			Type:         entity.TxTransfer,
			Description:  transferDescription(in.Description, from.Name, "gelen"),
			RelatedID:    transferID,
			BalanceAfter: toBalance,
			CreatedAt:    now,
		}); err != nil {
			return err
		}
		return accountRepo.UpdateBalance(to.ID, toBalance)
	})
}

// Delete hesabı siler; üzerinde hareket olan hesap silinemez.
func (uc *AccountUseCase) Delete(id string) error {
	account, err := uc.accountRepo.GetByID(id)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrNotFound
	}
	count, err := uc.txRepo.CountByAccount(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrAccountHasTransactions
	}
	return uc.accountRepo.Delete(id)
}

// RebuildBalance önbellek bakiyeyi hareket toplamından yeniden kurar ve
// yeni bakiyeyi döner.
func (uc *AccountUseCase) RebuildBalance(ctx context.Context, id string) (*dto.AccountResponse, error) {
	var rebuilt *entity.Account
	err := uc.txRunner.RunTreasury(ctx, func(accountRepo repository.AccountRepository, txRepo repository.TransactionRepository) error {
		account, err := accountRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.ErrNotFound
		}
		sum, err := txRepo.SumByAccount(id)
		if err != nil {
			return err
		}
		account.Balance = sum
		rebuilt = account
		return accountRepo.UpdateBalance(id, sum)
	})
	if err != nil {
		return nil, err
	}
	return toAccountResponse(rebuilt), nil
}

func transferDescription(note, otherAccount, direction string) string {
	if note != "" {
		return "Virman (" + direction + "): " + note
	}
	return "Virman (" + direction + ") - " + otherAccount
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	return &dto.AccountResponse{
		ID:       a.ID,
		Name:     a.Name,
		Type:     a.Type,
		Currency: a.Currency,
		Balance:  a.Balance,
		IBAN:     a.IBAN,
		BankName: a.BankName,
		Branch:   a.Branch,
	}
}

func toTransactionResponse(tx *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:           tx.ID,
		AccountID:    tx.AccountID,
		Date:         tx.Date.Format(dateLayout),
		Amount:       tx.Amount,
		Type:         tx.Type,
		Description:  tx.Description,
		RelatedID:    tx.RelatedID,
		BalanceAfter: tx.BalanceAfter,
	}
}
