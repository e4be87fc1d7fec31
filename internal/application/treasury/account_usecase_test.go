package treasury

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/domain"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
	"github.com/litrosmakina/ticari-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Bellek içi sahte repo'lar
// ──────────────────────────────────────────────────────────────────────────────

type fakeAccountRepo struct {
	accounts map[string]*entity.Account
	// lockOrder kilit alma sırasını kaydeder; virman testinde deterministik
	// sıralama buradan doğrulanır.
	lockOrder []string
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*entity.Account)}
}

func (r *fakeAccountRepo) Create(a *entity.Account) error { r.accounts[a.ID] = a; return nil }

func (r *fakeAccountRepo) GetByIDForUpdate(id string) (*entity.Account, error) {
	r.lockOrder = append(r.lockOrder, id)
	return r.GetByID(id)
}

func (r *fakeAccountRepo) GetByID(id string) (*entity.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	copy := *a
	return &copy, nil
}

func (r *fakeAccountRepo) List() ([]*entity.Account, error) {
	out := make([]*entity.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAccountRepo) Update(a *entity.Account) error { r.accounts[a.ID] = a; return nil }

func (r *fakeAccountRepo) UpdateBalance(id string, balance decimal.Decimal) error {
	a, ok := r.accounts[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Balance = balance
	return nil
}

func (r *fakeAccountRepo) Delete(id string) error { delete(r.accounts, id); return nil }

type fakeTransactionRepo struct {
	txs []*entity.Transaction
}

func (r *fakeTransactionRepo) Create(tx *entity.Transaction) error {
	r.txs = append(r.txs, tx)
	return nil
}

func (r *fakeTransactionRepo) ListByAccount(accountID string, limit, offset int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.txs {
		if tx.AccountID == accountID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) SumByAccount(accountID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, tx := range r.txs {
		if tx.AccountID == accountID {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum, nil
}

func (r *fakeTransactionRepo) CountByAccount(accountID string) (int, error) {
	n := 0
	for _, tx := range r.txs {
		if tx.AccountID == accountID {
			n++
		}
	}
	return n, nil
}

// fakeTreasuryRunner transaction sınırını taklit eder: callback'i doğrudan
// aynı repo'larla çalıştırır.
type fakeTreasuryRunner struct {
	accountRepo *fakeAccountRepo
	txRepo      *fakeTransactionRepo
}

func (r *fakeTreasuryRunner) RunTreasury(_ context.Context, fn func(repository.AccountRepository, repository.TransactionRepository) error) error {
	return fn(r.accountRepo, r.txRepo)
}

func newAccountFixture() (*AccountUseCase, *fakeAccountRepo, *fakeTransactionRepo) {
	accountRepo := newFakeAccountRepo()
	txRepo := &fakeTransactionRepo{}
	runner := &fakeTreasuryRunner{accountRepo: accountRepo, txRepo: txRepo}
	return NewAccountUseCase(accountRepo, txRepo, runner), accountRepo, txRepo
}

func seedAccount(repo *fakeAccountRepo, id, currency string, balance float64) {
	repo.accounts[id] = &entity.Account{
		ID:       id,
		Name:     "Hesap " + id,
		Type:     entity.AccountBank,
		Currency: currency,
		Balance:  decimal.NewFromFloat(balance),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Testler
// ──────────────────────────────────────────────────────────────────────────────

// TestAccountCreate_AcilisBakiyesi açılış bakiyeli hesap bir DEPOSIT
// hareketiyle doğar; bakiye hareketlerden türetilebilir kalır.
func TestAccountCreate_AcilisBakiyesi(t *testing.T) {
	uc, _, txRepo := newAccountFixture()

	resp, err := uc.Create(context.Background(), dto.CreateAccountRequest{
		Name:     "Ana Kasa",
		Type:     entity.AccountCash,
		Currency: entity.CurrencyTRY,
		Balance:  decimal.NewFromInt(5000),
	})
	require.NoError(t, err)

	require.Len(t, txRepo.txs, 1)
	assert.Equal(t, entity.TxDeposit, txRepo.txs[0].Type)
	assert.True(t, txRepo.txs[0].Amount.Equal(decimal.NewFromInt(5000)))
	assert.True(t, resp.Balance.Equal(decimal.NewFromInt(5000)))

	sum, _ := txRepo.SumByAccount(resp.ID)
	assert.True(t, sum.Equal(resp.Balance))
}

// TestRecordTransaction_IsaretTurdenGelir tutar pozitif verilir, çıkış
// türlerinde işaret negatife çevrilir ve bakiye anlık görüntüsü yazılır.
func TestRecordTransaction_IsaretTurdenGelir(t *testing.T) {
	uc, accountRepo, txRepo := newAccountFixture()
	seedAccount(accountRepo, "a1", entity.CurrencyTRY, 1000)

	resp, err := uc.RecordTransaction(context.Background(), "a1", dto.RecordTransactionRequest{
		Type:   entity.TxWithdrawal,
		Amount: decimal.NewFromInt(300),
	})
	require.NoError(t, err)

	assert.True(t, resp.Amount.Equal(decimal.NewFromInt(-300)))
	assert.True(t, resp.BalanceAfter.Equal(decimal.NewFromInt(700)))
	assert.True(t, accountRepo.accounts["a1"].Balance.Equal(decimal.NewFromInt(700)))
	require.Len(t, txRepo.txs, 1)
}

func TestRecordTransaction_GecersizTur(t *testing.T) {
	uc, accountRepo, _ := newAccountFixture()
	seedAccount(accountRepo, "a1", entity.CurrencyTRY, 1000)

	_, err := uc.RecordTransaction(context.Background(), "a1", dto.RecordTransactionRequest{
		Type:   "DIVIDEND",
		Amount: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestTransfer_IkiBacakOrtakReferans virman iki TRANSFER bacağı üretir,
// bacaklar ortak RelatedID taşır ve bakiyeler birlikte güncellenir.
func TestTransfer_IkiBacakOrtakReferans(t *testing.T) {
	uc, accountRepo, txRepo := newAccountFixture()
	seedAccount(accountRepo, "a1", entity.CurrencyTRY, 1000)
	seedAccount(accountRepo, "a2", entity.CurrencyTRY, 200)

	err := uc.Transfer(context.Background(), dto.TransferRequest{
		FromAccountID: "a1",
		ToAccountID:   "a2",
		Amount:        decimal.NewFromInt(400),
	})
	require.NoError(t, err)

	require.Len(t, txRepo.txs, 2)
	assert.Equal(t, entity.TxTransfer, txRepo.txs[0].Type)
	assert.Equal(t, entity.TxTransfer, txRepo.txs[1].Type)
	assert.Equal(t, txRepo.txs[0].RelatedID, txRepo.txs[1].RelatedID)
	assert.NotEmpty(t, txRepo.txs[0].RelatedID)
	assert.True(t, txRepo.txs[0].Amount.Equal(decimal.NewFromInt(-400)))
	assert.True(t, txRepo.txs[1].Amount.Equal(decimal.NewFromInt(400)))

	assert.True(t, accountRepo.accounts["a1"].Balance.Equal(decimal.NewFromInt(600)))
	assert.True(t, accountRepo.accounts["a2"].Balance.Equal(decimal.NewFromInt(600)))
}

// TestTransfer_KilitSirasiDeterministik hesaplar hangi yönde verilirse
// verilsin kilitler ID sırasıyla alınır.
func TestTransfer_KilitSirasiDeterministik(t *testing.T) {
	uc, accountRepo, _ := newAccountFixture()
	seedAccount(accountRepo, "a1", entity.CurrencyTRY, 1000)
	seedAccount(accountRepo, "a2", entity.CurrencyTRY, 200)

	err := uc.Transfer(context.Background(), dto.TransferRequest{
		FromAccountID: "a2",
		ToAccountID:   "a1",
		Amount:        decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2"}, accountRepo.lockOrder)
}

func TestTransfer_FarkliParaBirimi(t *testing.T) {
	uc, accountRepo, txRepo := newAccountFixture()
	seedAccount(accountRepo, "a1", entity.CurrencyTRY, 1000)
	seedAccount(accountRepo, "a2", entity.CurrencyEUR, 200)

	err := uc.Transfer(context.Background(), dto.TransferRequest{
		FromAccountID: "a1",
		ToAccountID:   "a2",
		Amount:        decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrCurrencyMismatch)
	assert.Empty(t, txRepo.txs)
	assert.True(t, accountRepo.accounts["a1"].Balance.Equal(decimal.NewFromInt(1000)))
}

func TestTransfer_AyniHesap(t *testing.T) {
	uc, accountRepo, _ := newAccountFixture()
	seedAccount(accountRepo, "a1", entity.CurrencyTRY, 1000)

	err := uc.Transfer(context.Background(), dto.TransferRequest{
		FromAccountID: "a1",
		ToAccountID:   "a1",
		Amount:        decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestAccountDelete_HareketliHesapSilinemez üzerinde hareket olan hesabın
// silme denemesi tipik hatayla reddedilir ve hesap yerinde kalır.
func TestAccountDelete_HareketliHesapSilinemez(t *testing.T) {
	uc, accountRepo, txRepo := newAccountFixture()
	seedAccount(accountRepo, "a1", entity.CurrencyTRY, 1000)
	txRepo.txs = append(txRepo.txs, &entity.Transaction{
		ID: "t1", AccountID: "a1", Amount: decimal.NewFromInt(1000), Type: entity.TxDeposit,
	})

	err := uc.Delete("a1")
	assert.ErrorIs(t, err, domain.ErrAccountHasTransactions)
	assert.Contains(t, accountRepo.accounts, "a1")

	// Hareketsiz hesap silinebilir.
	seedAccount(accountRepo, "a2", entity.CurrencyTRY, 0)
	require.NoError(t, uc.Delete("a2"))
	assert.NotContains(t, accountRepo.accounts, "a2")
}

// TestRebuildBalance önbellek bakiye bozulsa bile hareket toplamından
// yeniden kurulur.
func TestRebuildBalance(t *testing.T) {
	uc, accountRepo, txRepo := newAccountFixture()
	seedAccount(accountRepo, "a1", entity.CurrencyTRY, 9999) // bozuk önbellek
	txRepo.txs = []*entity.Transaction{
		{ID: "t1", AccountID: "a1", Amount: decimal.NewFromInt(1000), Type: entity.TxDeposit},
		{ID: "t2", AccountID: "a1", Amount: decimal.NewFromInt(-250), Type: entity.TxWithdrawal},
	}

	resp, err := uc.RebuildBalance(context.Background(), "a1")
	require.NoError(t, err)
	assert.True(t, resp.Balance.Equal(decimal.NewFromInt(750)))
	assert.True(t, accountRepo.accounts["a1"].Balance.Equal(decimal.NewFromInt(750)))
}
