package treasury

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/domain"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
	"github.com/litrosmakina/ticari-api/internal/domain/repository"
)

type fakeCheckRepo struct {
	checks map[string]*entity.Check
}

func newFakeCheckRepo() *fakeCheckRepo {
	return &fakeCheckRepo{checks: make(map[string]*entity.Check)}
}

func (r *fakeCheckRepo) Create(c *entity.Check) error { r.checks[c.ID] = c; return nil }

func (r *fakeCheckRepo) GetByID(id string) (*entity.Check, error) {
	c, ok := r.checks[id]
	if !ok {
		return nil, nil
	}
	copy := *c
	return &copy, nil
}

func (r *fakeCheckRepo) GetByIDForUpdate(id string) (*entity.Check, error) {
	return r.GetByID(id)
}

func (r *fakeCheckRepo) List(status string, limit, offset int) ([]*entity.Check, error) {
	var out []*entity.Check
	for _, c := range r.checks {
		if status == "" || c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCheckRepo) ListByCustomer(customerID string) ([]*entity.Check, error) {
	var out []*entity.Check
	for _, c := range r.checks {
		if c.CustomerID == customerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCheckRepo) Update(c *entity.Check) error { r.checks[c.ID] = c; return nil }

type fakeCheckRunner struct {
	checkRepo   *fakeCheckRepo
	accountRepo *fakeAccountRepo
	txRepo      *fakeTransactionRepo
}

func (r *fakeCheckRunner) RunCheck(_ context.Context, fn func(repository.CheckRepository, repository.AccountRepository, repository.TransactionRepository) error) error {
	return fn(r.checkRepo, r.accountRepo, r.txRepo)
}

func newCheckFixture() (*CheckUseCase, *fakeCheckRepo, *fakeAccountRepo, *fakeTransactionRepo) {
	checkRepo := newFakeCheckRepo()
	accountRepo := newFakeAccountRepo()
	txRepo := &fakeTransactionRepo{}
	runner := &fakeCheckRunner{checkRepo: checkRepo, accountRepo: accountRepo, txRepo: txRepo}
	return NewCheckUseCase(checkRepo, runner), checkRepo, accountRepo, txRepo
}

func seedCheck(repo *fakeCheckRepo, id, status string, amount float64, currency string) {
	repo.checks[id] = &entity.Check{
		ID:          id,
		CheckNumber: "CK-" + id,
		Amount:      decimal.NewFromFloat(amount),
		Currency:    currency,
		IssueDate:   time.Now(),
		DueDate:     time.Now().AddDate(0, 1, 0),
		Status:      status,
		CustomerID:  "c1",
	}
}

// TestCheckUpdateStatus_Tahsil COLLECTED geçişi çek tutarını hesaba
// COLLECTION hareketi olarak yazar ve bakiyeyi günceller.
func TestCheckUpdateStatus_Tahsil(t *testing.T) {
	uc, checkRepo, accountRepo, txRepo := newCheckFixture()
	seedCheck(checkRepo, "ck1", entity.CheckPending, 1450.50, entity.CurrencyTRY)
	seedAccount(accountRepo, "a1", entity.CurrencyTRY, 1000)

	resp, err := uc.UpdateStatus(context.Background(), "ck1", dto.UpdateCheckStatusRequest{
		Status:    entity.CheckCollected,
		AccountID: "a1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CheckCollected, resp.Status)

	require.Len(t, txRepo.txs, 1)
	assert.Equal(t, entity.TxCollection, txRepo.txs[0].Type)
	assert.Equal(t, "ck1", txRepo.txs[0].RelatedID)
	assert.True(t, txRepo.txs[0].Amount.Equal(decimal.NewFromFloat(1450.50)))
	assert.True(t, accountRepo.accounts["a1"].Balance.Equal(decimal.NewFromFloat(2450.50)))
}

// TestCheckUpdateStatus_TahsildeHesapZorunlu COLLECTED geçişi hesap
// verilmeden yapılamaz.
func TestCheckUpdateStatus_TahsildeHesapZorunlu(t *testing.T) {
	uc, checkRepo, _, _ := newCheckFixture()
	seedCheck(checkRepo, "ck1", entity.CheckPending, 100, entity.CurrencyTRY)

	_, err := uc.UpdateStatus(context.Background(), "ck1", dto.UpdateCheckStatusRequest{
		Status: entity.CheckCollected,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestCheckUpdateStatus_KarsiliksizHesapsiz BOUNCED ve RETURNED geçişleri
// hesap hareketi üretmez.
func TestCheckUpdateStatus_KarsiliksizHesapsiz(t *testing.T) {
	uc, checkRepo, _, txRepo := newCheckFixture()
	seedCheck(checkRepo, "ck1", entity.CheckPending, 100, entity.CurrencyTRY)

	resp, err := uc.UpdateStatus(context.Background(), "ck1", dto.UpdateCheckStatusRequest{
		Status: entity.CheckBounced,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CheckBounced, resp.Status)
	assert.Empty(t, txRepo.txs)
}

// TestCheckUpdateStatus_IkinciTahsilTekHareket ikinci tahsil denemesi
// kilitli okumada COLLECTED durumunu görür; tahsilat hareketi ikinci kez
// yazılmaz, bakiye çek tutarı kadar artar.
func TestCheckUpdateStatus_IkinciTahsilTekHareket(t *testing.T) {
	uc, checkRepo, accountRepo, txRepo := newCheckFixture()
	seedCheck(checkRepo, "ck1", entity.CheckPending, 500, entity.CurrencyTRY)
	seedAccount(accountRepo, "a1", entity.CurrencyTRY, 0)

	in := dto.UpdateCheckStatusRequest{Status: entity.CheckCollected, AccountID: "a1"}
	_, err := uc.UpdateStatus(context.Background(), "ck1", in)
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), "ck1", in)
	assert.ErrorIs(t, err, domain.ErrCheckNotPending)

	require.Len(t, txRepo.txs, 1)
	assert.True(t, accountRepo.accounts["a1"].Balance.Equal(decimal.NewFromFloat(500)))
}

// TestCheckUpdateStatus_TerminalGeriAlinamaz terminal durumdaki çekte her
// geçiş denemesi reddedilir.
func TestCheckUpdateStatus_TerminalGeriAlinamaz(t *testing.T) {
	uc, checkRepo, accountRepo, txRepo := newCheckFixture()
	seedAccount(accountRepo, "a1", entity.CurrencyTRY, 0)

	for _, terminal := range []string{entity.CheckCollected, entity.CheckBounced, entity.CheckReturned} {
		seedCheck(checkRepo, "ck-"+terminal, terminal, 100, entity.CurrencyTRY)
		for _, target := range []string{entity.CheckCollected, entity.CheckBounced, entity.CheckReturned} {
			_, err := uc.UpdateStatus(context.Background(), "ck-"+terminal, dto.UpdateCheckStatusRequest{
				Status:    target,
				AccountID: "a1",
			})
			assert.ErrorIs(t, err, domain.ErrCheckNotPending)
		}
		assert.Equal(t, terminal, checkRepo.checks["ck-"+terminal].Status)
	}
	assert.Empty(t, txRepo.txs)
}

// TestCheckUpdateStatus_PendingHedefOlamaz PENDING'e dönüş geçersizdir.
func TestCheckUpdateStatus_PendingHedefOlamaz(t *testing.T) {
	uc, checkRepo, _, _ := newCheckFixture()
	seedCheck(checkRepo, "ck1", entity.CheckPending, 100, entity.CurrencyTRY)

	_, err := uc.UpdateStatus(context.Background(), "ck1", dto.UpdateCheckStatusRequest{
		Status: entity.CheckPending,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestCheckUpdateStatus_ParaBirimiUyusmazligi çek TRY, hesap EUR ise
// tahsilat reddedilir ve çek PENDING kalır.
func TestCheckUpdateStatus_ParaBirimiUyusmazligi(t *testing.T) {
	uc, checkRepo, accountRepo, txRepo := newCheckFixture()
	seedCheck(checkRepo, "ck1", entity.CheckPending, 100, entity.CurrencyTRY)
	seedAccount(accountRepo, "a1", entity.CurrencyEUR, 0)

	_, err := uc.UpdateStatus(context.Background(), "ck1", dto.UpdateCheckStatusRequest{
		Status:    entity.CheckCollected,
		AccountID: "a1",
	})
	assert.ErrorIs(t, err, domain.ErrCurrencyMismatch)
	assert.Empty(t, txRepo.txs)
}
