package sales

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/domain"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
)

func (f *salesFixture) paymentUC() *PaymentUseCase {
	return NewPaymentUseCase(f.payments, f.customers, f.docs, f.runner)
}

func (f *salesFixture) withAccount(id, currency string, balance int64) *salesFixture {
	f.accounts.accounts[id] = &entity.Account{
		ID:       id,
		Name:     "Merkez Kasa",
		Type:     "CASH",
		Currency: currency,
		Balance:  decimal.NewFromInt(balance),
	}
	return f
}

// ──────────────────────────────────────────────────────────────────────────────
// Nakit/banka tahsilatı
// ──────────────────────────────────────────────────────────────────────────────

// Kasa tahsilatı tek adımda hem tahsilatı hem COLLECTION hareketini yazmalı.
func TestPaymentCreate_KasaTahsilati(t *testing.T) {
	f := newSalesFixture().withAccount("a1", entity.CurrencyTRY, 1000)
	uc := f.paymentUC()

	payment, err := uc.Create(context.Background(), dto.CreatePaymentRequest{
		CustomerID: "c1",
		AccountID:  "a1",
		Date:       "2026-02-01",
		Amount:     decimal.NewFromInt(500),
		Currency:   entity.CurrencyTRY,
		Method:     entity.MethodCash,
	})
	require.NoError(t, err)

	assert.True(t, payment.ExchangeRate.Equal(decimal.NewFromInt(1)), "TRY tahsilatta kur 1 olmalı")

	require.Len(t, f.txs.txs, 1, "tek COLLECTION hareketi yazılmalı")
	tx := f.txs.txs[0]
	assert.Equal(t, entity.TxCollection, tx.Type)
	assert.Equal(t, payment.ID, tx.RelatedID, "hareket tahsilata bağlanmalı")
	assert.True(t, tx.BalanceAfter.Equal(decimal.NewFromInt(1500)))
	assert.True(t, f.accounts.accounts["a1"].Balance.Equal(decimal.NewFromInt(1500)),
		"hesap bakiyesi güncellenmeli")
}

// Tahsilat para birimi hesabınkiyle uyuşmalı.
func TestPaymentCreate_ParaBirimiUyusmazligi(t *testing.T) {
	f := newSalesFixture().withAccount("a1", entity.CurrencyTRY, 0)
	uc := f.paymentUC()

	_, err := uc.Create(context.Background(), dto.CreatePaymentRequest{
		CustomerID:   "c1",
		AccountID:    "a1",
		Date:         "2026-02-01",
		Amount:       decimal.NewFromInt(100),
		Currency:     entity.CurrencyUSD,
		ExchangeRate: decimal.RequireFromString("42.5"),
		Method:       entity.MethodBank,
	})
	assert.ErrorIs(t, err, domain.ErrCurrencyMismatch)
}

// Nakit/banka tahsilatında hesap zorunlu.
func TestPaymentCreate_HesapsizNakitOlmaz(t *testing.T) {
	f := newSalesFixture()
	uc := f.paymentUC()

	_, err := uc.Create(context.Background(), dto.CreatePaymentRequest{
		CustomerID: "c1",
		Date:       "2026-02-01",
		Amount:     decimal.NewFromInt(100),
		Currency:   entity.CurrencyTRY,
		Method:     entity.MethodCash,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Çekli tahsilat
// ──────────────────────────────────────────────────────────────────────────────

// Çekli tahsilat PENDING çek oluşturmalı, hesap hareketi yazmamalı.
func TestPaymentCreate_CekliTahsilat(t *testing.T) {
	f := newSalesFixture()
	uc := f.paymentUC()

	payment, err := uc.Create(context.Background(), dto.CreatePaymentRequest{
		CustomerID:  "c1",
		Date:        "2026-02-01",
		Amount:      decimal.NewFromInt(25000),
		Currency:    entity.CurrencyTRY,
		Method:      entity.MethodCheck,
		CheckNumber: "0045821",
		BankName:    "Ziraat Bankası",
		Drawer:      "Aydın Makine San. A.Ş.",
		DueDate:     "2026-05-01",
	})
	require.NoError(t, err)
	require.NotEmpty(t, payment.CheckID, "tahsilat çeke bağlanmalı")

	check := f.checks.checks[payment.CheckID]
	require.NotNil(t, check)
	assert.Equal(t, entity.CheckPending, check.Status, "yeni çek PENDING olmalı")
	assert.Equal(t, "0045821", check.CheckNumber)
	assert.True(t, check.Amount.Equal(decimal.NewFromInt(25000)))

	assert.Empty(t, f.txs.txs, "çek tahsil edilmeden hesap hareketi yazılmamalı")
}

// Vade tarihi olmayan çek kabul edilmemeli.
func TestPaymentCreate_VadesizCekOlmaz(t *testing.T) {
	f := newSalesFixture()
	uc := f.paymentUC()

	_, err := uc.Create(context.Background(), dto.CreatePaymentRequest{
		CustomerID:  "c1",
		Date:        "2026-02-01",
		Amount:      decimal.NewFromInt(1000),
		Currency:    entity.CurrencyTRY,
		Method:      entity.MethodCheck,
		CheckNumber: "0045821",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tahsilat iptali
// ──────────────────────────────────────────────────────────────────────────────

// İptal, ters işaretli COLLECTION kaydı yazıp bakiyeyi geri almalı.
func TestPaymentDelete_TersKayitlaIptal(t *testing.T) {
	f := newSalesFixture().withAccount("a1", entity.CurrencyTRY, 0)
	uc := f.paymentUC()

	payment, err := uc.Create(context.Background(), dto.CreatePaymentRequest{
		CustomerID: "c1",
		AccountID:  "a1",
		Date:       "2026-02-01",
		Amount:     decimal.NewFromInt(750),
		Currency:   entity.CurrencyTRY,
		Method:     entity.MethodBank,
	})
	require.NoError(t, err)
	require.True(t, f.accounts.accounts["a1"].Balance.Equal(decimal.NewFromInt(750)))

	require.NoError(t, uc.Delete(context.Background(), payment.ID))

	require.Len(t, f.txs.txs, 2, "iptal ikinci bir hareket yazmalı")
	reversal := f.txs.txs[1]
	assert.True(t, reversal.Amount.Equal(decimal.NewFromInt(-750)), "ters kayıt negatif olmalı")
	assert.Equal(t, payment.ID, reversal.RelatedID)
	assert.True(t, f.accounts.accounts["a1"].Balance.IsZero(), "bakiye iptalle sıfırlanmalı")
	assert.Nil(t, f.payments.payments[payment.ID], "tahsilat kaydı silinmeli")
}

// Çekle yapılan tahsilat bu uçtan silinememeli.
func TestPaymentDelete_CekliTahsilatSilinemez(t *testing.T) {
	f := newSalesFixture()
	uc := f.paymentUC()

	payment, err := uc.Create(context.Background(), dto.CreatePaymentRequest{
		CustomerID:  "c1",
		Date:        "2026-02-01",
		Amount:      decimal.NewFromInt(1000),
		Currency:    entity.CurrencyTRY,
		Method:      entity.MethodCheck,
		CheckNumber: "0045821",
		DueDate:     "2026-06-01",
	})
	require.NoError(t, err)

	err = uc.Delete(context.Background(), payment.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotNil(t, f.payments.payments[payment.ID], "kayıt yerinde kalmalı")
}
