package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litrosmakina/ticari-api/internal/domain"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
)

func newPendingCheck() *entity.Check {
	return &entity.Check{
		ID:          "chk1",
		CheckNumber: "0001234",
		BankName:    "İş Bankası",
		Drawer:      "ANT TRAKTÖR LTD. ŞTİ.",
		Amount:      decimal.NewFromInt(50000),
		Currency:    entity.CurrencyTRY,
		Status:      entity.CheckPending,
		CustomerID:  "c1",
	}
}

// TestCheckTransition_PendingToTerminal PENDING'den her terminal duruma tek
// geçiş yapılabilir.
func TestCheckTransition_PendingToTerminal(t *testing.T) {
	for _, target := range []string{entity.CheckCollected, entity.CheckBounced, entity.CheckReturned} {
		c := newPendingCheck()
		require.NoError(t, c.TransitionTo(target))
		assert.Equal(t, target, c.Status)
		assert.True(t, c.IsTerminal())
	}
}

// TestCheckTransition_TerminalGeriAlinamaz terminal durumdan ikinci bir geçiş
// denemesi reddedilir.
func TestCheckTransition_TerminalGeriAlinamaz(t *testing.T) {
	c := newPendingCheck()
	require.NoError(t, c.TransitionTo(entity.CheckCollected))

	err := c.TransitionTo(entity.CheckBounced)
	require.ErrorIs(t, err, domain.ErrCheckNotPending)
	assert.Equal(t, entity.CheckCollected, c.Status, "durum değişmemeli")
}

// TestCheckTransition_GecersizHedef PENDING'e dönüş veya bilinmeyen durum
// geçersiz girdi sayılır.
func TestCheckTransition_GecersizHedef(t *testing.T) {
	c := newPendingCheck()
	require.ErrorIs(t, c.TransitionTo(entity.CheckPending), domain.ErrInvalidInput)
	require.ErrorIs(t, c.TransitionTo("TORN"), domain.ErrInvalidInput)
	assert.Equal(t, entity.CheckPending, c.Status)
}

func TestLineTotal(t *testing.T) {
	// 5 adet x 200, %10 iskonto -> 900
	got := entity.LineTotal(decimal.NewFromInt(5), decimal.NewFromInt(200), decimal.NewFromInt(10))
	assert.True(t, got.Equal(decimal.NewFromInt(900)), "bulunan: %s", got)

	// İskontosuz.
	got = entity.LineTotal(decimal.NewFromInt(3), decimal.NewFromFloat(137.50), decimal.Zero)
	assert.True(t, got.Equal(decimal.NewFromFloat(412.50)))
}
