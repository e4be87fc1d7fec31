package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litrosmakina/ticari-api/internal/domain"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
	"github.com/litrosmakina/ticari-api/internal/domain/ledger"
)

func TestBaseAmount(t *testing.T) {
	// TRY: kur 1 ile veya kur hiç yazılmamışken tutar aynen döner.
	got, err := ledger.BaseAmount(decimal.NewFromInt(250), decimal.NewFromInt(1), entity.CurrencyTRY)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(250)))

	got, err = ledger.BaseAmount(decimal.NewFromInt(250), decimal.Zero, entity.CurrencyTRY)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(250)))

	// Döviz: tutar x donmuş kur, tam ondalık.
	got, err = ledger.BaseAmount(decimal.NewFromInt(100), decimal.NewFromFloat(49.3595), entity.CurrencyEUR)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromFloat(4935.95)), "bulunan: %s", got)
}

func TestBaseAmount_KurEksik(t *testing.T) {
	_, err := ledger.BaseAmount(decimal.NewFromInt(100), decimal.Zero, entity.CurrencyUSD)
	require.ErrorIs(t, err, domain.ErrMissingExchangeRate)

	_, err = ledger.BaseAmount(decimal.NewFromInt(100), decimal.NewFromInt(-3), entity.CurrencyEUR)
	require.ErrorIs(t, err, domain.ErrMissingExchangeRate)
}
