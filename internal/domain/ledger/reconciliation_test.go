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

// TestBuildPeriodStatement_UctanUca uçtan uca senaryo: devir 1000, dönem içi
// tek tahsilat, dönem sonu 600.
func TestBuildPeriodStatement_UctanUca(t *testing.T) {
	docs := []*entity.Document{invoice("I1", "2024-01-10", 1000, entity.CurrencyTRY, 1.0)}
	pays := []*entity.Payment{payment("P1", "2024-02-01", 400, entity.CurrencyTRY, 1.0)}

	ps, err := ledger.BuildPeriodStatement(docs, pays, date("2024-02-01"), date("2024-02-28"))
	require.NoError(t, err)

	assert.True(t, ps.BroughtForward.Equal(decimal.NewFromInt(1000)), "devreden bakiye")
	require.Len(t, ps.Lines, 1)
	assert.Equal(t, "P1", ps.Lines[0].ID)
	assert.True(t, ps.Lines[0].Balance.Equal(decimal.NewFromInt(600)))
	assert.True(t, ps.FinalBalance.Equal(decimal.NewFromInt(600)))
}

// TestBuildPeriodStatement_EkstreTutarliligi herhangi bir D bitiş tarihi için
// dönem motorunun sonucu, tam ekstrenin aynı tarihteki bakiyesine eşit
// olmalıdır (bakiye tutarlılık özelliği).
func TestBuildPeriodStatement_EkstreTutarliligi(t *testing.T) {
	docs := []*entity.Document{
		invoice("I1", "2024-01-10", 1000, entity.CurrencyTRY, 1.0),
		invoice("I2", "2024-02-15", 250, entity.CurrencyEUR, 34.5),
		invoice("I3", "2024-04-01", 90, entity.CurrencyUSD, 32.1),
	}
	pays := []*entity.Payment{
		payment("P1", "2024-02-01", 400, entity.CurrencyTRY, 1.0),
		payment("P2", "2024-03-20", 100, entity.CurrencyEUR, 35.0),
	}

	full, err := ledger.BuildStatement(docs, pays)
	require.NoError(t, err)

	for _, end := range []string{"2024-01-31", "2024-02-15", "2024-03-31", "2024-12-31"} {
		ps, err := ledger.BuildPeriodStatement(docs, pays, date("2024-01-01"), date(end))
		require.NoError(t, err)
		assert.True(t, ps.FinalBalance.Equal(full.BalanceAsOf(date(end))),
			"bitiş %s: dönem %s != ekstre %s", end, ps.FinalBalance, full.BalanceAsOf(date(end)))
	}

	// Dönem başlangıcı geçmişi bölse de sonuç değişmemeli: devir + dönem içi
	// toplamı her bölme noktasında aynı bitiş bakiyesini vermeli.
	for _, start := range []string{"2024-01-01", "2024-02-01", "2024-03-01"} {
		ps, err := ledger.BuildPeriodStatement(docs, pays, date(start), date("2024-12-31"))
		require.NoError(t, err)
		assert.True(t, ps.FinalBalance.Equal(full.Balance), "başlangıç %s", start)
	}
}

// TestBuildPeriodStatement_SinirlarDahil dönem sınırlarındaki kayıtlar dahil,
// başlangıçtan kesin olarak önceki kayıtlar devirde.
func TestBuildPeriodStatement_SinirlarDahil(t *testing.T) {
	docs := []*entity.Document{
		invoice("I1", "2024-01-31", 100, entity.CurrencyTRY, 1.0), // devir
		invoice("I2", "2024-02-01", 200, entity.CurrencyTRY, 1.0), // dönem başı, dahil
		invoice("I3", "2024-02-29", 300, entity.CurrencyTRY, 1.0), // dönem sonu, dahil
		invoice("I4", "2024-03-01", 400, entity.CurrencyTRY, 1.0), // dönem dışı
	}

	ps, err := ledger.BuildPeriodStatement(docs, nil, date("2024-02-01"), date("2024-02-29"))
	require.NoError(t, err)
	assert.True(t, ps.BroughtForward.Equal(decimal.NewFromInt(100)))
	require.Len(t, ps.Lines, 2)
	assert.True(t, ps.FinalBalance.Equal(decimal.NewFromInt(600)))
}

func TestBuildPeriodStatement_GecersizDonem(t *testing.T) {
	_, err := ledger.BuildPeriodStatement(nil, nil, date("2024-03-01"), date("2024-02-01"))
	require.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

// TestBuildPeriodStatement_BosDonem kayıtsız dönemde devir son bakiyeye eşittir.
func TestBuildPeriodStatement_BosDonem(t *testing.T) {
	docs := []*entity.Document{invoice("I1", "2024-01-10", 1000, entity.CurrencyTRY, 1.0)}

	ps, err := ledger.BuildPeriodStatement(docs, nil, date("2024-06-01"), date("2024-06-30"))
	require.NoError(t, err)
	assert.Empty(t, ps.Lines)
	assert.True(t, ps.BroughtForward.Equal(decimal.NewFromInt(1000)))
	assert.True(t, ps.FinalBalance.Equal(ps.BroughtForward))
}
