package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/litrosmakina/ticari-api/internal/domain"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
)

// PeriodStatement bir dönem mutabakatının hesap sonucudur.
//
// BroughtForward dönem başından önceki tüm kayıtların net TRY etkisidir
// (devreden bakiye). Lines dönem içi kayıtları devirle tohumlanmış yürüyen
// bakiyeyle içerir. FinalBalance, aynı bitiş tarihi için tam ekstrenin
// BalanceAsOf sonucuna eşittir; bu eşitlik motorun tutarlılık garantisidir.
type PeriodStatement struct {
	PeriodStart    time.Time
	PeriodEnd      time.Time
	BroughtForward decimal.Decimal
	Lines          []Entry
	FinalBalance   decimal.Decimal
}

// BuildPeriodStatement dönem mutabakat hesabını yapar: geçmişi dönem
// sınırında böler, öncekileri tek bir devreden bakiyede toplar, dönem içi
// kayıtları [start, end] aralığında (uçlar dahil) ekstre kurallarıyla yeniden
// yürütür.
func BuildPeriodStatement(docs []*entity.Document, payments []*entity.Payment, start, end time.Time) (*PeriodStatement, error) {
	if end.Before(start) {
		return nil, domain.ErrInvalidPeriod
	}
	entries, err := collectEntries(docs, payments)
	if err != nil {
		return nil, err
	}
	sortEntries(entries)

	broughtForward := decimal.Zero
	var inPeriod []Entry
	for _, e := range entries {
		switch {
		case e.Date.Before(start):
			broughtForward = broughtForward.Add(e.BaseEffect)
		case !e.Date.After(end):
			inPeriod = append(inPeriod, e)
		}
	}

	running := broughtForward
	for i := range inPeriod {
		running = running.Add(inPeriod[i].BaseEffect)
		inPeriod[i].Balance = running
	}

	return &PeriodStatement{
		PeriodStart:    start,
		PeriodEnd:      end,
		BroughtForward: broughtForward,
		Lines:          inPeriod,
		FinalBalance:   running,
	}, nil
}
