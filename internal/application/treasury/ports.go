package treasury

import (
	"context"

	"github.com/litrosmakina/ticari-api/internal/domain/repository"
)

// TreasuryTxRunner hesap hareketi yazımlarını tek veritabanı transaction'ı
// içinde çalıştırır; callback'e transaction'a bağlı repo'lar geçilir.
type TreasuryTxRunner interface {
	RunTreasury(ctx context.Context, fn func(
		accountRepo repository.AccountRepository,
		txRepo repository.TransactionRepository,
	) error) error
}

// CheckTxRunner çek durum geçişini ve tahsilatta doğan hesap hareketini tek
// transaction içinde çalıştırır.
type CheckTxRunner interface {
	RunCheck(ctx context.Context, fn func(
		checkRepo repository.CheckRepository,
		accountRepo repository.AccountRepository,
		txRepo repository.TransactionRepository,
	) error) error
}
