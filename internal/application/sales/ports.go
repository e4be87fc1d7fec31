package sales

import (
	"context"

	"github.com/litrosmakina/ticari-api/internal/domain/repository"
)

// DocumentTxRunner fatura kesimini ve stok düşümünü tek veritabanı
// transaction'ında çalıştırır: stok yetersizse tamamı geri alınır.
type DocumentTxRunner interface {
	RunDocument(ctx context.Context, fn func(
		docRepo repository.DocumentRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// PaymentTxRunner tahsilat kaydını, yan etkilerini (çek oluşturma veya hesap
// hareketi) aynı transaction içinde çalıştırır.
type PaymentTxRunner interface {
	RunPayment(ctx context.Context, fn func(
		paymentRepo repository.PaymentRepository,
		checkRepo repository.CheckRepository,
		accountRepo repository.AccountRepository,
		txRepo repository.TransactionRepository,
	) error) error
}
