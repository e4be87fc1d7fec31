package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/litrosmakina/ticari-api/internal/application/sales"
	"github.com/litrosmakina/ticari-api/internal/application/treasury"
	"github.com/litrosmakina/ticari-api/internal/domain/repository"
)

var _ sales.DocumentTxRunner = (*TxRunner)(nil)
var _ sales.PaymentTxRunner = (*TxRunner)(nil)
var _ treasury.TreasuryTxRunner = (*TxRunner)(nil)
var _ treasury.CheckTxRunner = (*TxRunner)(nil)

// TxRunner callback'leri PostgreSQL transaction'ı içinde çalıştırır.
// Callback hata dönerse rollback, dönmezse commit yapılır.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner runner'ı havuzla kurar.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunDocument belge + satır + stok yazımlarını tek transaction'da çalıştırır.
func (r *TxRunner) RunDocument(ctx context.Context, fn func(
	docRepo repository.DocumentRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewDocumentRepository(tx), NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPayment tahsilat + çek + hesap hareketi yazımlarını tek transaction'da
// çalıştırır.
func (r *TxRunner) RunPayment(ctx context.Context, fn func(
	paymentRepo repository.PaymentRepository,
	checkRepo repository.CheckRepository,
	accountRepo repository.AccountRepository,
	txRepo repository.TransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewPaymentRepository(tx),
		NewCheckRepository(tx),
		NewAccountRepository(tx),
		NewTransactionRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunTreasury hesap + hareket yazımlarını tek transaction'da çalıştırır.
func (r *TxRunner) RunTreasury(ctx context.Context, fn func(
	accountRepo repository.AccountRepository,
	txRepo repository.TransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewAccountRepository(tx), NewTransactionRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCheck çek geçişi + hesap hareketi yazımlarını tek transaction'da
// çalıştırır.
func (r *TxRunner) RunCheck(ctx context.Context, fn func(
	checkRepo repository.CheckRepository,
	accountRepo repository.AccountRepository,
	txRepo repository.TransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCheckRepository(tx), NewAccountRepository(tx), NewTransactionRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
