package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/litrosmakina/ticari-api/internal/domain"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
	"github.com/litrosmakina/ticari-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)
var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const accountColumns = `id, name, type, currency, balance, iban, bank_name, branch, created_at, updated_at`

// AccountRepo AccountRepository uyarlaması (pool veya tx ile kullanılabilir).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository adaptörü kurar. Pool veya tx geçilebilir (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create hesabı kaydeder.
func (r *AccountRepo) Create(account *entity.Account) error {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Name, account.Type, account.Currency, account.Balance,
		account.IBAN, account.BankName, account.Branch, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func scanAccount(row pgx.Row) (*entity.Account, error) {
	var a entity.Account
	err := row.Scan(
		&a.ID, &a.Name, &a.Type, &a.Currency, &a.Balance,
		&a.IBAN, &a.BankName, &a.Branch, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByIDForUpdate hesabı satır kilidiyle okur. Aynı hesaba eşzamanlı
// yazımları hesap bazında sıraya sokar; transaction dışında kilidin anlamı
// yoktur.
func (r *AccountRepo) GetByIDForUpdate(id string) (*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 FOR UPDATE`
	a, err := scanAccount(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account for update: %w", err)
	}
	return a, nil
}

// GetByID hesabı ID ile döner.
func (r *AccountRepo) GetByID(id string) (*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	a, err := scanAccount(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

// List tüm hesapları döner.
func (r *AccountRepo) List() ([]*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Update hesabın tanım alanlarını günceller; bakiye UpdateBalance ile değişir.
func (r *AccountRepo) Update(account *entity.Account) error {
	query := `
		UPDATE accounts
		SET name = $2, iban = $3, bank_name = $4, branch = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Name, account.IBAN, account.BankName, account.Branch, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// UpdateBalance önbellek bakiyeyi yazar; hareket yazımıyla aynı transaction
// içinde çağrılır.
func (r *AccountRepo) UpdateBalance(id string, balance decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE accounts SET balance = $2, updated_at = now() WHERE id = $1`, id, balance)
	if err != nil {
		return fmt.Errorf("update account balance: %w", err)
	}
	return nil
}

// Delete hesabı siler.
func (r *AccountRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrAccountHasTransactions
		}
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

const transactionColumns = `id, account_id, date, amount, type, description, related_id, balance_after, created_at`

// TransactionRepo TransactionRepository uyarlaması.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository adaptörü kurar. Pool veya tx geçilebilir (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create hareketi kaydeder.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.AccountID, tx.Date, tx.Amount, tx.Type, tx.Description,
		nullIfEmpty(tx.RelatedID), tx.BalanceAfter, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListByAccount hesabın hareketlerini yeniden eskiye sıralı, sayfalı döner.
func (r *TransactionRepo) ListByAccount(accountID string, limit, offset int) ([]*entity.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + ` FROM transactions
		WHERE account_id = $1 ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		var relatedID *string
		if err := rows.Scan(
			&t.ID, &t.AccountID, &t.Date, &t.Amount, &t.Type, &t.Description,
			&relatedID, &t.BalanceAfter, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if relatedID != nil {
			t.RelatedID = *relatedID
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// SumByAccount hesabın tüm hareket toplamını döner; bakiye yeniden kurulumu
// kullanır.
func (r *TransactionRepo) SumByAccount(accountID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE account_id = $1`, accountID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum transactions: %w", err)
	}
	return sum, nil
}

// CountByAccount hesabın hareket sayısını döner; silme koruması kullanır.
func (r *TransactionRepo) CountByAccount(accountID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM transactions WHERE account_id = $1`, accountID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return count, nil
}
