package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/litrosmakina/ticari-api/internal/domain"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
	"github.com/litrosmakina/ticari-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)
var _ repository.CheckRepository = (*CheckRepo)(nil)

const paymentColumns = `id, customer_id, doc_id, account_id, check_id, date, amount, currency,
	exchange_rate, method, description, created_at`

// PaymentRepo PaymentRepository uyarlaması (pool veya tx ile kullanılabilir).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository adaptörü kurar. Pool veya tx geçilebilir (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create tahsilatı kaydeder.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.CustomerID, nullIfEmpty(payment.DocID), nullIfEmpty(payment.AccountID),
		nullIfEmpty(payment.CheckID), payment.Date, payment.Amount, payment.Currency,
		payment.ExchangeRate, payment.Method, payment.Description, payment.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	var docID, accountID, checkID *string
	err := row.Scan(
		&p.ID, &p.CustomerID, &docID, &accountID, &checkID, &p.Date, &p.Amount,
		&p.Currency, &p.ExchangeRate, &p.Method, &p.Description, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if docID != nil {
		p.DocID = *docID
	}
	if accountID != nil {
		p.AccountID = *accountID
	}
	if checkID != nil {
		p.CheckID = *checkID
	}
	return &p, nil
}

// GetByID tahsilatı ID ile döner.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	p, err := scanPayment(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

// ListByCustomer müşterinin tüm tahsilatlarını döner; ekstre motoru kullanır.
// Sıralamayı motor kendisi yapar.
func (r *PaymentRepo) ListByCustomer(customerID string) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE customer_id = $1`
	return r.queryPayments(query, customerID)
}

// List tahsilatları tarih sıralı, sayfalı listeler.
func (r *PaymentRepo) List(limit, offset int) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	return r.queryPayments(query, limit, offset)
}

func (r *PaymentRepo) queryPayments(query string, args ...any) ([]*entity.Payment, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update tahsilatı günceller.
func (r *PaymentRepo) Update(payment *entity.Payment) error {
	query := `
		UPDATE payments
		SET doc_id = $2, date = $3, amount = $4, description = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, nullIfEmpty(payment.DocID), payment.Date, payment.Amount, payment.Description,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}

// Delete tahsilatı siler.
func (r *PaymentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return nil
}

// CountByCustomer müşterinin tahsilat sayısını döner; silme koruması kullanır.
func (r *PaymentRepo) CountByCustomer(customerID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM payments WHERE customer_id = $1`, customerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count payments: %w", err)
	}
	return count, nil
}

const checkColumns = `id, check_number, bank_name, drawer, amount, currency, issue_date, due_date,
	status, customer_id, description, created_at, updated_at`

// CheckRepo CheckRepository uyarlaması (pool veya tx ile kullanılabilir).
type CheckRepo struct {
	q Querier
}

// NewCheckRepository adaptörü kurar. Pool veya tx geçilebilir (Querier).
func NewCheckRepository(q Querier) *CheckRepo {
	return &CheckRepo{q: q}
}

// Create çeki kaydeder.
func (r *CheckRepo) Create(check *entity.Check) error {
	query := `
		INSERT INTO checks (` + checkColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		check.ID, check.CheckNumber, check.BankName, check.Drawer, check.Amount,
		check.Currency, check.IssueDate, check.DueDate, check.Status, check.CustomerID,
		check.Description, check.CreatedAt, check.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert check: %w", err)
	}
	return nil
}

func scanCheck(row pgx.Row) (*entity.Check, error) {
	var c entity.Check
	err := row.Scan(
		&c.ID, &c.CheckNumber, &c.BankName, &c.Drawer, &c.Amount,
		&c.Currency, &c.IssueDate, &c.DueDate, &c.Status, &c.CustomerID,
		&c.Description, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID çeki ID ile döner.
func (r *CheckRepo) GetByID(id string) (*entity.Check, error) {
	query := `SELECT ` + checkColumns + ` FROM checks WHERE id = $1`
	c, err := scanCheck(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get check: %w", err)
	}
	return c, nil
}

// GetByIDForUpdate çeki satır kilidiyle okur. Eşzamanlı durum geçişlerinde
// PENDING satırı tek bir transaction görür; transaction dışında kilidin
// anlamı yoktur.
func (r *CheckRepo) GetByIDForUpdate(id string) (*entity.Check, error) {
	query := `SELECT ` + checkColumns + ` FROM checks WHERE id = $1 FOR UPDATE`
	c, err := scanCheck(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get check for update: %w", err)
	}
	return c, nil
}

// List çekleri vade sıralı listeler; status doluysa süzer.
func (r *CheckRepo) List(status string, limit, offset int) ([]*entity.Check, error) {
	if status != "" {
		query := `SELECT ` + checkColumns + ` FROM checks WHERE status = $1 ORDER BY due_date LIMIT $2 OFFSET $3`
		return r.queryChecks(query, status, limit, offset)
	}
	query := `SELECT ` + checkColumns + ` FROM checks ORDER BY due_date LIMIT $1 OFFSET $2`
	return r.queryChecks(query, limit, offset)
}

// ListByCustomer müşterinin çeklerini döner.
func (r *CheckRepo) ListByCustomer(customerID string) ([]*entity.Check, error) {
	query := `SELECT ` + checkColumns + ` FROM checks WHERE customer_id = $1 ORDER BY due_date`
	return r.queryChecks(query, customerID)
}

func (r *CheckRepo) queryChecks(query string, args ...any) ([]*entity.Check, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list checks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Check
	for rows.Next() {
		c, err := scanCheck(rows)
		if err != nil {
			return nil, fmt.Errorf("scan check: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update çeki günceller (durum geçişleri dahil).
func (r *CheckRepo) Update(check *entity.Check) error {
	query := `
		UPDATE checks
		SET bank_name = $2, drawer = $3, due_date = $4, status = $5, description = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		check.ID, check.BankName, check.Drawer, check.DueDate, check.Status,
		check.Description, check.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update check: %w", err)
	}
	return nil
}
