package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/litrosmakina/ticari-api/internal/domain/entity"
	"github.com/litrosmakina/ticari-api/internal/domain/repository"
)

var _ repository.ReconciliationRepository = (*ReconciliationRepo)(nil)

const reconciliationColumns = `id, customer_id, date, period_start, period_end, balance, status, note, created_at`

// ReconciliationRepo ReconciliationRepository uyarlaması. Kayıtlar salt
// denetim izidir; ekstre hesaplamaları bu tabloyu okumaz.
type ReconciliationRepo struct {
	q Querier
}

// NewReconciliationRepository adaptörü kurar.
func NewReconciliationRepository(q Querier) *ReconciliationRepo {
	return &ReconciliationRepo{q: q}
}

// Create mutabakat anlık görüntüsünü kaydeder.
func (r *ReconciliationRepo) Create(rec *entity.Reconciliation) error {
	query := `
		INSERT INTO reconciliations (` + reconciliationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.CustomerID, rec.Date, rec.PeriodStart, rec.PeriodEnd,
		rec.Balance, rec.Status, rec.Note, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reconciliation: %w", err)
	}
	return nil
}

func scanReconciliation(row pgx.Row) (*entity.Reconciliation, error) {
	var rec entity.Reconciliation
	err := row.Scan(
		&rec.ID, &rec.CustomerID, &rec.Date, &rec.PeriodStart, &rec.PeriodEnd,
		&rec.Balance, &rec.Status, &rec.Note, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetByID mutabakatı ID ile döner.
func (r *ReconciliationRepo) GetByID(id string) (*entity.Reconciliation, error) {
	query := `SELECT ` + reconciliationColumns + ` FROM reconciliations WHERE id = $1`
	rec, err := scanReconciliation(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reconciliation: %w", err)
	}
	return rec, nil
}

// ListByCustomer müşterinin mutabakatlarını yeniden eskiye döner.
func (r *ReconciliationRepo) ListByCustomer(customerID string) ([]*entity.Reconciliation, error) {
	query := `
		SELECT ` + reconciliationColumns + ` FROM reconciliations
		WHERE customer_id = $1 ORDER BY date DESC`
	return r.queryReconciliations(query, customerID)
}

// List mutabakatları yeniden eskiye, sayfalı döner.
func (r *ReconciliationRepo) List(limit, offset int) ([]*entity.Reconciliation, error) {
	query := `
		SELECT ` + reconciliationColumns + ` FROM reconciliations
		ORDER BY date DESC LIMIT $1 OFFSET $2`
	return r.queryReconciliations(query, limit, offset)
}

func (r *ReconciliationRepo) queryReconciliations(query string, args ...any) ([]*entity.Reconciliation, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reconciliations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Reconciliation
	for rows.Next() {
		rec, err := scanReconciliation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reconciliation: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
