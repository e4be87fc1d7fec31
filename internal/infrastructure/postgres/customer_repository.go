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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, email, tax_no, tax_office, address, phone, city, district, post_code, is_legal_entity, created_at, updated_at`

// CustomerRepo CustomerRepository uyarlaması (pool veya tx ile kullanılabilir).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository adaptörü kurar. Pool veya tx geçilebilir (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create yeni cari kaydeder.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Email, customer.TaxNo, customer.TaxOffice,
		customer.Address, customer.Phone, customer.City, customer.District, customer.PostCode,
		customer.IsLegalEntity, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.TaxNo, &c.TaxOffice,
		&c.Address, &c.Phone, &c.City, &c.District, &c.PostCode,
		&c.IsLegalEntity, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID cariyi ID ile döner.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// GetByTaxNo cariyi vergi numarasıyla döner.
func (r *CustomerRepo) GetByTaxNo(taxNo string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE tax_no = $1`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, taxNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by tax_no: %w", err)
	}
	return c, nil
}

// List carileri isme göre sıralı, sayfalı listeler.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY name LIMIT $1 OFFSET $2`
	return r.queryCustomers(query, limit, offset)
}

// ListAll tüm carileri döner; rapor motoru kullanır.
func (r *CustomerRepo) ListAll() ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY name`
	return r.queryCustomers(query)
}

// Search ünvan veya vergi numarasında arar.
func (r *CustomerRepo) Search(q string, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + ` FROM customers
		WHERE name ILIKE '%' || $1 || '%' OR tax_no ILIKE '%' || $1 || '%'
		ORDER BY name LIMIT $2 OFFSET $3`
	return r.queryCustomers(query, q, limit, offset)
}

func (r *CustomerRepo) queryCustomers(query string, args ...any) ([]*entity.Customer, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update cariyi günceller.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, email = $3, tax_no = $4, tax_office = $5, address = $6,
		    phone = $7, city = $8, district = $9, post_code = $10,
		    is_legal_entity = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Email, customer.TaxNo, customer.TaxOffice,
		customer.Address, customer.Phone, customer.City, customer.District, customer.PostCode,
		customer.IsLegalEntity, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete cariyi siler; bağlı kayıt varsa FK ihlali tipik hataya çevrilir.
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCustomerHasRecords
		}
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
