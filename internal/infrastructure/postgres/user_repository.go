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

var _ repository.UserRepository = (*UserRepo)(nil)
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const userColumns = `id, name, email, password_hash, role, is_active, last_login, created_at, updated_at`

// UserRepo UserRepository uyarlaması.
type UserRepo struct {
	q Querier
}

// NewUserRepository adaptörü kurar.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create kullanıcıyı kaydeder.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role,
		user.IsActive, user.LastLogin, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.IsActive, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID kullanıcıyı ID ile döner.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// FindByEmail kullanıcıyı e-postayla döner.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	u, err := scanUser(r.q.QueryRow(context.Background(), query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// List tüm kullanıcıları döner.
func (r *UserRepo) List() ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update kullanıcıyı günceller.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users
		SET name = $2, email = $3, password_hash = $4, role = $5, is_active = $6,
		    last_login = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role,
		user.IsActive, user.LastLogin, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete kullanıcıyı siler.
func (r *UserRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

const companyColumns = `id, name, tax_no, tax_office, mersis_no, address, phone, email, website, logo_url, updated_at`

// CompanyRepo CompanyRepository uyarlaması (tek kayıt).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository adaptörü kurar.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Get firma kaydını döner; yoksa nil.
func (r *CompanyRepo) Get() (*entity.CompanyInfo, error) {
	query := `SELECT ` + companyColumns + ` FROM company_info LIMIT 1`
	var info entity.CompanyInfo
	err := r.q.QueryRow(context.Background(), query).Scan(
		&info.ID, &info.Name, &info.TaxNo, &info.TaxOffice, &info.MersisNo,
		&info.Address, &info.Phone, &info.Email, &info.Website, &info.LogoURL, &info.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company info: %w", err)
	}
	return &info, nil
}

// Upsert firma kaydını yazar; yoksa oluşturur.
func (r *CompanyRepo) Upsert(info *entity.CompanyInfo) error {
	query := `
		INSERT INTO company_info (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, tax_no = EXCLUDED.tax_no, tax_office = EXCLUDED.tax_office,
		    mersis_no = EXCLUDED.mersis_no, address = EXCLUDED.address, phone = EXCLUDED.phone,
		    email = EXCLUDED.email, website = EXCLUDED.website, logo_url = EXCLUDED.logo_url,
		    updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		info.ID, info.Name, info.TaxNo, info.TaxOffice, info.MersisNo,
		info.Address, info.Phone, info.Email, info.Website, info.LogoURL, info.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert company info: %w", err)
	}
	return nil
}
