package repository

import "github.com/litrosmakina/ticari-api/internal/domain/entity"

// CustomerRepository cari hesap (müşteri) kalıcılık portu.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByTaxNo(taxNo string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	// ListAll raporlar için tüm müşterileri döner.
	ListAll() ([]*entity.Customer, error)
	Search(query string, limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
