package repository

import "github.com/litrosmakina/ticari-api/internal/domain/entity"

// PaymentRepository tahsilat kalıcılık portu.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	ListByCustomer(customerID string) ([]*entity.Payment, error)
	List(limit, offset int) ([]*entity.Payment, error)
	Update(payment *entity.Payment) error
	Delete(id string) error
	CountByCustomer(customerID string) (int, error)
}

// CheckRepository çek kalıcılık portu.
type CheckRepository interface {
	Create(check *entity.Check) error
	GetByID(id string) (*entity.Check, error)
	// GetByIDForUpdate çeki satır kilidiyle okur; durum geçişlerini
	// çek bazında sıraya sokmak için transaction içinde kullanılır.
	GetByIDForUpdate(id string) (*entity.Check, error)
	List(status string, limit, offset int) ([]*entity.Check, error)
	ListByCustomer(customerID string) ([]*entity.Check, error)
	Update(check *entity.Check) error
}
