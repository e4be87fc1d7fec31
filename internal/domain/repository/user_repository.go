package repository

import "github.com/litrosmakina/ticari-api/internal/domain/entity"

// UserRepository kullanıcı kalıcılık portu.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}

// CompanyRepository firma ayarları portu (tek kayıt).
type CompanyRepository interface {
	Get() (*entity.CompanyInfo, error)
	Upsert(info *entity.CompanyInfo) error
}
