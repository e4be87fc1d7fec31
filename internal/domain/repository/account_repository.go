package repository

import (
	"github.com/shopspring/decimal"

	"github.com/litrosmakina/ticari-api/internal/domain/entity"
)

// AccountRepository kasa/banka hesabı kalıcılık portu.
type AccountRepository interface {
	Create(account *entity.Account) error
	// GetByIDForUpdate hesabı yazma kilidiyle okur (SELECT ... FOR UPDATE).
	// Aynı hesaba eşzamanlı işlem yazımlarını hesap bazında sıraya sokar;
	// yalnızca transaction içinde anlamlıdır.
	GetByIDForUpdate(id string) (*entity.Account, error)
	GetByID(id string) (*entity.Account, error)
	List() ([]*entity.Account, error)
	Update(account *entity.Account) error
	UpdateBalance(id string, balance decimal.Decimal) error
	Delete(id string) error
}

// TransactionRepository hesap hareketi kalıcılık portu.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	ListByAccount(accountID string, limit, offset int) ([]*entity.Transaction, error)
	// SumByAccount hesabın tüm hareketlerinin toplamını döner; önbellek
	// bakiye bu toplamdan yeniden kurulabilir.
	SumByAccount(accountID string) (decimal.Decimal, error)
	CountByAccount(accountID string) (int, error)
}
