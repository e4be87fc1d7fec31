package repository

import "github.com/litrosmakina/ticari-api/internal/domain/entity"

// ReconciliationRepository mutabakat anlık görüntüsü kalıcılık portu.
// Kayıtlar salt denetim izi amaçlıdır; ekstre hesaplamaları bu tabloyu okumaz.
type ReconciliationRepository interface {
	Create(rec *entity.Reconciliation) error
	GetByID(id string) (*entity.Reconciliation, error)
	ListByCustomer(customerID string) ([]*entity.Reconciliation, error)
	List(limit, offset int) ([]*entity.Reconciliation, error)
}
