package repository

import (
	"time"

	"github.com/litrosmakina/ticari-api/internal/domain/entity"
)

// DocumentRepository ticari belge (teklif/sipariş/fatura/irsaliye) ve
// satırları için kalıcılık portu.
type DocumentRepository interface {
	Create(doc *entity.Document) error
	CreateItem(item *entity.LineItem) error
	GetByID(id string) (*entity.Document, error)
	GetItemsByDocumentID(docID string) ([]*entity.LineItem, error)
	ListByType(docType string, limit, offset int) ([]*entity.Document, error)
	// ListByCustomerAndType bir müşterinin belirli türdeki tüm belgelerini
	// döner; ekstre motoru fatura listesini buradan alır.
	ListByCustomerAndType(customerID, docType string) ([]*entity.Document, error)
	// ListInvoicesByDateRange kâr raporu için tarih aralığındaki faturaları döner.
	ListInvoicesByDateRange(from, to time.Time) ([]*entity.Document, error)
	Update(doc *entity.Document) error
	UpdateStatus(id, status string) error
	Delete(id string) error
	// CountByCustomer müşteri silme korumasında kullanılır.
	CountByCustomer(customerID string) (int, error)
	// CountItemsByProduct ürün silme korumasında kullanılır.
	CountItemsByProduct(productID string) (int, error)
}
