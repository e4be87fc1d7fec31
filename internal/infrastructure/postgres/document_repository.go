package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/litrosmakina/ticari-api/internal/domain"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
	"github.com/litrosmakina/ticari-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

const documentColumns = `id, type, customer_id, title, date, payment_due_date, currency, exchange_rate,
	total_amount, status, related_doc_id, notes, terms, einvoice_status, einvoice_number, created_at, updated_at`

const lineItemColumns = `id, document_id, product_id, product_name, sku, description, quantity, unit,
	shipped_quantity, unit_price, tax_rate, discount, total, item_status`

// DocumentRepo DocumentRepository uyarlaması (pool veya tx ile kullanılabilir).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository adaptörü kurar. Pool veya tx geçilebilir (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create belge başlığını kaydeder.
func (r *DocumentRepo) Create(doc *entity.Document) error {
	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.Type, doc.CustomerID, doc.Title, doc.Date, doc.PaymentDueDate,
		doc.Currency, doc.ExchangeRate, doc.TotalAmount, doc.Status, nullIfEmpty(doc.RelatedDocID),
		doc.Notes, doc.Terms, doc.EInvoiceStatus, doc.EInvoiceNumber, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// CreateItem belge satırını kaydeder.
func (r *DocumentRepo) CreateItem(item *entity.LineItem) error {
	query := `
		INSERT INTO document_items (` + lineItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.DocumentID, item.ProductID, item.ProductName, item.SKU, item.Description,
		item.Quantity, item.Unit, item.ShippedQuantity, item.UnitPrice, item.TaxRate,
		item.Discount, item.Total, item.ItemStatus,
	)
	if err != nil {
		return fmt.Errorf("insert document item: %w", err)
	}
	return nil
}

func scanDocument(row pgx.Row) (*entity.Document, error) {
	var d entity.Document
	var relatedDocID *string
	err := row.Scan(
		&d.ID, &d.Type, &d.CustomerID, &d.Title, &d.Date, &d.PaymentDueDate,
		&d.Currency, &d.ExchangeRate, &d.TotalAmount, &d.Status, &relatedDocID,
		&d.Notes, &d.Terms, &d.EInvoiceStatus, &d.EInvoiceNumber, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if relatedDocID != nil {
		d.RelatedDocID = *relatedDocID
	}
	return &d, nil
}

// GetByID belgeyi ID ile döner.
func (r *DocumentRepo) GetByID(id string) (*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	d, err := scanDocument(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return d, nil
}

// GetItemsByDocumentID belgenin satırlarını döner.
func (r *DocumentRepo) GetItemsByDocumentID(docID string) ([]*entity.LineItem, error) {
	query := `SELECT ` + lineItemColumns + ` FROM document_items WHERE document_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, docID)
	if err != nil {
		return nil, fmt.Errorf("list document items: %w", err)
	}
	defer rows.Close()
	var list []*entity.LineItem
	for rows.Next() {
		var it entity.LineItem
		if err := rows.Scan(
			&it.ID, &it.DocumentID, &it.ProductID, &it.ProductName, &it.SKU, &it.Description,
			&it.Quantity, &it.Unit, &it.ShippedQuantity, &it.UnitPrice, &it.TaxRate,
			&it.Discount, &it.Total, &it.ItemStatus,
		); err != nil {
			return nil, fmt.Errorf("scan document item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ListByType türe göre belgeleri tarih sıralı, sayfalı listeler.
func (r *DocumentRepo) ListByType(docType string, limit, offset int) ([]*entity.Document, error) {
	query := `
		SELECT ` + documentColumns + ` FROM documents
		WHERE type = $1 ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	return r.queryDocuments(query, docType, limit, offset)
}

// ListByCustomerAndType müşterinin belirli türdeki tüm belgelerini döner.
// Ekstre motoru fatura listesini buradan alır; sıralamayı motor kendisi yapar.
func (r *DocumentRepo) ListByCustomerAndType(customerID, docType string) ([]*entity.Document, error) {
	query := `
		SELECT ` + documentColumns + ` FROM documents
		WHERE customer_id = $1 AND type = $2`
	return r.queryDocuments(query, customerID, docType)
}

// ListInvoicesByDateRange kâr raporu için tarih aralığındaki faturaları döner.
func (r *DocumentRepo) ListInvoicesByDateRange(from, to time.Time) ([]*entity.Document, error) {
	query := `
		SELECT ` + documentColumns + ` FROM documents
		WHERE type = $1 AND date >= $2 AND date <= $3 ORDER BY date`
	return r.queryDocuments(query, entity.DocTypeInvoice, from, to)
}

func (r *DocumentRepo) queryDocuments(query string, args ...any) ([]*entity.Document, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Update belge başlığını günceller.
func (r *DocumentRepo) Update(doc *entity.Document) error {
	query := `
		UPDATE documents
		SET title = $2, date = $3, payment_due_date = $4, total_amount = $5, status = $6,
		    notes = $7, terms = $8, einvoice_status = $9, einvoice_number = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.Title, doc.Date, doc.PaymentDueDate, doc.TotalAmount, doc.Status,
		doc.Notes, doc.Terms, doc.EInvoiceStatus, doc.EInvoiceNumber, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	return nil
}

// UpdateStatus yalnızca belge durumunu değiştirir.
func (r *DocumentRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE documents SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update document status: %w", err)
	}
	return nil
}

// Delete belgeyi satırlarıyla siler (document_items FK ON DELETE CASCADE).
func (r *DocumentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

// CountByCustomer müşterinin belge sayısını döner; silme koruması kullanır.
func (r *DocumentRepo) CountByCustomer(customerID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM documents WHERE customer_id = $1`, customerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return count, nil
}

// CountItemsByProduct üründe geçen satır sayısını döner; silme koruması kullanır.
func (r *DocumentRepo) CountItemsByProduct(productID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM document_items WHERE product_id = $1`, productID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count document items: %w", err)
	}
	return count, nil
}

// nullIfEmpty boş string'i NULL olarak yazar; opsiyonel FK kolonları için.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
