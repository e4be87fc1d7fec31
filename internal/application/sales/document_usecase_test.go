package sales

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/domain"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
	"github.com/litrosmakina/ticari-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Bellek içi sahte repolar
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[string]*entity.Customer{}}
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}
func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.customers[id], nil
}
func (r *fakeCustomerRepo) GetByTaxNo(taxNo string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.TaxNo == taxNo {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) { return nil, nil }
func (r *fakeCustomerRepo) ListAll() ([]*entity.Customer, error)              { return nil, nil }
func (r *fakeCustomerRepo) Search(q string, limit, offset int) ([]*entity.Customer, error) {
	return nil, nil
}
func (r *fakeCustomerRepo) Update(c *entity.Customer) error { r.customers[c.ID] = c; return nil }
func (r *fakeCustomerRepo) Delete(id string) error          { delete(r.customers, id); return nil }

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error)      { return nil, nil }
func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) ListAll() ([]*entity.Product, error)               { return nil, nil }
func (r *fakeProductRepo) Update(p *entity.Product) error                    { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) UpdateStockAndCost(id string, stock, cost decimal.Decimal) error {
	p := r.products[id]
	p.Stock = stock
	p.Cost = cost
	return nil
}
func (r *fakeProductRepo) Delete(id string) error { delete(r.products, id); return nil }

type fakeDocumentRepo struct {
	docs  map[string]*entity.Document
	items map[string][]*entity.LineItem
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{
		docs:  map[string]*entity.Document{},
		items: map[string][]*entity.LineItem{},
	}
}

func (r *fakeDocumentRepo) Create(d *entity.Document) error { r.docs[d.ID] = d; return nil }
func (r *fakeDocumentRepo) CreateItem(item *entity.LineItem) error {
	r.items[item.DocumentID] = append(r.items[item.DocumentID], item)
	return nil
}
func (r *fakeDocumentRepo) GetByID(id string) (*entity.Document, error) { return r.docs[id], nil }
func (r *fakeDocumentRepo) GetItemsByDocumentID(docID string) ([]*entity.LineItem, error) {
	return r.items[docID], nil
}
func (r *fakeDocumentRepo) ListByType(docType string, limit, offset int) ([]*entity.Document, error) {
	return nil, nil
}
func (r *fakeDocumentRepo) ListByCustomerAndType(customerID, docType string) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range r.docs {
		if d.CustomerID == customerID && (docType == "" || d.Type == docType) {
			out = append(out, d)
		}
	}
	return out, nil
}
func (r *fakeDocumentRepo) ListInvoicesByDateRange(from, to time.Time) ([]*entity.Document, error) {
	return nil, nil
}
func (r *fakeDocumentRepo) Update(d *entity.Document) error { r.docs[d.ID] = d; return nil }
func (r *fakeDocumentRepo) UpdateStatus(id, status string) error {
	if d, ok := r.docs[id]; ok {
		d.Status = status
	}
	return nil
}
func (r *fakeDocumentRepo) Delete(id string) error {
	delete(r.docs, id)
	delete(r.items, id)
	return nil
}
func (r *fakeDocumentRepo) CountByCustomer(customerID string) (int, error) {
	n := 0
	for _, d := range r.docs {
		if d.CustomerID == customerID {
			n++
		}
	}
	return n, nil
}
func (r *fakeDocumentRepo) CountItemsByProduct(productID string) (int, error) {
	n := 0
	for _, items := range r.items {
		for _, item := range items {
			if item.ProductID == productID {
				n++
			}
		}
	}
	return n, nil
}

type fakePaymentRepo struct {
	payments map[string]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[string]*entity.Payment{}}
}

func (r *fakePaymentRepo) Create(p *entity.Payment) error { r.payments[p.ID] = p; return nil }
func (r *fakePaymentRepo) GetByID(id string) (*entity.Payment, error) {
	return r.payments[id], nil
}
func (r *fakePaymentRepo) ListByCustomer(customerID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakePaymentRepo) List(limit, offset int) ([]*entity.Payment, error) { return nil, nil }
func (r *fakePaymentRepo) Update(p *entity.Payment) error                    { r.payments[p.ID] = p; return nil }
func (r *fakePaymentRepo) Delete(id string) error                            { delete(r.payments, id); return nil }
func (r *fakePaymentRepo) CountByCustomer(customerID string) (int, error) {
	out, _ := r.ListByCustomer(customerID)
	return len(out), nil
}

type fakeCheckRepo struct {
	checks map[string]*entity.Check
}

func newFakeCheckRepo() *fakeCheckRepo {
	return &fakeCheckRepo{checks: map[string]*entity.Check{}}
}

func (r *fakeCheckRepo) Create(c *entity.Check) error              { r.checks[c.ID] = c; return nil }
func (r *fakeCheckRepo) GetByID(id string) (*entity.Check, error)  { return r.checks[id], nil }
func (r *fakeCheckRepo) GetByIDForUpdate(id string) (*entity.Check, error) {
	return r.checks[id], nil
}
func (r *fakeCheckRepo) List(status string, limit, offset int) ([]*entity.Check, error) {
	return nil, nil
}
func (r *fakeCheckRepo) ListByCustomer(customerID string) ([]*entity.Check, error) { return nil, nil }
func (r *fakeCheckRepo) Update(c *entity.Check) error                              { r.checks[c.ID] = c; return nil }

type fakeAccountRepo struct {
	accounts map[string]*entity.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*entity.Account{}}
}

func (r *fakeAccountRepo) Create(a *entity.Account) error { r.accounts[a.ID] = a; return nil }
func (r *fakeAccountRepo) GetByIDForUpdate(id string) (*entity.Account, error) {
	return r.accounts[id], nil
}
func (r *fakeAccountRepo) GetByID(id string) (*entity.Account, error) { return r.accounts[id], nil }
func (r *fakeAccountRepo) List() ([]*entity.Account, error)           { return nil, nil }
func (r *fakeAccountRepo) Update(a *entity.Account) error             { r.accounts[a.ID] = a; return nil }
func (r *fakeAccountRepo) UpdateBalance(id string, balance decimal.Decimal) error {
	r.accounts[id].Balance = balance
	return nil
}
func (r *fakeAccountRepo) Delete(id string) error { delete(r.accounts, id); return nil }

type fakeTransactionRepo struct {
	txs []*entity.Transaction
}

func (r *fakeTransactionRepo) Create(tx *entity.Transaction) error {
	r.txs = append(r.txs, tx)
	return nil
}
func (r *fakeTransactionRepo) ListByAccount(accountID string, limit, offset int) ([]*entity.Transaction, error) {
	return r.txs, nil
}
func (r *fakeTransactionRepo) SumByAccount(accountID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, tx := range r.txs {
		if tx.AccountID == accountID {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum, nil
}
func (r *fakeTransactionRepo) CountByAccount(accountID string) (int, error) {
	n := 0
	for _, tx := range r.txs {
		if tx.AccountID == accountID {
			n++
		}
	}
	return n, nil
}

// fakeSalesRunner transaction sınırını taklit eder; geri alma simüle edilmez,
// bu yüzden testler hata yolunda yalnızca dönen hatayı doğrular.
type fakeSalesRunner struct {
	docRepo     *fakeDocumentRepo
	productRepo *fakeProductRepo
	paymentRepo *fakePaymentRepo
	checkRepo   *fakeCheckRepo
	accountRepo *fakeAccountRepo
	txRepo      *fakeTransactionRepo
}

func (r *fakeSalesRunner) RunDocument(ctx context.Context, fn func(
	docRepo repository.DocumentRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(r.docRepo, r.productRepo)
}

func (r *fakeSalesRunner) RunPayment(ctx context.Context, fn func(
	paymentRepo repository.PaymentRepository,
	checkRepo repository.CheckRepository,
	accountRepo repository.AccountRepository,
	txRepo repository.TransactionRepository,
) error) error {
	return fn(r.paymentRepo, r.checkRepo, r.accountRepo, r.txRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Kurulum
// ──────────────────────────────────────────────────────────────────────────────

type salesFixture struct {
	customers *fakeCustomerRepo
	products  *fakeProductRepo
	docs      *fakeDocumentRepo
	payments  *fakePaymentRepo
	checks    *fakeCheckRepo
	accounts  *fakeAccountRepo
	txs       *fakeTransactionRepo
	runner    *fakeSalesRunner
}

func newSalesFixture() *salesFixture {
	f := &salesFixture{
		customers: newFakeCustomerRepo(),
		products:  newFakeProductRepo(),
		docs:      newFakeDocumentRepo(),
		payments:  newFakePaymentRepo(),
		checks:    newFakeCheckRepo(),
		accounts:  newFakeAccountRepo(),
		txs:       &fakeTransactionRepo{},
	}
	f.runner = &fakeSalesRunner{
		docRepo:     f.docs,
		productRepo: f.products,
		paymentRepo: f.payments,
		checkRepo:   f.checks,
		accountRepo: f.accounts,
		txRepo:      f.txs,
	}
	f.customers.customers["c1"] = &entity.Customer{ID: "c1", Name: "Aydın Makine"}
	f.products.products["p1"] = &entity.Product{
		ID:         "p1",
		SKU:        "HP-2200",
		Name:       "Hidrolik Pompa",
		Stock:      decimal.NewFromInt(10),
		Unit:       "adet",
		Price:      decimal.NewFromInt(1000),
		Currency:   entity.CurrencyTRY,
		Cost:       decimal.NewFromInt(700),
		VATRate:    decimal.NewFromInt(20),
		TrackStock: true,
	}
	return f
}

func (f *salesFixture) documentUC() *DocumentUseCase {
	return NewDocumentUseCase(f.docs, f.customers, f.products, f.runner)
}

// ──────────────────────────────────────────────────────────────────────────────
// Belge oluşturma
// ──────────────────────────────────────────────────────────────────────────────

// Fatura kesilince stok düşmeli, toplam KDV dahil hesaplanmalı.
func TestDocumentCreate_FaturaStokDuserKdvliToplam(t *testing.T) {
	f := newSalesFixture()
	uc := f.documentUC()

	doc, err := uc.Create(context.Background(), dto.CreateDocumentRequest{
		Type:       entity.DocTypeInvoice,
		CustomerID: "c1",
		Title:      "FTR-001",
		Date:       "2026-01-15",
		Currency:   entity.CurrencyTRY,
		Items: []dto.CreateDocumentItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(2)},
		},
	})
	require.NoError(t, err)

	// 2 x 1000 = 2000 + %20 KDV = 2400
	assert.True(t, doc.TotalAmount.Equal(decimal.NewFromInt(2400)),
		"KDV dahil toplam 2400 olmalı, %s bulundu", doc.TotalAmount)
	assert.True(t, doc.ExchangeRate.Equal(decimal.NewFromInt(1)), "TRY belgede kur 1'e sabitlenmeli")
	assert.Equal(t, entity.StatusPending, doc.Status)

	product := f.products.products["p1"]
	assert.True(t, product.Stock.Equal(decimal.NewFromInt(8)),
		"fatura 2 adet düşmeli, stok %s bulundu", product.Stock)
}

// Teklif stok düşürmemeli.
func TestDocumentCreate_TeklifStokDusurmez(t *testing.T) {
	f := newSalesFixture()
	uc := f.documentUC()

	_, err := uc.Create(context.Background(), dto.CreateDocumentRequest{
		Type:       entity.DocTypeQuote,
		CustomerID: "c1",
		Title:      "TKF-001",
		Date:       "2026-01-15",
		Currency:   entity.CurrencyTRY,
		Items: []dto.CreateDocumentItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(4)},
		},
	})
	require.NoError(t, err)

	assert.True(t, f.products.products["p1"].Stock.Equal(decimal.NewFromInt(10)),
		"teklif stoka dokunmamalı")
}

// Stok yetersizse fatura kesilememeli.
func TestDocumentCreate_YetersizStok(t *testing.T) {
	f := newSalesFixture()
	uc := f.documentUC()

	_, err := uc.Create(context.Background(), dto.CreateDocumentRequest{
		Type:       entity.DocTypeInvoice,
		CustomerID: "c1",
		Title:      "FTR-002",
		Date:       "2026-01-15",
		Currency:   entity.CurrencyTRY,
		Items: []dto.CreateDocumentItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(11)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// Döviz belgesinde kur zorunlu.
func TestDocumentCreate_DovizKurZorunlu(t *testing.T) {
	f := newSalesFixture()
	uc := f.documentUC()

	_, err := uc.Create(context.Background(), dto.CreateDocumentRequest{
		Type:       entity.DocTypeInvoice,
		CustomerID: "c1",
		Title:      "FTR-003",
		Date:       "2026-01-15",
		Currency:   entity.CurrencyUSD,
		Items: []dto.CreateDocumentItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(1)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrMissingExchangeRate)
}

// ──────────────────────────────────────────────────────────────────────────────
// İş akışı dönüşümü
// ──────────────────────────────────────────────────────────────────────────────

// Teklif faturaya dönünce: kaynak INVOICED olmalı, satırlar ve dondurulmuş kur
// taşınmalı, stok düşmeli.
func TestDocumentConvert_TeklifFaturaya(t *testing.T) {
	f := newSalesFixture()
	uc := f.documentUC()

	quote, err := uc.Create(context.Background(), dto.CreateDocumentRequest{
		Type:         entity.DocTypeQuote,
		CustomerID:   "c1",
		Title:        "TKF-001",
		Date:         "2026-01-15",
		Currency:     entity.CurrencyUSD,
		ExchangeRate: decimal.RequireFromString("42.5"),
		Items: []dto.CreateDocumentItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(50)},
		},
	})
	require.NoError(t, err)

	invoice, err := uc.Convert(context.Background(), quote.ID, dto.ConvertDocumentRequest{
		TargetType: entity.DocTypeInvoice,
		Title:      "FTR-001",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.DocTypeInvoice, invoice.Type)
	assert.Equal(t, "FTR-001", invoice.Title)
	assert.Equal(t, quote.ID, invoice.RelatedDocID, "fatura kaynağına bağlanmalı")
	assert.True(t, invoice.ExchangeRate.Equal(decimal.RequireFromString("42.5")),
		"dondurulmuş kur dönüşümde taşınmalı")
	assert.Equal(t, entity.StatusInvoiced, f.docs.docs[quote.ID].Status,
		"kaynak teklif INVOICED olmalı")
	assert.True(t, f.products.products["p1"].Stock.Equal(decimal.NewFromInt(7)),
		"fatura dönüşümü stok düşmeli")
}

// Fatura başka belgeye dönüştürülemez.
func TestDocumentConvert_GecersizYon(t *testing.T) {
	f := newSalesFixture()
	uc := f.documentUC()

	invoice, err := uc.Create(context.Background(), dto.CreateDocumentRequest{
		Type:       entity.DocTypeInvoice,
		CustomerID: "c1",
		Title:      "FTR-001",
		Date:       "2026-01-15",
		Currency:   entity.CurrencyTRY,
		Items: []dto.CreateDocumentItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(1)},
		},
	})
	require.NoError(t, err)

	_, err = uc.Convert(context.Background(), invoice.ID, dto.ConvertDocumentRequest{
		TargetType: entity.DocTypeQuote,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Belge silme
// ──────────────────────────────────────────────────────────────────────────────

// Fatura silinince stok iade edilmeli.
func TestDocumentDelete_FaturaStokIade(t *testing.T) {
	f := newSalesFixture()
	uc := f.documentUC()

	invoice, err := uc.Create(context.Background(), dto.CreateDocumentRequest{
		Type:       entity.DocTypeInvoice,
		CustomerID: "c1",
		Title:      "FTR-001",
		Date:       "2026-01-15",
		Currency:   entity.CurrencyTRY,
		Items: []dto.CreateDocumentItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(5)},
		},
	})
	require.NoError(t, err)
	require.True(t, f.products.products["p1"].Stock.Equal(decimal.NewFromInt(5)))

	require.NoError(t, uc.Delete(context.Background(), invoice.ID))

	assert.True(t, f.products.products["p1"].Stock.Equal(decimal.NewFromInt(10)),
		"silinen faturanın stoku iade edilmeli")
	assert.Nil(t, f.docs.docs[invoice.ID], "belge kalıcı olarak silinmeli")
}
