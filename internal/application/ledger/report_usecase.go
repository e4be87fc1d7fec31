package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/domain"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
	domledger "github.com/litrosmakina/ticari-api/internal/domain/ledger"
	"github.com/litrosmakina/ticari-api/internal/domain/repository"
)

// Düşük stok eşiği (gösterge paneli).
var lowStockThreshold = decimal.NewFromInt(5)

// ReportUseCase kâr, cari bakiye ve stok raporları.
type ReportUseCase struct {
	customerRepo repository.CustomerRepository
	docRepo      repository.DocumentRepository
	paymentRepo  repository.PaymentRepository
	productRepo  repository.ProductRepository
	checkRepo    repository.CheckRepository
}

// NewReportUseCase servisi kurar.
func NewReportUseCase(
	customerRepo repository.CustomerRepository,
	docRepo repository.DocumentRepository,
	paymentRepo repository.PaymentRepository,
	productRepo repository.ProductRepository,
	checkRepo repository.CheckRepository,
) *ReportUseCase {
	return &ReportUseCase{
		customerRepo: customerRepo,
		docRepo:      docRepo,
		paymentRepo:  paymentRepo,
		productRepo:  productRepo,
		checkRepo:    checkRepo,
	}
}

// Profit satılan kalemleri ürünün güncel maliyetiyle eşleştirerek brüt kâr
// raporu üretir. Maliyet anlık görüntüdür; gerçek FIFO katmanları tutulmaz.
func (uc *ReportUseCase) Profit(in dto.ProfitReportRequest) (*dto.ProfitReportResponse, error) {
	filter := domledger.ProfitFilter{
		CustomerID: in.CustomerID,
		ProductID:  in.ProductID,
		CategoryID: in.CategoryID,
	}
	var from, to time.Time
	if in.From != "" {
		t, err := time.Parse(dateLayout, in.From)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		from = t
		filter.From = &from
	}
	if in.To != "" {
		t, err := time.Parse(dateLayout, in.To)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		to = t
		filter.To = &to
	}

	invoices, err := uc.docRepo.ListInvoicesByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	itemsByDoc := make(map[string][]*entity.LineItem, len(invoices))
	for _, inv := range invoices {
		items, err := uc.docRepo.GetItemsByDocumentID(inv.ID)
		if err != nil {
			return nil, err
		}
		itemsByDoc[inv.ID] = items
	}
	products, err := uc.productMap()
	if err != nil {
		return nil, err
	}

	report, err := domledger.ComputeCostProfit(invoices, itemsByDoc, products, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProfitReportResponse{
		Lines:        make([]dto.ProfitLineResponse, 0, len(report.Lines)),
		TotalRevenue: report.TotalRevenue,
		TotalCost:    report.TotalCost,
		TotalProfit:  report.TotalProfit,
	}
	for _, l := range report.Lines {
		resp.Lines = append(resp.Lines, dto.ProfitLineResponse{
			Date:        l.Date.Format(dateLayout),
			DocID:       l.DocID,
			CustomerID:  l.CustomerID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			Unit:        l.Unit,
			Revenue:     l.Revenue,
			Cost:        l.Cost,
			Profit:      l.Profit,
		})
	}
	return resp, nil
}

// CurrentBalances tüm müşterilerin borç/alacak/bakiye özetini döner.
// Her müşteri için ekstre motorunun aynı çevirim kuralları kullanılır;
// farklı çağrı noktaları aynı bakiyeyi görür.
func (uc *ReportUseCase) CurrentBalances() ([]dto.CustomerBalanceResponse, error) {
	customers, err := uc.customerRepo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerBalanceResponse, 0, len(customers))
	for _, c := range customers {
		docs, err := uc.docRepo.ListByCustomerAndType(c.ID, entity.DocTypeInvoice)
		if err != nil {
			return nil, err
		}
		payments, err := uc.paymentRepo.ListByCustomer(c.ID)
		if err != nil {
			return nil, err
		}
		st, err := domledger.BuildStatement(docs, payments)
		if err != nil {
			return nil, err
		}
		debit, credit := decimal.Zero, decimal.Zero
		for _, line := range st.Lines {
			if line.BaseEffect.IsNegative() {
				credit = credit.Add(line.BaseEffect.Neg())
			} else {
				debit = debit.Add(line.BaseEffect)
			}
		}
		out = append(out, dto.CustomerBalanceResponse{
			CustomerID:   c.ID,
			CustomerName: c.Name,
			City:         c.City,
			Debit:        debit,
			Credit:       credit,
			Balance:      st.Balance,
		})
	}
	return out, nil
}

// StockValuation stok değer raporu: her ürün için stok x TRY maliyet.
func (uc *ReportUseCase) StockValuation() ([]dto.StockValuationLine, error) {
	products, err := uc.productRepo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockValuationLine, 0, len(products))
	for _, p := range products {
		out = append(out, dto.StockValuationLine{
			ProductID:  p.ID,
			Name:       p.Name,
			SKU:        p.SKU,
			CategoryID: p.CategoryID,
			Stock:      p.Stock,
			Cost:       p.Cost,
			TotalValue: p.Stock.Mul(p.Cost),
		})
	}
	return out, nil
}

// Dashboard özet göstergeleri hesaplar.
func (uc *ReportUseCase) Dashboard() (*dto.DashboardResponse, error) {
	invoices, err := uc.docRepo.ListInvoicesByDateRange(time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}
	revenue := decimal.Zero
	for _, inv := range invoices {
		effect, err := domledger.BaseAmount(inv.TotalAmount, inv.ExchangeRate, inv.Currency)
		if err != nil {
			return nil, err
		}
		revenue = revenue.Add(effect)
	}

	orders, err := uc.docRepo.ListByType(entity.DocTypeOrder, 1000, 0)
	if err != nil {
		return nil, err
	}
	pending := 0
	for _, o := range orders {
		if o.Status == entity.StatusPending || o.Status == entity.StatusApproved {
			pending++
		}
	}

	products, err := uc.productRepo.ListAll()
	if err != nil {
		return nil, err
	}
	lowStock := 0
	for _, p := range products {
		if p.TrackStock && p.Stock.LessThan(lowStockThreshold) {
			lowStock++
		}
	}

	openChecks, err := uc.checkRepo.List(entity.CheckPending, 1000, 0)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalRevenue:       revenue,
		PendingOrdersCount: pending,
		LowStockCount:      lowStock,
		OpenChecksCount:    len(openChecks),
	}, nil
}

func (uc *ReportUseCase) productMap() (map[string]*entity.Product, error) {
	products, err := uc.productRepo.ListAll()
	if err != nil {
		return nil, err
	}
	m := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return m, nil
}
