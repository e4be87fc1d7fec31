package http

import (
	"bytes"
	"encoding/csv"

	"github.com/gofiber/fiber/v2"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
)

// sendCSV satırları UTF-8 BOM'lu CSV olarak indirir; Excel Türkçe
// karakterleri ancak BOM ile doğru açıyor.
func sendCSV(c *fiber.Ctx, filename string, rows [][]string) error {
	var buf bytes.Buffer
	buf.WriteString("\xEF\xBB\xBF")
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

func statementCSVRows(st *dto.StatementResponse) [][]string {
	rows := [][]string{
		{"Tarih", "Tür", "Açıklama", "Borç", "Alacak", "Para Birimi", "TRY Etkisi", "Bakiye (TRY)"},
	}
	for _, l := range st.Lines {
		rows = append(rows, []string{
			l.Date, l.Kind, l.Description,
			l.Debit.StringFixed(2), l.Credit.StringFixed(2), l.Currency,
			l.BaseEffect.StringFixed(2), l.Balance.StringFixed(2),
		})
	}
	rows = append(rows, []string{"", "", "Genel Bakiye", "", "", "TRY", "", st.Balance.StringFixed(2)})
	return rows
}

func balancesCSVRows(balances []dto.CustomerBalanceResponse) [][]string {
	rows := [][]string{{"Cari", "Şehir", "Borç", "Alacak", "Bakiye (TRY)"}}
	for _, b := range balances {
		rows = append(rows, []string{
			b.CustomerName, b.City,
			b.Debit.StringFixed(2), b.Credit.StringFixed(2), b.Balance.StringFixed(2),
		})
	}
	return rows
}

func stockCSVRows(lines []dto.StockValuationLine) [][]string {
	rows := [][]string{{"Ürün", "SKU", "Stok", "Maliyet", "Toplam Değer (TRY)"}}
	for _, l := range lines {
		rows = append(rows, []string{
			l.Name, l.SKU, l.Stock.String(),
			l.Cost.StringFixed(2), l.TotalValue.StringFixed(2),
		})
	}
	return rows
}

func profitCSVRows(r *dto.ProfitReportResponse) [][]string {
	rows := [][]string{
		{"Tarih", "Belge", "Ürün", "Miktar", "Birim", "Hasılat", "Maliyet", "Kâr"},
	}
	for _, l := range r.Lines {
		rows = append(rows, []string{
			l.Date, l.DocID, l.ProductName,
			l.Quantity.String(), l.Unit,
			l.Revenue.StringFixed(2), l.Cost.StringFixed(2), l.Profit.StringFixed(2),
		})
	}
	rows = append(rows, []string{
		"", "", "Toplam", "", "",
		r.TotalRevenue.StringFixed(2), r.TotalCost.StringFixed(2), r.TotalProfit.StringFixed(2),
	})
	return rows
}
