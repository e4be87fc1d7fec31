// Package pdf cari ekstre ve mutabakat mektubu PDF'lerini üretir.
//
// A4 sayfa düzeni (ekstre):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  ANTET: Firma ünvanı + VKN  │  Belge adı + Tarih            │
//	│  ───────────────────────────────────────────────────────────│
//	│  CARİ: Ünvan + VKN/Vergi dairesi + iletişim                 │
//	│  ───────────────────────────────────────────────────────────│
//	│  TABLO: Tarih | Açıklama | Borç | Alacak | Bakiye (TRY)     │
//	│  ───────────────────────────────────────────────────────────│
//	│  TOPLAM: Dönem sonu bakiye                                   │
//	└─────────────────────────────────────────────────────────────┘
//
// Mutabakat mektubunda tabloya devreden bakiye satırı eklenir ve altta
// "mutabıkız / mutabık değiliz" onay bölümü yer alır.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
)

// ── Renk paleti ───────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 128, Green: 32, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator ekstre ve mutabakat PDF üreticisi (Maroto v2).
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator üreticiyi kurar.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

func newDocument(title, author string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(author, true).
		Build()
	return maroto.New(cfg)
}

// GenerateStatementPDF cari hesap ekstresini üretir ve byte'larını döner.
func (g *MarotoPDFGenerator) GenerateStatementPDF(
	statement *dto.StatementResponse,
	customer *dto.CustomerResponse,
	company *dto.CompanyInfoResponse,
) ([]byte, error) {
	m := newDocument("Cari Hesap Ekstresi", company.Name)

	m.AddRows(headerRow(company, "CARİ HESAP EKSTRESİ", ""))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range lineRows(statement.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(balanceRow("GÜNCEL BAKİYE:", statement.Balance))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: ekstre üretimi: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateReconciliationPDF dönem mutabakat mektubunu üretir.
func (g *MarotoPDFGenerator) GenerateReconciliationPDF(
	preview *dto.ReconciliationPreviewResponse,
	customer *dto.CustomerResponse,
	company *dto.CompanyInfoResponse,
) ([]byte, error) {
	m := newDocument("Mutabakat Mektubu", company.Name)

	period := preview.PeriodStart + " / " + preview.PeriodEnd
	m.AddRows(headerRow(company, "MUTABAKAT MEKTUBU", period))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(broughtForwardRow(preview.PeriodStart, preview.BroughtForward))
	for _, r := range lineRows(preview.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(balanceRow("DÖNEM SONU BAKİYE:", preview.FinalBalance))

	m.AddRows(line.NewRow(3))
	for _, r := range confirmationRows(preview) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: mutabakat üretimi: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Bölümler ──────────────────────────────────────────────────────────────────

// headerRow: firma ünvanı + VKN (sol), belge adı + dönem (sağ).
func headerRow(company *dto.CompanyInfoResponse, docTitle, period string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("VKN: "+nonEmpty(company.TaxNo, "—")+"  "+nonEmpty(company.TaxOffice, ""), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(docTitle, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(period, ""), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// customerRow: cari bilgileri.
func customerRow(customer *dto.CustomerResponse) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CARİ HESAP", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("VKN: %s   |   %s   |   Tel: %s",
				nonEmpty(customer.TaxNo, "—"),
				nonEmpty(customer.TaxOffice, "—"),
				nonEmpty(customer.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: ekstre tablosu başlığı.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Tarih", 2, align.Left),
		h("Açıklama", 4, align.Left),
		h("Borç", 2, align.Right),
		h("Alacak", 2, align.Right),
		h("Bakiye (TL)", 2, align.Right),
	)
}

// lineRows: ekstre satırları. Borç/alacak kaydın kendi para biriminde,
// bakiye her zaman TRY gösterilir.
func lineRows(lines []dto.StatementLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		debit, credit := "", ""
		if !l.Debit.IsZero() {
			debit = FormatMoney(l.Debit) + " " + l.Currency
		}
		if !l.Credit.IsZero() {
			credit = FormatMoney(l.Credit) + " " + l.Currency
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(l.Date, props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New(l.Description, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(debit, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(credit, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(FormatMoney(l.Balance), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// broughtForwardRow: dönem başı devreden bakiye satırı.
func broughtForwardRow(periodStart string, broughtForward decimal.Decimal) core.Row {
	return row.New(6).Add(
		col.New(2).Add(text.New(periodStart, props.Text{Size: 8, Style: fontstyle.Italic, Top: 1})),
		col.New(6).Add(text.New("Devreden bakiye", props.Text{Size: 8, Style: fontstyle.Italic, Top: 1, Left: 1})),
		col.New(2),
		col.New(2).Add(text.New(FormatMoney(broughtForward), props.Text{
			Size: 8, Style: fontstyle.Italic, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// balanceRow: sonuç bakiyesi bloğu.
func balanceRow(label string, balance decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New(FormatMoney(balance)+" TL", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// confirmationRows: mutabakat onay bölümü.
func confirmationRows(preview *dto.ReconciliationPreviewResponse) []core.Row {
	direction := "borçlu"
	amount := preview.FinalBalance
	if amount.IsNegative() {
		direction = "alacaklı"
		amount = amount.Neg()
	}
	body := fmt.Sprintf(
		"%s - %s dönemine ait kayıtlarımıza göre hesabınız %s TL %s bakiye vermektedir. "+
			"Mutabık olup olmadığınızı yazılı olarak bildirmenizi rica ederiz.",
		preview.PeriodStart, preview.PeriodEnd, FormatMoney(amount), direction,
	)
	return []core.Row{
		row.New(14).Add(col.New(12).Add(
			text.New(body, props.Text{Size: 9, Top: 2}),
		)),
		row.New(6),
		row.New(16).Add(
			col.New(6).Add(
				text.New("[ ] Mutabıkız", props.Text{Size: 10, Top: 2}),
				text.New("[ ] Mutabık değiliz", props.Text{Size: 10, Top: 9}),
			),
			col.New(6).Add(
				text.New("Kaşe / İmza:", props.Text{Size: 9, Top: 2, Color: colorGray}),
			),
		),
	}
}

// ── yardımcılar ───────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
