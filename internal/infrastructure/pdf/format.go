package pdf

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var turkishPrinter = message.NewPrinter(language.Turkish)

// FormatMoney tutarı Türkçe yerel biçimde yazar: binlik ayıracı nokta,
// ondalık ayıracı virgül, iki ondalık hane. Ör: 1450.5 -> "1.450,50".
// Yalnızca gösterim içindir; hesaplamalar decimal üzerinde kalır.
func FormatMoney(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return turkishPrinter.Sprintf("%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
