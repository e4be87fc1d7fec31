package entity

// Desteklenen para birimleri. Tüm bakiyeler raporlamada TRY'ye çevrilir.
const (
	CurrencyTRY = "TRY" // Temel para birimi
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

// ValidCurrency desteklenen bir para birimi kodu mu kontrol eder.
func ValidCurrency(code string) bool {
	switch code {
	case CurrencyTRY, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}
