// Package ledger cari hesap motorunun saf (yan etkisiz) çekirdeğidir:
// para çevrimi, ekstre oluşturma, dönem mutabakatı ve kâr/maliyet dağıtımı.
//
// Tüm hesaplamalar yüklenmiş kayıtların anlık görüntüsü üzerinde çalışır ve
// shopspring/decimal ile tam ondalık aritmetik kullanır; float kaynaklı
// yuvarlama kayması yoktur.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/litrosmakina/ticari-api/internal/domain"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
)

// BaseCurrency sistem genelinde sabit raporlama para birimidir.
const BaseCurrency = entity.CurrencyTRY

// BaseAmount bir tutarı kaydın üzerindeki donmuş kurla TRY'ye çevirir.
//
// Kur her zaman kaydın kendi üzerindeki değerdir, asla "güncel" kur tablosu
// değil: geçmiş ekstrelerin kur güncellemelerinden etkilenmemesi bu kuralla
// garanti edilir. TRY kayıtlarda kur 1 kabul edilir; TRY dışı bir kayıtta
// kur eksik ya da sıfırsa ErrMissingExchangeRate döner (sessiz 1.0 varsayımı
// bilinçli olarak yoktur).
func BaseAmount(amount, rate decimal.Decimal, currency string) (decimal.Decimal, error) {
	if currency == BaseCurrency {
		if rate.IsZero() {
			return amount, nil
		}
		return amount.Mul(rate), nil
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, domain.ErrMissingExchangeRate
	}
	return amount.Mul(rate), nil
}
