package domain

import "errors"

// Alan (domain) hataları — dış bağımlılık yok. Handler katmanı bu sentinel
// hataları HTTP durum kodlarına çevirir.
var (
	ErrNotFound           = errors.New("kayıt bulunamadı")
	ErrInvalidInput       = errors.New("geçersiz girdi")
	ErrDuplicate          = errors.New("kayıt zaten mevcut")
	ErrUnauthorized       = errors.New("yetkisiz erişim")
	ErrForbidden          = errors.New("erişim reddedildi")
	ErrUserNotFound       = errors.New("kullanıcı bulunamadı")
	ErrEmailAlreadyExists = errors.New("bu e-posta adresi zaten kayıtlı")
	ErrInsufficientStock  = errors.New("yetersiz stok")

	// Tutarlılık hataları: kur eksikse sessizce 1.0 varsaymak yerine
	// işlem baştan reddedilir.
	ErrMissingExchangeRate = errors.New("döviz kuru eksik veya sıfır")
	ErrCurrencyMismatch    = errors.New("para birimleri uyuşmuyor")
	ErrInvalidPeriod       = errors.New("geçersiz dönem aralığı")

	// Referans bütünlüğü hataları: bağlı kaydı olan ana kayıtlar silinemez.
	ErrCustomerHasRecords     = errors.New("müşterinin fatura veya tahsilat kaydı var, silinemez")
	ErrAccountHasTransactions = errors.New("hesabın işlem geçmişi var, silinemez")
	ErrProductInUse           = errors.New("ürün belge satırlarında kullanılıyor, silinemez")

	// Çek yaşam döngüsü: yalnızca PENDING durumundan geçiş yapılabilir,
	// terminal durumlar geri alınamaz.
	ErrCheckNotPending = errors.New("çek beklemede değil, durum değiştirilemez")
)
