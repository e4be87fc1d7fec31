package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litrosmakina/ticari-api/internal/domain/entity"
)

const sampleBulletin = `<?xml version="1.0" encoding="UTF-8"?>
<Tarih_Date Tarih="05.12.2025" Date="12/05/2025" Bulten_No="2025/232">
	<Currency CrossOrder="0" Kod="USD" CurrencyCode="USD">
		<Unit>1</Unit>
		<Isim>ABD DOLARI</Isim>
		<CurrencyName>US DOLLAR</CurrencyName>
		<ForexBuying>42.4012</ForexBuying>
		<ForexSelling>42.4776</ForexSelling>
	</Currency>
	<Currency CrossOrder="9" Kod="EUR" CurrencyCode="EUR">
		<Unit>1</Unit>
		<Isim>EURO</Isim>
		<CurrencyName>EURO</CurrencyName>
		<ForexBuying>49.3581</ForexBuying>
		<ForexSelling>49.4470</ForexSelling>
	</Currency>
	<Currency CrossOrder="2" Kod="JPY" CurrencyCode="JPY">
		<Unit>100</Unit>
		<Isim>JAPON YENI</Isim>
		<CurrencyName>JAPENESE YEN</CurrencyName>
		<ForexBuying>27.2459</ForexBuying>
		<ForexSelling>27.4264</ForexSelling>
	</Currency>
</Tarih_Date>`

func TestParseBulletin(t *testing.T) {
	rates, err := ParseBulletin([]byte(sampleBulletin))
	require.NoError(t, err)

	usd, ok := rates.Rate(entity.CurrencyUSD)
	require.True(t, ok)
	assert.True(t, usd.Equal(decimal.RequireFromString("42.4776")))

	eur, ok := rates.Rate(entity.CurrencyEUR)
	require.True(t, ok)
	assert.True(t, eur.Equal(decimal.RequireFromString("49.4470")))

	// Tanınmayan para birimleri okunmaz.
	_, ok = rates.Rate("JPY")
	assert.False(t, ok)

	assert.Equal(t, 2025, rates.Date.Year())
	assert.Equal(t, time.December, rates.Date.Month())
}

func TestParseBulletin_VirgulluOndalik(t *testing.T) {
	xml := `<Tarih_Date Tarih="05.12.2025">
		<Currency CurrencyCode="USD"><Unit>1</Unit><ForexSelling>42,4776</ForexSelling></Currency>
	</Tarih_Date>`
	rates, err := ParseBulletin([]byte(xml))
	require.NoError(t, err)
	usd, ok := rates.Rate(entity.CurrencyUSD)
	require.True(t, ok)
	assert.True(t, usd.Equal(decimal.RequireFromString("42.4776")))
}

func TestParseBulletin_BozukXML(t *testing.T) {
	_, err := ParseBulletin([]byte("<bozuk"))
	assert.Error(t, err)

	_, err = ParseBulletin([]byte("<baska_kok/>"))
	assert.Error(t, err)
}

// TestFetch_Onbellek ikinci çağrı önbellekten döner, sunucuya tek istek gider.
func TestFetch_Onbellek(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(sampleBulletin))
	}))
	defer srv.Close()

	client := NewTCMBClient(srv.URL, 5*time.Second, time.Hour)

	first, err := client.Fetch(context.Background())
	require.NoError(t, err)
	second, err := client.Fetch(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestFetch_SunucuHatasi(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewTCMBClient(srv.URL, 5*time.Second, time.Hour)
	_, err := client.Fetch(context.Background())
	assert.Error(t, err)
}
