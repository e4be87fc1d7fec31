package rates

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/litrosmakina/ticari-api/internal/domain/entity"
)

// DailyRates TCMB günlük kur bülteninden okunan döviz satış kurları.
// Kurlar yalnızca öneri amaçlıdır: belge ve tahsilat kayıtlarına yazılan kur
// kayıt anında dondurulur, bu servis geçmişi asla etkilemez.
type DailyRates struct {
	Date time.Time
	// Selling para birimine göre döviz satış (ForexSelling) kurları.
	Selling map[string]decimal.Decimal
}

// Rate verilen para biriminin satış kurunu döner.
func (d *DailyRates) Rate(currency string) (decimal.Decimal, bool) {
	r, ok := d.Selling[currency]
	return r, ok
}

// TCMBClient Merkez Bankası today.xml bültenini okuyan istemci.
// Bülten gün içinde değişmediği için sonuç süreli önbelleğe alınır.
type TCMBClient struct {
	url      string
	client   *http.Client
	cacheTTL time.Duration

	mu        sync.Mutex
	cached    *DailyRates
	fetchedAt time.Time
}

// NewTCMBClient istemciyi kurar.
func NewTCMBClient(url string, timeout, cacheTTL time.Duration) *TCMBClient {
	return &TCMBClient{
		url:      url,
		client:   &http.Client{Timeout: timeout},
		cacheTTL: cacheTTL,
	}
}

// Fetch günlük kurları döner; önbellek süresi dolmamışsa ağa çıkmaz.
func (c *TCMBClient) Fetch(ctx context.Context) (*DailyRates, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cached != nil && time.Since(c.fetchedAt) < c.cacheTTL {
		return c.cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("tcmb isteği: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tcmb bülteni alınamadı: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tcmb bülteni alınamadı: HTTP %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tcmb bülteni okunamadı: %w", err)
	}

	rates, err := ParseBulletin(body)
	if err != nil {
		return nil, err
	}
	c.cached = rates
	c.fetchedAt = time.Now()
	return rates, nil
}

// ParseBulletin today.xml içeriğini çözümler. Yalnızca uygulamanın tanıdığı
// para birimleri (USD, EUR) okunur; Unit > 1 olan kurlar birim başına bölünür.
func ParseBulletin(data []byte) (*DailyRates, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("tcmb xml çözümleme: %w", err)
	}
	root := doc.SelectElement("Tarih_Date")
	if root == nil {
		return nil, fmt.Errorf("tcmb xml: Tarih_Date kökü yok")
	}

	rates := &DailyRates{Selling: make(map[string]decimal.Decimal)}
	if tarih := root.SelectAttrValue("Tarih", ""); tarih != "" {
		if t, err := time.Parse("02.01.2006", tarih); err == nil {
			rates.Date = t
		}
	}

	for _, cur := range root.SelectElements("Currency") {
		code := cur.SelectAttrValue("CurrencyCode", "")
		if code != entity.CurrencyUSD && code != entity.CurrencyEUR {
			continue
		}
		sellingEl := cur.SelectElement("ForexSelling")
		if sellingEl == nil || strings.TrimSpace(sellingEl.Text()) == "" {
			continue
		}
		selling, err := parseDecimal(sellingEl.Text())
		if err != nil {
			return nil, fmt.Errorf("tcmb %s kuru: %w", code, err)
		}
		if unitEl := cur.SelectElement("Unit"); unitEl != nil {
			unit, err := parseDecimal(unitEl.Text())
			if err == nil && unit.GreaterThan(decimal.NewFromInt(1)) {
				selling = selling.Div(unit)
			}
		}
		rates.Selling[code] = selling
	}
	if len(rates.Selling) == 0 {
		return nil, fmt.Errorf("tcmb xml: tanınan kur yok")
	}
	return rates, nil
}

// parseDecimal TCMB sayı biçimini çözer; ondalık ayıracı virgül gelebilir.
func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	return decimal.NewFromString(s)
}
