package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/litrosmakina/ticari-api/internal/interfaces/http"
	pkgjwt "github.com/litrosmakina/ticari-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test yardımcıları
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "ticari-api-test"
	testExpMin    = 60
)

// buildTestApp JWT + rol kontrolünden geçen istekler için 200 dönen
// minimal bir Fiber uygulaması kurar.
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole verilen rolle JWT üretir.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "geçerli bir JWT üretilebilmeli")
	return "Bearer " + tok
}

// doRequest GET /protected isteği atar ve yanıtı döner.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole testleri
// ──────────────────────────────────────────────────────────────────────────────

// Kullanıcı gerekli role sahip → geçmeli (HTTP 200).
func TestRequireRole_AdminYetkiliRotayaGirer(t *testing.T) {
	app := buildTestApp("ADMIN")
	resp := doRequest(t, app, tokenForRole(t, "ADMIN"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"ADMIN kendi rotasına girebilmeli")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "ADMIN", body["role"])
}

// Kullanıcı izin verilen rollerden birine sahip (çoklu rol) → HTTP 200.
func TestRequireRole_MuhasebeciCokluRolRotasinaGirer(t *testing.T) {
	app := buildTestApp("ADMIN", "ACCOUNTANT")
	resp := doRequest(t, app, tokenForRole(t, "ACCOUNTANT"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"ACCOUNTANT, admin veya muhasebeci izinli rotaya girebilmeli")
}

// Kullanıcının rolü farklı → HTTP 403 Forbidden.
func TestRequireRole_SatisciAdminRotasindaEngellenir(t *testing.T) {
	app := buildTestApp("ADMIN")
	resp := doRequest(t, app, tokenForRole(t, "SALES"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"SALES admin rotasına girememeli")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"hata yanıtı FORBIDDEN kodunu içermeli")
}

// Rol claim'i olmayan token → HTTP 401 MISSING_ROLE.
func TestRequireRole_RolsuzToken401(t *testing.T) {
	app := buildTestApp("ADMIN")
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

// Authorization başlığı yok → HTTP 401 MISSING_TOKEN.
func TestRequireRole_BasliksizIstek401(t *testing.T) {
	app := buildTestApp("ADMIN")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Bozuk token → HTTP 401 INVALID_TOKEN.
func TestRequireRole_BozukToken401(t *testing.T) {
	app := buildTestApp("ADMIN")
	resp := doRequest(t, app, "Bearer gecersiz.token.degeri")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware — claim çıkarımı
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ClaimleriCikartir(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "ADMIN"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "ADMIN", body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// JWT üretme/çözme bütünlüğü
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_UretVeCoz(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "ACCOUNTANT", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "ACCOUNTANT", role)
}

func TestJWT_SuresiDolmusTokenHata(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "ADMIN", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "süresi dolmuş token hata dönmeli")
}

func TestJWT_YanlisSecretHata(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "ADMIN", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("bambaska-bir-secret-degeri", tok)
	assert.Error(t, err, "yanlış secret token'ı geçersiz kılmalı")
}
