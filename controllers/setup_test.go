package controllers_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sweetdelights/pastry-shop/initializers"
	"github.com/sweetdelights/pastry-shop/models"
	"github.com/sweetdelights/pastry-shop/routes"
)

// projectRoot resolves the repo root from this file so templates load no
// matter where the test binary runs.
func projectRoot() string {
	_, currentFile, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(currentFile), "..")
}

// setupApp wires the full route surface against a fresh in-memory database.
func setupApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Pastry{}, &models.Customer{}, &models.Order{}, &models.OrderItem{}))

	initializers.DB = db
	initializers.AppConfig = initializers.Config{
		SecretKey:             "test-secret-key",
		DeliveryFee:           5.99,
		CompanyEmail:          "orders@sweetdelights.com",
		CompanyPhone:          "(555) 123-4567",
		MaxContentLength:      1 << 20,
		SessionCookieHTTPOnly: true,
		SessionLifetime:       3600,
	}
	initializers.InitSessionStore()

	router := gin.New()
	router.LoadHTMLGlob(filepath.Join(projectRoot(), "templates", "*.html"))
	routes.CatalogRoutes(router)
	routes.CartRoutes(router)
	routes.OrderRoutes(router)
	routes.APIRoutes(router)
	return router
}

func seedPastry(t *testing.T, name string, price float64, category string, available bool) models.Pastry {
	t.Helper()
	pastry := models.Pastry{
		Name:        name,
		Description: name + " description",
		Price:       price,
		ImageURL:    "https://example.com/" + strings.ReplaceAll(strings.ToLower(name), " ", "-") + ".jpg",
		Category:    category,
		Available:   available,
	}
	require.NoError(t, initializers.DB.Create(&pastry).Error)
	return pastry
}

// testClient runs requests against the router while carrying session cookies
// across calls, the way a browser would.
type testClient struct {
	router  *gin.Engine
	cookies map[string]*http.Cookie
}

func newTestClient(router *gin.Engine) *testClient {
	return &testClient{router: router, cookies: make(map[string]*http.Cookie)}
}

func (c *testClient) do(t *testing.T, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	c.router.ServeHTTP(recorder, req)

	for _, cookie := range recorder.Result().Cookies() {
		c.cookies[cookie.Name] = cookie
	}
	return recorder
}

func (c *testClient) get(t *testing.T, path string) *httptest.ResponseRecorder {
	return c.do(t, http.MethodGet, path, nil)
}

func (c *testClient) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	return c.do(t, http.MethodPost, path, form)
}

func pastryIDString(pastry models.Pastry) string {
	return fmt.Sprint(pastry.ID)
}

func validOrderForm(email string) url.Values {
	return url.Values{
		"name":          {"Alice Baker"},
		"email":         {email},
		"phone":         {"555-0100"},
		"delivery_date": {"2026-09-10"},
		"address":       {"12 Flour Street"},
		"city":          {"Ovenville"},
		"postal_code":   {"12345"},
	}
}
