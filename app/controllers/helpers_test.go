package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/controllers"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/models"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/repositories"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/routes"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/services"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/config"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/database"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/middleware"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/payment"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/router"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/session"
)

// ─── Fake payment clients ─────────────────────────────────────────────────────

type fakeCardClient struct {
	lastAmount   int64
	lastCurrency string
	secret       string
	err          error
}

func (f *fakeCardClient) CreateIntent(_ context.Context, amountMinor int64, currency string) (string, error) {
	f.lastAmount = amountMinor
	f.lastCurrency = currency
	return f.secret, f.err
}

type fakeUPIClient struct {
	lastOrder map[string]interface{}
	order     map[string]interface{}
	payment   map[string]interface{}
	orderErr  error
	fetchErr  error
}

func (f *fakeUPIClient) CreateOrder(data map[string]interface{}) (map[string]interface{}, error) {
	f.lastOrder = data
	return f.order, f.orderErr
}

func (f *fakeUPIClient) FetchPayment(string) (map[string]interface{}, error) {
	return f.payment, f.fetchErr
}

// ─── Test app ─────────────────────────────────────────────────────────────────

var (
	testCard = &fakeCardClient{secret: "pi_test_secret"}
	testUPI  = &fakeUPIClient{order: map[string]interface{}{"id": "order_test", "amount": 0}}
	handler  http.Handler
)

func TestMain(m *testing.M) {
	config.Set("DB_DRIVER", "sqlite")
	config.Set("DATABASE_DSN", "file:controllers_test?mode=memory&cache=shared")
	config.Set("SESSION_SECRET", "test-secret")

	if err := database.Connect(); err != nil {
		fmt.Fprintln(os.Stderr, "connect test db:", err)
		os.Exit(1)
	}
	if err := database.DB.AutoMigrate(
		&models.Category{}, &models.Product{}, &models.User{},
		&models.Admin{}, &models.Order{},
	); err != nil {
		fmt.Fprintln(os.Stderr, "migrate test db:", err)
		os.Exit(1)
	}

	handler = buildHandler()
	os.Exit(m.Run())
}

func buildHandler() http.Handler {
	r := router.New()
	r.Use(
		middleware.Recovery,
		session.Middleware(session.NewMemoryStore(), session.DefaultOptions()),
	)

	products := repositories.NewProductRepository()
	orders := repositories.NewOrderRepository()
	auth := services.NewAuthService(repositories.NewUserRepository(), repositories.NewAdminRepository())
	payments := services.NewPaymentService(
		payment.NewCardProvider(testCard),
		payment.NewUPIProvider(testUPI),
		payment.NewCODProvider(orders),
	)

	routes.Register(r, &routes.Controllers{
		Products:   controllers.NewProductController(products),
		Categories: controllers.NewCategoryController(repositories.NewCategoryRepository()),
		Orders:     controllers.NewOrderController(orders),
		Auth:       controllers.NewAuthController(auth),
		Payments:   controllers.NewPaymentController(payments),
		Dashboard:  controllers.NewDashboardController(products),
		Uploads:    controllers.NewUploadController(),
	})

	return r.Handler()
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

func do(t *testing.T, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

// mustSeedAdmin inserts a console account if it does not exist yet.
func mustSeedAdmin(t *testing.T, username, password string) {
	t.Helper()

	var existing models.Admin
	if err := database.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := database.DB.Create(&models.Admin{Username: username, PasswordHash: string(hash)}).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
}

// adminCookie logs the default test admin in and returns the session cookie.
func adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	mustSeedAdmin(t, "admin", "secret")

	rec := do(t, http.MethodPost, "/api/admin/login", map[string]string{
		"username": "admin",
		"password": "secret",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("admin login: status %d body %s", rec.Code, rec.Body.String())
	}

	for _, c := range rec.Result().Cookies() {
		if c.Name == "stark_session" {
			return c
		}
	}
	t.Fatal("admin login set no session cookie")
	return nil
}

func mustSeedCategory(t *testing.T, name string) models.Category {
	t.Helper()

	var existing models.Category
	if err := database.DB.Where("name = ?", name).First(&existing).Error; err == nil {
		return existing
	}
	cat := models.Category{Name: name}
	if err := database.DB.Create(&cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return cat
}

func mustSeedProduct(t *testing.T, p models.Product) models.Product {
	t.Helper()
	if err := database.DB.Create(&p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func findProductByName(name string, dest *models.Product) error {
	return database.DB.Where("name = ?", name).First(dest).Error
}
