// handlers_test.go - Shared test environment: real router, real store,
// fresh SQLite database per test.

package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"inventory-backend/models"
	"inventory-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type testEnv struct {
	router *gin.Engine
	store  *store.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Sale{},
		&models.Expense{},
	))

	log := logrus.New()
	log.SetOutput(io.Discard)

	st := store.New(db, log)
	return &testEnv{
		router: NewRouter(db, st, nil, testSecret, log),
		store:  st,
	}
}

// request performs an HTTP request against the test router. A non-empty
// token is sent as a bearer credential; a non-nil body is sent as JSON.
func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// seedUser creates an account directly through the store.
func (e *testEnv) seedUser(t *testing.T, email, role string) *models.User {
	t.Helper()
	user, err := e.store.CreateUser(store.NewUser{
		Email:    email,
		Name:     "Test User",
		Password: "secret123",
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

// login authenticates through the real endpoint and returns the token.
func (e *testEnv) login(t *testing.T, email string) string {
	t.Helper()
	w := e.request(t, "POST", "/login", "", gin.H{"email": email, "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (e *testEnv) seedProduct(t *testing.T, sku string, quantity int, price float64) *models.Product {
	t.Helper()
	product, err := e.store.CreateProduct(store.NewProduct{
		Name:         "Laptop",
		SKU:          sku,
		Quantity:     quantity,
		ReorderLevel: 5,
		Price:        price,
		Cost:         price / 2,
		Category:     "Electronics",
	})
	require.NoError(t, err)
	return product
}
