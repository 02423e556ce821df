package store

import (
	"io"
	"path/filepath"
	"testing"

	"inventory-backend/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestStore opens a fresh SQLite database for each test.
func newTestStore(t *testing.T) *Store {
	t.Helper()

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
	return New(db, log)
}

func seedProduct(t *testing.T, s *Store, quantity int, price float64) *models.Product {
	t.Helper()
	product, err := s.CreateProduct(NewProduct{
		Name:         "Laptop",
		SKU:          "LAP-001",
		Quantity:     quantity,
		ReorderLevel: 5,
		Price:        price,
		Cost:         price / 2,
		Category:     "Electronics",
	})
	require.NoError(t, err)
	return product
}

func seedUser(t *testing.T, s *Store, email, role string) *models.User {
	t.Helper()
	user, err := s.CreateUser(NewUser{
		Email:    email,
		Name:     "Test User",
		Password: "secret123",
		Role:     role,
	})
	require.NoError(t, err)
	return user
}
