package store

import (
	"testing"

	"inventory-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceSaleDecrementsStock(t *testing.T) {
	s := newTestStore(t)
	product := seedProduct(t, s, 15, 1200)
	user := seedUser(t, s, "seller@shop.com", models.RoleSalesgirl)

	sale, err := s.PlaceSale(product.ID, 2, models.PaymentCash, user.ID)
	require.NoError(t, err)

	assert.Equal(t, product.ID, sale.ProductID)
	assert.Equal(t, 2, sale.Quantity)
	assert.Equal(t, 1200.0, sale.Price)
	assert.Equal(t, 2400.0, sale.Total)
	assert.Equal(t, user.ID, sale.SalesPersonID)
	assert.False(t, sale.Date.IsZero())

	updated, err := s.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 13, updated.Quantity)
}

func TestPlaceSaleInsufficientStock(t *testing.T) {
	s := newTestStore(t)
	product := seedProduct(t, s, 3, 100)
	user := seedUser(t, s, "seller@shop.com", models.RoleSalesgirl)

	_, err := s.PlaceSale(product.ID, 5, models.PaymentPOS, user.ID)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// No mutation: stock untouched, no sale rows.
	updated, err := s.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Quantity)

	sales, err := s.ListSales()
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestPlaceSaleUnknownProduct(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, "seller@shop.com", models.RoleSalesgirl)

	_, err := s.PlaceSale(999, 1, models.PaymentCash, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlaceSaleRejectsBadInput(t *testing.T) {
	s := newTestStore(t)
	product := seedProduct(t, s, 10, 100)
	user := seedUser(t, s, "seller@shop.com", models.RoleSalesgirl)

	_, err := s.PlaceSale(product.ID, 0, models.PaymentCash, user.ID)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.PlaceSale(product.ID, -2, models.PaymentCash, user.ID)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.PlaceSale(product.ID, 1, "cheque", user.ID)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPlaceSaleExactStock(t *testing.T) {
	s := newTestStore(t)
	product := seedProduct(t, s, 4, 50)
	user := seedUser(t, s, "seller@shop.com", models.RoleSalesgirl)

	sale, err := s.PlaceSale(product.ID, 4, models.PaymentTransfer, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 200.0, sale.Total)

	updated, err := s.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)
}

func TestReverseSaleRestoresStock(t *testing.T) {
	s := newTestStore(t)
	product := seedProduct(t, s, 15, 1200)
	user := seedUser(t, s, "seller@shop.com", models.RoleSalesgirl)

	sale, err := s.PlaceSale(product.ID, 6, models.PaymentCash, user.ID)
	require.NoError(t, err)

	require.NoError(t, s.ReverseSale(sale.ID))

	updated, err := s.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, updated.Quantity)

	_, err = s.GetSale(sale.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReverseSaleTwice(t *testing.T) {
	s := newTestStore(t)
	product := seedProduct(t, s, 10, 100)
	user := seedUser(t, s, "seller@shop.com", models.RoleSalesgirl)

	sale, err := s.PlaceSale(product.ID, 3, models.PaymentCash, user.ID)
	require.NoError(t, err)
	require.NoError(t, s.ReverseSale(sale.ID))

	// Second reversal of the same id fails and mutates nothing.
	err = s.ReverseSale(sale.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := s.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, updated.Quantity)
}

func TestReverseSaleAfterProductDeleted(t *testing.T) {
	s := newTestStore(t)
	product := seedProduct(t, s, 10, 100)
	user := seedUser(t, s, "seller@shop.com", models.RoleSalesgirl)

	sale, err := s.PlaceSale(product.ID, 3, models.PaymentCash, user.ID)
	require.NoError(t, err)
	require.NoError(t, s.DeleteProduct(product.ID))

	// The restore has nowhere to go but the reversal still succeeds.
	require.NoError(t, s.ReverseSale(sale.ID))

	_, err = s.GetSale(sale.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListSalesPreloadsReferences(t *testing.T) {
	s := newTestStore(t)
	product := seedProduct(t, s, 10, 100)
	user := seedUser(t, s, "seller@shop.com", models.RoleSalesgirl)

	_, err := s.PlaceSale(product.ID, 1, models.PaymentPOS, user.ID)
	require.NoError(t, err)

	sales, err := s.ListSales()
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "Laptop", sales[0].Product.Name)
	assert.Equal(t, "seller@shop.com", sales[0].SalesPerson.Email)
}
