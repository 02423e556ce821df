package store

import (
	"errors"
	"fmt"
	"time"

	"inventory-backend/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func (s *Store) ListSales() ([]models.Sale, error) {
	var sales []models.Sale
	err := s.db.Preload("Product").Preload("SalesPerson").
		Order("date desc").Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (s *Store) GetSale(id uint) (*models.Sale, error) {
	var sale models.Sale
	err := s.db.Preload("Product").Preload("SalesPerson").First(&sale, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("sale %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &sale, nil
}

// PlaceSale inserts a sale priced at the product's current unit price
// and decrements the product's stock, both inside one transaction.
// Either both writes land or neither does.
func (s *Store) PlaceSale(productID uint, quantity int, paymentMode string, salesPersonID uint) (*models.Sale, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if !models.ValidPaymentMode(paymentMode) {
		return nil, fmt.Errorf("%w: unknown payment mode %q", ErrValidation, paymentMode)
	}

	var sale models.Sale
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %d: %w", productID, ErrNotFound)
			}
			return err
		}
		if product.Quantity < quantity {
			return fmt.Errorf("%w: requested %d, available %d", ErrInsufficientStock, quantity, product.Quantity)
		}

		sale = models.Sale{
			ProductID:     productID,
			Quantity:      quantity,
			Price:         product.Price,
			Total:         product.Price * float64(quantity),
			Date:          time.Now(),
			SalesPersonID: salesPersonID,
			PaymentMode:   paymentMode,
		}
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		// Conditional decrement: a concurrent sale that won the race
		// between our read and this write leaves zero rows affected,
		// which aborts the whole transaction.
		res := tx.Model(&models.Product{}).
			Where("id = ? AND quantity >= ?", productID, quantity).
			Update("quantity", gorm.Expr("quantity - ?", quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: requested %d, available %d", ErrInsufficientStock, quantity, product.Quantity)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"sale_id":    sale.ID,
		"product_id": productID,
		"quantity":   quantity,
		"total":      sale.Total,
	}).Info("sale placed")
	return &sale, nil
}

// ReverseSale deletes the sale and restores the sold quantity to the
// referenced product, both inside one transaction. A second reversal of
// the same id fails with ErrNotFound and mutates nothing. If the
// product was deleted in the meantime the restore updates zero rows and
// the reversal still stands.
func (s *Store) ReverseSale(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var sale models.Sale
		if err := tx.First(&sale, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("sale %d: %w", id, ErrNotFound)
			}
			return err
		}
		if err := tx.Delete(&sale).Error; err != nil {
			return err
		}
		return tx.Model(&models.Product{}).
			Where("id = ?", sale.ProductID).
			Update("quantity", gorm.Expr("quantity + ?", sale.Quantity)).Error
	})
	if err != nil {
		return err
	}

	s.log.WithField("sale_id", id).Info("sale reversed")
	return nil
}
