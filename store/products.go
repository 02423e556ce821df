package store

import (
	"errors"
	"fmt"
	"strings"

	"inventory-backend/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NewProduct is the input for CreateProduct.
type NewProduct struct {
	Name         string
	SKU          string
	Quantity     int
	ReorderLevel int
	Price        float64
	Cost         float64
	Category     string
}

// ProductPatch is a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name         *string
	SKU          *string
	Quantity     *int
	ReorderLevel *int
	Price        *float64
	Cost         *float64
	Category     *string
}

func (s *Store) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("name asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &product, nil
}

func (s *Store) CreateProduct(in NewProduct) (*models.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.SKU = strings.TrimSpace(in.SKU)
	in.Category = strings.TrimSpace(in.Category)

	if in.Name == "" || in.SKU == "" || in.Category == "" {
		return nil, fmt.Errorf("%w: name, sku and category are required", ErrValidation)
	}
	if in.Quantity < 0 || in.ReorderLevel < 0 || in.Price < 0 || in.Cost < 0 {
		return nil, fmt.Errorf("%w: quantity, reorder level, price and cost must be non-negative", ErrValidation)
	}

	product := models.Product{
		Name:         in.Name,
		SKU:          in.SKU,
		Quantity:     in.Quantity,
		ReorderLevel: in.ReorderLevel,
		Price:        in.Price,
		Cost:         in.Cost,
		Category:     in.Category,
	}
	if err := s.db.Create(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: sku %q already exists", ErrDuplicateKey, in.SKU)
		}
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"product_id": product.ID, "sku": product.SKU}).Info("product created")
	return &product, nil
}

// UpdateProduct applies the supplied fields only. An empty patch is a
// no-op that never touches the store and returns the current record.
func (s *Store) UpdateProduct(id uint, patch ProductPatch) (*models.Product, error) {
	updates := map[string]interface{}{}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		updates["name"] = name
	}
	if patch.SKU != nil {
		sku := strings.TrimSpace(*patch.SKU)
		if sku == "" {
			return nil, fmt.Errorf("%w: sku cannot be empty", ErrValidation)
		}
		updates["sku"] = sku
	}
	if patch.Category != nil {
		category := strings.TrimSpace(*patch.Category)
		if category == "" {
			return nil, fmt.Errorf("%w: category cannot be empty", ErrValidation)
		}
		updates["category"] = category
	}
	if patch.Quantity != nil {
		if *patch.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity cannot be negative", ErrValidation)
		}
		updates["quantity"] = *patch.Quantity
	}
	if patch.ReorderLevel != nil {
		if *patch.ReorderLevel < 0 {
			return nil, fmt.Errorf("%w: reorder level cannot be negative", ErrValidation)
		}
		updates["reorder_level"] = *patch.ReorderLevel
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
		}
		updates["price"] = *patch.Price
	}
	if patch.Cost != nil {
		if *patch.Cost < 0 {
			return nil, fmt.Errorf("%w: cost cannot be negative", ErrValidation)
		}
		updates["cost"] = *patch.Cost
	}

	if len(updates) == 0 {
		return s.GetProduct(id)
	}

	res := s.db.Model(&models.Product{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: sku already exists", ErrDuplicateKey)
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}

	return s.GetProduct(id)
}

// DeleteProduct removes the product unconditionally. Existing sales
// keep their product reference; reversing one of them later restores
// nothing.
func (s *Store) DeleteProduct(id uint) error {
	res := s.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	s.log.WithField("product_id", id).Info("product deleted")
	return nil
}
