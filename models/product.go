// product.go - Defines the Product model

package models

type Product struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"not null" json:"name"`
	SKU          string  `gorm:"column:sku;unique;not null" json:"sku"`
	Quantity     int     `gorm:"not null" json:"quantity"`
	ReorderLevel int     `gorm:"not null" json:"reorderLevel"`
	Price        float64 `gorm:"not null" json:"price"`
	Cost         float64 `gorm:"not null" json:"cost"`
	Category     string  `gorm:"not null" json:"category"`
}

// LowStock reports whether the product has fallen to or below its
// reorder level.
func (p *Product) LowStock() bool {
	return p.Quantity <= p.ReorderLevel
}
