// sale.go - Defines the Sale model and payment mode enumeration

package models

import "time"

// Accepted payment modes.
const (
	PaymentPOS      = "POS"
	PaymentTransfer = "transfer"
	PaymentCash     = "cash"
)

// ValidPaymentMode reports whether m is a known payment mode.
func ValidPaymentMode(m string) bool {
	switch m {
	case PaymentPOS, PaymentTransfer, PaymentCash:
		return true
	}
	return false
}

// Sale records one stock sale. Price is the product's unit price at the
// time of sale; Total = Price * Quantity. Sales are immutable once
// placed, except for reversal (deletion plus stock restore).
type Sale struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ProductID     uint      `gorm:"not null" json:"productId"`
	Product       Product   `gorm:"foreignKey:ProductID" json:"product"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	Price         float64   `gorm:"not null" json:"price"`
	Total         float64   `gorm:"not null" json:"total"`
	Date          time.Time `gorm:"not null" json:"date"`
	SalesPersonID uint      `gorm:"not null" json:"salesPersonId"`
	SalesPerson   User      `gorm:"foreignKey:SalesPersonID" json:"salesPerson"`
	PaymentMode   string    `gorm:"not null" json:"paymentMode"`
}
