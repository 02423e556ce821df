// expense.go - Defines the Expense model

package models

import "time"

// Expense records a business cost. Expenses are created and deleted,
// never updated.
type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"not null" json:"description"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Category    string    `gorm:"not null" json:"category"`
	Date        time.Time `gorm:"not null" json:"date"`
	CreatedBy   uint      `gorm:"not null" json:"createdBy"`
	Creator     User      `gorm:"foreignKey:CreatedBy" json:"creator"`
}
