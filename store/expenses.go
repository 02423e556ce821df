package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"inventory-backend/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NewExpense is the input for CreateExpense. Date is assigned by the
// store at creation time.
type NewExpense struct {
	Description string
	Amount      float64
	Category    string
	CreatedBy   uint
}

func (s *Store) ListExpenses() ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Order("date desc").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (s *Store) GetExpense(id uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("expense %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &expense, nil
}

func (s *Store) CreateExpense(in NewExpense) (*models.Expense, error) {
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)

	if in.Description == "" || in.Category == "" {
		return nil, fmt.Errorf("%w: description and category are required", ErrValidation)
	}
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	expense := models.Expense{
		Description: in.Description,
		Amount:      in.Amount,
		Category:    in.Category,
		Date:        time.Now(),
		CreatedBy:   in.CreatedBy,
	}
	if err := s.db.Create(&expense).Error; err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"expense_id": expense.ID, "amount": expense.Amount}).Info("expense created")
	return &expense, nil
}

func (s *Store) DeleteExpense(id uint) error {
	res := s.db.Delete(&models.Expense{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("expense %d: %w", id, ErrNotFound)
	}
	s.log.WithField("expense_id", id).Info("expense deleted")
	return nil
}
