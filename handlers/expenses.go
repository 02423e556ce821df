// expenses.go - Expense tracking endpoints

package handlers

import (
	"net/http"

	"inventory-backend/middleware"
	"inventory-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ExpenseHandler struct {
	store *store.Store
	log   *logrus.Logger
}

func NewExpenseHandler(s *store.Store, log *logrus.Logger) *ExpenseHandler {
	return &ExpenseHandler{store: s, log: log}
}

func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.store.ListExpenses()
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *ExpenseHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	expense, err := h.store.GetExpense(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

type CreateExpenseInput struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Category    string  `json:"category" binding:"required"`
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var input CreateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var createdBy uint
	if user := middleware.CurrentUser(c); user != nil {
		createdBy = user.ID
	}

	expense, err := h.store.CreateExpense(store.NewExpense{
		Description: input.Description,
		Amount:      input.Amount,
		Category:    input.Category,
		CreatedBy:   createdBy,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteExpense(id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "expense deleted"})
}
