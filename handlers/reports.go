// reports.go - Dashboard and report endpoints
//
// Both endpoints fetch the record sets once and hand them to the pure
// reductions in the reports package; no aggregation happens in SQL.

package handlers

import (
	"net/http"

	"inventory-backend/reports"
	"inventory-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ReportsHandler struct {
	store *store.Store
	log   *logrus.Logger
}

func NewReportsHandler(s *store.Store, log *logrus.Logger) *ReportsHandler {
	return &ReportsHandler{store: s, log: log}
}

// Dashboard returns the headline stats block.
func (h *ReportsHandler) Dashboard(c *gin.Context) {
	products, err := h.store.ListProducts()
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	sales, err := h.store.ListSales()
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	expenses, err := h.store.ListExpenses()
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"totalProducts": len(products),
			"totalRevenue":  reports.Revenue(sales),
			"totalExpenses": reports.TotalExpenses(expenses),
			"profit":        reports.Profit(sales, expenses),
			"lowStock":      reports.LowStockCount(products),
		},
	})
}

// Reports returns the full aggregation set backing the reports screen.
func (h *ReportsHandler) Reports(c *gin.Context) {
	products, err := h.store.ListProducts()
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	sales, err := h.store.ListSales()
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	expenses, err := h.store.ListExpenses()
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalRevenue":       reports.Revenue(sales),
		"totalExpenses":      reports.TotalExpenses(expenses),
		"netProfit":          reports.Profit(sales, expenses),
		"profitMargin":       reports.ProfitMargin(sales, expenses),
		"inventoryValue":     reports.InventoryValue(products),
		"averagePrice":       reports.AveragePrice(products),
		"averageOrderValue":  reports.AverageOrderValue(sales),
		"totalSales":         len(sales),
		"salesByProduct":     reports.SalesByProduct(products, sales),
		"expensesByCategory": reports.ExpensesByCategory(expenses),
		"lowStockProducts":   reports.LowStockProducts(products),
	})
}
