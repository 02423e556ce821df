// sales.go - Sale placement and reversal endpoints

package handlers

import (
	"net/http"

	"inventory-backend/alerts"
	"inventory-backend/middleware"
	"inventory-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SaleHandler struct {
	store  *store.Store
	alerts *alerts.Publisher
	log    *logrus.Logger
}

func NewSaleHandler(s *store.Store, pub *alerts.Publisher, log *logrus.Logger) *SaleHandler {
	return &SaleHandler{store: s, alerts: pub, log: log}
}

func (h *SaleHandler) List(c *gin.Context) {
	sales, err := h.store.ListSales()
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}

func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	sale, err := h.store.GetSale(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, sale)
}

type PlaceSaleInput struct {
	ProductID   uint   `json:"productId" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required"`
	PaymentMode string `json:"paymentMode" binding:"required"`
	// Defaults to the authenticated caller when omitted.
	SalesPersonID uint `json:"salesPersonId"`
}

// Create places a sale. After the transaction commits, a low-stock
// alert is published if the product fell to or below its reorder level.
func (h *SaleHandler) Create(c *gin.Context) {
	var input PlaceSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	salesPersonID := input.SalesPersonID
	if salesPersonID == 0 {
		if user := middleware.CurrentUser(c); user != nil {
			salesPersonID = user.ID
		}
	}

	sale, err := h.store.PlaceSale(input.ProductID, input.Quantity, input.PaymentMode, salesPersonID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if product, err := h.store.GetProduct(sale.ProductID); err == nil && product.LowStock() {
		h.alerts.LowStock(product)
	}

	c.JSON(http.StatusCreated, sale)
}

// Delete reverses a sale: the record is removed and the sold quantity
// returns to stock.
func (h *SaleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.store.ReverseSale(id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "sale reversed"})
}
