// products.go - Inventory management endpoints

package handlers

import (
	"net/http"

	"inventory-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	store *store.Store
	log   *logrus.Logger
}

func NewProductHandler(s *store.Store, log *logrus.Logger) *ProductHandler {
	return &ProductHandler{store: s, log: log}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.store.ListProducts()
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	product, err := h.store.GetProduct(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

type CreateProductInput struct {
	Name         string  `json:"name" binding:"required"`
	SKU          string  `json:"sku" binding:"required"`
	Quantity     int     `json:"quantity"`
	ReorderLevel int     `json:"reorderLevel"`
	Price        float64 `json:"price"`
	Cost         float64 `json:"cost"`
	Category     string  `json:"category" binding:"required"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.store.CreateProduct(store.NewProduct{
		Name:         input.Name,
		SKU:          input.SKU,
		Quantity:     input.Quantity,
		ReorderLevel: input.ReorderLevel,
		Price:        input.Price,
		Cost:         input.Cost,
		Category:     input.Category,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProductInput carries a partial field set; absent fields stay
// untouched.
type UpdateProductInput struct {
	Name         *string  `json:"name"`
	SKU          *string  `json:"sku"`
	Quantity     *int     `json:"quantity"`
	ReorderLevel *int     `json:"reorderLevel"`
	Price        *float64 `json:"price"`
	Cost         *float64 `json:"cost"`
	Category     *string  `json:"category"`
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.store.UpdateProduct(id, store.ProductPatch{
		Name:         input.Name,
		SKU:          input.SKU,
		Quantity:     input.Quantity,
		ReorderLevel: input.ReorderLevel,
		Price:        input.Price,
		Cost:         input.Cost,
		Category:     input.Category,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteProduct(id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}
