// Package reports computes derived statistics over already-fetched
// record sets. Every function is a pure reduction: no store access, no
// side effects, deterministic output (including for empty input).
package reports

import (
	"sort"

	"inventory-backend/models"
)

// Revenue is the sum of sale totals.
func Revenue(sales []models.Sale) float64 {
	var total float64
	for _, s := range sales {
		total += s.Total
	}
	return total
}

// TotalExpenses is the sum of expense amounts.
func TotalExpenses(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// Profit is revenue minus expenses.
func Profit(sales []models.Sale, expenses []models.Expense) float64 {
	return Revenue(sales) - TotalExpenses(expenses)
}

// AverageOrderValue is revenue divided by sale count, 0 when there are
// no sales.
func AverageOrderValue(sales []models.Sale) float64 {
	if len(sales) == 0 {
		return 0
	}
	return Revenue(sales) / float64(len(sales))
}

// LowStockCount counts products at or below their reorder level.
func LowStockCount(products []models.Product) int {
	count := 0
	for i := range products {
		if products[i].LowStock() {
			count++
		}
	}
	return count
}

// LowStockProducts returns the products at or below their reorder level.
func LowStockProducts(products []models.Product) []models.Product {
	low := []models.Product{}
	for _, p := range products {
		if p.LowStock() {
			low = append(low, p)
		}
	}
	return low
}

// InventoryValue is the stock on hand priced at unit cost.
func InventoryValue(products []models.Product) float64 {
	var total float64
	for _, p := range products {
		total += float64(p.Quantity) * p.Cost
	}
	return total
}

// ProductSales is the per-product slice of SalesByProduct.
type ProductSales struct {
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Sales     int     `json:"sales"`
	Revenue   float64 `json:"revenue"`
}

// SalesByProduct reports sale count and revenue per product, in the
// order the products were supplied.
func SalesByProduct(products []models.Product, sales []models.Sale) []ProductSales {
	out := make([]ProductSales, 0, len(products))
	for _, p := range products {
		entry := ProductSales{ProductID: p.ID, Name: p.Name}
		for _, s := range sales {
			if s.ProductID == p.ID {
				entry.Sales++
				entry.Revenue += s.Total
			}
		}
		out = append(out, entry)
	}
	return out
}

// CategoryAmount is one row of ExpensesByCategory.
type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// ExpensesByCategory sums expenses per category, sorted by category
// name. Categories with no expenses do not appear.
func ExpensesByCategory(expenses []models.Expense) []CategoryAmount {
	sums := map[string]float64{}
	for _, e := range expenses {
		sums[e.Category] += e.Amount
	}

	out := make([]CategoryAmount, 0, len(sums))
	for category, amount := range sums {
		out = append(out, CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// ProfitMargin is profit as a percentage of revenue, 0 when there is no
// revenue.
func ProfitMargin(sales []models.Sale, expenses []models.Expense) float64 {
	revenue := Revenue(sales)
	if revenue == 0 {
		return 0
	}
	return Profit(sales, expenses) / revenue * 100
}

// AveragePrice is the mean unit price across products, 0 when there are
// none.
func AveragePrice(products []models.Product) float64 {
	if len(products) == 0 {
		return 0
	}
	var total float64
	for _, p := range products {
		total += p.Price
	}
	return total / float64(len(products))
}
