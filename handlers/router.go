// router.go - Route table: every endpoint with its permission gate

package handlers

import (
	"inventory-backend/alerts"
	"inventory-backend/middleware"
	"inventory-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NewRouter builds the full HTTP surface. Only /login is public; every
// /api route runs behind JWT auth plus the permission table.
func NewRouter(db *gorm.DB, st *store.Store, pub *alerts.Publisher, secret string, log *logrus.Logger) *gin.Engine {
	auth := NewAuthHandler(st, secret, log)
	users := NewUserHandler(st, log)
	products := NewProductHandler(st, log)
	sales := NewSaleHandler(st, pub, log)
	expenses := NewExpenseHandler(st, log)
	rep := NewReportsHandler(st, log)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	r.POST("/login", auth.Login)

	api := r.Group("/api")
	api.Use(middleware.Auth(db, secret, log))
	{
		api.GET("/dashboard", middleware.Require(middleware.PermDashboardView), rep.Dashboard)
		api.GET("/reports", middleware.Require(middleware.PermReportsView), rep.Reports)

		inv := api.Group("/products")
		inv.GET("", middleware.Require(middleware.PermInventoryView), products.List)
		inv.GET("/:id", middleware.Require(middleware.PermInventoryView), products.Get)
		inv.POST("", middleware.Require(middleware.PermInventoryManage), products.Create)
		inv.PATCH("/:id", middleware.Require(middleware.PermInventoryManage), products.Update)
		inv.DELETE("/:id", middleware.Require(middleware.PermInventoryManage), products.Delete)

		sl := api.Group("/sales")
		sl.GET("", middleware.Require(middleware.PermSalesView), sales.List)
		sl.GET("/:id", middleware.Require(middleware.PermSalesView), sales.Get)
		sl.POST("", middleware.Require(middleware.PermSalesCreate), sales.Create)
		sl.DELETE("/:id", middleware.Require(middleware.PermSalesDelete), sales.Delete)

		ex := api.Group("/expenses")
		ex.GET("", middleware.Require(middleware.PermExpensesView), expenses.List)
		ex.GET("/:id", middleware.Require(middleware.PermExpensesView), expenses.Get)
		ex.POST("", middleware.Require(middleware.PermExpensesManage), expenses.Create)
		ex.DELETE("/:id", middleware.Require(middleware.PermExpensesManage), expenses.Delete)

		us := api.Group("/users")
		us.Use(middleware.Require(middleware.PermUsersManage))
		us.GET("", users.List)
		us.GET("/:id", users.Get)
		us.POST("", users.Create)
		us.DELETE("/:id", users.Delete)
	}

	return r
}
