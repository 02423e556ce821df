// permissions.go - Declarative role-based access control
//
// One table maps each role to the operations it may perform; a single
// middleware checks it. Handlers never inspect roles themselves.

package middleware

import (
	"net/http"

	"inventory-backend/models"

	"github.com/gin-gonic/gin"
)

// Operations gated by the permission table.
const (
	PermDashboardView   = "dashboard.view"
	PermInventoryView   = "inventory.view"
	PermInventoryManage = "inventory.manage"
	PermSalesView       = "sales.view"
	PermSalesCreate     = "sales.create"
	PermSalesDelete     = "sales.delete"
	PermExpensesView    = "expenses.view"
	PermExpensesManage  = "expenses.manage"
	PermUsersManage     = "users.manage"
	PermReportsView     = "reports.view"
)

// rolePermissions mirrors the screens the web client shows each role:
// salesgirls only record and view sales; managers additionally run
// inventory and expenses; admins also manage users and see reports.
var rolePermissions = map[string][]string{
	models.RoleAdmin: {
		PermDashboardView, PermInventoryView, PermInventoryManage,
		PermSalesView, PermSalesCreate, PermSalesDelete,
		PermExpensesView, PermExpensesManage,
		PermUsersManage, PermReportsView,
	},
	models.RoleManager: {
		PermDashboardView, PermInventoryView, PermInventoryManage,
		PermSalesView, PermSalesCreate, PermSalesDelete,
		PermExpensesView, PermExpensesManage,
	},
	models.RoleSalesgirl: {
		PermSalesView, PermSalesCreate,
	},
}

// Allowed reports whether the role may perform the operation.
func Allowed(role, operation string) bool {
	for _, op := range rolePermissions[role] {
		if op == operation {
			return true
		}
	}
	return false
}

// Require returns a middleware that rejects callers whose role is not
// allowed to perform the operation. Must run after Auth.
func Require(operation string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if !Allowed(user.Role, operation) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "permission denied"})
			return
		}
		c.Next()
	}
}
