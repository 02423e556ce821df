package middleware

import (
	"testing"

	"inventory-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestPermissionTable(t *testing.T) {
	// Admin: everything.
	for _, op := range rolePermissions[models.RoleAdmin] {
		assert.True(t, Allowed(models.RoleAdmin, op))
	}

	// Manager: no user management, no reports.
	assert.True(t, Allowed(models.RoleManager, PermInventoryManage))
	assert.True(t, Allowed(models.RoleManager, PermSalesDelete))
	assert.False(t, Allowed(models.RoleManager, PermUsersManage))
	assert.False(t, Allowed(models.RoleManager, PermReportsView))

	// Salesgirl: sales only, and no reversal.
	assert.True(t, Allowed(models.RoleSalesgirl, PermSalesView))
	assert.True(t, Allowed(models.RoleSalesgirl, PermSalesCreate))
	assert.False(t, Allowed(models.RoleSalesgirl, PermSalesDelete))
	assert.False(t, Allowed(models.RoleSalesgirl, PermInventoryView))
	assert.False(t, Allowed(models.RoleSalesgirl, PermDashboardView))
}

func TestUnknownRoleHasNoPermissions(t *testing.T) {
	assert.False(t, Allowed("intern", PermSalesView))
	assert.False(t, Allowed("", PermSalesView))
}
