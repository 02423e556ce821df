// user.go - Defines the User model and role enumeration

package models

// Access tiers. Every account carries exactly one of these.
const (
	RoleAdmin     = "admin"
	RoleManager   = "manager"
	RoleSalesgirl = "salesgirl"
)

// ValidRole reports whether r is a known access tier.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleSalesgirl:
		return true
	}
	return false
}

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Name     string `gorm:"not null" json:"name"`
	Role     string `gorm:"not null;default:'salesgirl'" json:"role"`
}
