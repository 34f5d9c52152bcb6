package model

import "time"

// Contact is a business relation. Clients buy, suppliers deliver; only
// clients may appear on sales.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Contact roles.
const (
	RoleClient   = "contact"
	RoleSupplier = "supplier"
)

// ValidContactRole reports whether role is a known contact role.
func ValidContactRole(role string) bool {
	return role == RoleClient || role == RoleSupplier
}
