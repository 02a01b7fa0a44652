package model

import "farhatna/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "id"
	FieldEmail    = "email"
	FieldName     = "name"
	FieldPassword = "password"
	FieldRole     = "role"
)

// Role gates which operations a session may perform.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// Capability is a single permitted action, checked instead of comparing
// role strings at decision points.
type Capability int

const (
	CapabilityCreateBooking Capability = iota
	CapabilityManageBookings
)

var roleCapabilities = map[Role][]Capability{
	RoleCustomer: {CapabilityCreateBooking},
	RoleAdmin:    {CapabilityManageBookings},
}

func (r Role) Valid() bool {
	_, ok := roleCapabilities[r]

	return ok
}

func (r Role) Can(capability Capability) bool {
	for _, c := range roleCapabilities[r] {
		if c == capability {
			return true
		}
	}

	return false
}

type User struct {
	ID       string `db:"id"`
	Email    string `db:"email"`
	Name     string `db:"name"`
	Password string `db:"password"`
	Role     Role   `db:"role"`
	model.Metadata
}
