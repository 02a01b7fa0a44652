package model_test

import (
	"testing"

	"farhatna/internal/domains/user/model"
)

func TestRole_Valid(t *testing.T) {
	tests := []struct {
		name     string
		role     model.Role
		expected bool
	}{
		{
			name:     "customer",
			role:     model.RoleCustomer,
			expected: true,
		},
		{
			name:     "admin",
			role:     model.RoleAdmin,
			expected: true,
		},
		{
			name:     "unknown role",
			role:     model.Role("SUPERUSER"),
			expected: false,
		},
		{
			name:     "lowercase is not a role",
			role:     model.Role("customer"),
			expected: false,
		},
		{
			name:     "empty role",
			role:     model.Role(""),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.role.Valid(); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRole_Can(t *testing.T) {
	tests := []struct {
		name       string
		role       model.Role
		capability model.Capability
		expected   bool
	}{
		{
			name:       "customer can create bookings",
			role:       model.RoleCustomer,
			capability: model.CapabilityCreateBooking,
			expected:   true,
		},
		{
			name:       "customer cannot manage bookings",
			role:       model.RoleCustomer,
			capability: model.CapabilityManageBookings,
			expected:   false,
		},
		{
			name:       "admin can manage bookings",
			role:       model.RoleAdmin,
			capability: model.CapabilityManageBookings,
			expected:   true,
		},
		{
			name:       "admin cannot create bookings",
			role:       model.RoleAdmin,
			capability: model.CapabilityCreateBooking,
			expected:   false,
		},
		{
			name:       "unknown role has no capabilities",
			role:       model.Role("SUPERUSER"),
			capability: model.CapabilityCreateBooking,
			expected:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.role.Can(tt.capability); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
