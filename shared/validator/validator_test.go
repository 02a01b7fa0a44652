package validator_test

import (
	"strings"
	"testing"

	"farhatna/shared/validator"
)

type createBookingPayload struct {
	SupplierID string `json:"supplier_id" validate:"required"`
	EventDate  string `json:"event_date"  validate:"required"`
}

type updateStatusPayload struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED CANCELLED"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid payload",
			body:        `{"supplier_id":"supplier-1","event_date":"2026-10-17"}`,
			expectError: false,
		},
		{
			name:        "missing required field",
			body:        `{"event_date":"2026-10-17"}`,
			expectError: true,
		},
		{
			name:        "malformed json",
			body:        `{"supplier_id":`,
			expectError: true,
		},
		{
			name:        "empty body",
			body:        ``,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := createBookingPayload{}
			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if tt.expectError && err == nil {
				t.Error("expected validation error")
			}

			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_OneOf(t *testing.T) {
	tests := []struct {
		name        string
		status      string
		expectError bool
	}{
		{name: "pending", status: "PENDING", expectError: false},
		{name: "confirmed", status: "CONFIRMED", expectError: false},
		{name: "cancelled", status: "CANCELLED", expectError: false},
		{name: "lowercase rejected", status: "confirmed", expectError: true},
		{name: "unknown status", status: "DONE", expectError: true},
		{name: "empty status", status: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := updateStatusPayload{Status: tt.status}
			err := validator.ValidateStruct(&payload)

			if tt.expectError && err == nil {
				t.Error("expected validation error")
			}

			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("test@example.com", "required,email"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := validator.ValidateVar("not-an-email", "required,email"); err == nil {
		t.Error("expected validation error")
	}
}
