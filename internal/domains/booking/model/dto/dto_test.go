package dto_test

import (
	"testing"
	"time"

	"farhatna/internal/domains/booking/model"
	"farhatna/internal/domains/booking/model/dto"
	gModel "farhatna/shared/model"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		SupplierID: "supplier-1",
		EventDate:  "2026-10-17",
	}

	booking, err := req.ToModel("user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if booking.ID == "" {
		t.Error("expected a generated booking ID")
	}

	if booking.Status != model.StatusPending {
		t.Errorf("expected new bookings to be PENDING, got %s", booking.Status)
	}

	if booking.UserID != "user-1" {
		t.Errorf("expected user ID to be user-1, got %s", booking.UserID)
	}

	if booking.SupplierID != "supplier-1" {
		t.Errorf("expected supplier ID to be supplier-1, got %s", booking.SupplierID)
	}

	expectedDate := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	if !booking.EventDate.Equal(expectedDate) {
		t.Errorf("expected event date %v, got %v", expectedDate, booking.EventDate)
	}

	if booking.CreatedBy != "user-1" || booking.ModifiedBy != "user-1" {
		t.Error("expected metadata to be attributed to the booking user")
	}
}

func TestCreateBookingRequest_ToModel_InvalidDate(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{name: "wrong order", date: "17-10-2026"},
		{name: "not a date", date: "someday"},
		{name: "empty", date: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{
				SupplierID: "supplier-1",
				EventDate:  tt.date,
			}

			if _, err := req.ToModel("user-1"); err == nil {
				t.Error("expected error for invalid event date")
			}
		})
	}
}

func TestBookingResponse_FromModel(t *testing.T) {
	eventDate := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

	booking := model.Booking{
		ID:                  "booking-1",
		UserID:              "user-1",
		SupplierID:          "supplier-1",
		EventDate:           eventDate,
		Status:              model.StatusConfirmed,
		SupplierCompanyName: "Grand Venue",
		SupplierCategory:    "VENUE",
		SupplierLocation:    "Cairo",
		SupplierThumbnail:   "https://example.com/venue.jpg",
		UserName:            "Test Customer",
		UserEmail:           "customer@example.com",
		Metadata: gModel.Metadata{
			CreatedAt:  time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
			ModifiedAt: time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC),
			CreatedBy:  "user-1",
			ModifiedBy: "admin-1",
		},
	}

	res := dto.BookingResponse{}
	res.FromModel(booking)

	if res.Status != "CONFIRMED" {
		t.Errorf("expected status CONFIRMED, got %s", res.Status)
	}

	if res.EventDate != "2026-10-17" {
		t.Errorf("expected event date 2026-10-17, got %s", res.EventDate)
	}

	if res.Supplier.CompanyName != "Grand Venue" || res.Supplier.Category != "VENUE" {
		t.Error("expected supplier details to be populated from joined columns")
	}

	if res.User.Name != "Test Customer" || res.User.Email != "customer@example.com" {
		t.Error("expected user details to be populated from joined columns")
	}
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	models := []model.Booking{
		{ID: "booking-2", Status: model.StatusPending},
		{ID: "booking-1", Status: model.StatusCancelled},
	}

	res := dto.GetBookingsResponse{}
	res.FromModels(models, 12, 10)

	if len(res.Bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(res.Bookings))
	}

	if res.TotalData != 12 {
		t.Errorf("expected total data 12, got %d", res.TotalData)
	}

	if res.TotalPage != 2 {
		t.Errorf("expected total page 2, got %d", res.TotalPage)
	}

	if res.Bookings[0].ID != "booking-2" {
		t.Error("expected ordering of models to be preserved")
	}
}
