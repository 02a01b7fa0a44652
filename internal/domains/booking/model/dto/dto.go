package dto

import (
	"time"

	"farhatna/internal/domains/booking/model"
	"farhatna/shared"
	"farhatna/shared/constant"
	gDto "farhatna/shared/dto"
	gModel "farhatna/shared/model"
	"farhatna/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	SupplierID string `json:"supplier_id" validate:"required"`
	EventDate  string `json:"event_date"  validate:"required"`
}

func (c *CreateBookingRequest) ToModel(userID string) (model.Booking, error) {
	eventDate, err := time.Parse(constant.EventDateFormat, c.EventDate)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:         uuid.NewString(),
		UserID:     userID,
		SupplierID: c.SupplierID,
		EventDate:  eventDate,
		Status:     model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=PENDING CONFIRMED CANCELLED"`
}

type BookingSupplier struct {
	CompanyName string `json:"company_name"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Thumbnail   string `json:"thumbnail"`
}

type BookingUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookingResponse struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	SupplierID string          `json:"supplier_id"`
	EventDate  string          `json:"event_date"`
	Status     string          `json:"status"`
	Supplier   BookingSupplier `json:"supplier"`
	User       BookingUser     `json:"user"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.SupplierID = model.SupplierID
	r.EventDate = model.EventDate.Format(constant.EventDateFormat)
	r.Status = string(model.Status)
	r.Supplier = BookingSupplier{
		CompanyName: model.SupplierCompanyName,
		Category:    model.SupplierCategory,
		Location:    model.SupplierLocation,
		Thumbnail:   model.SupplierThumbnail,
	}
	r.User = BookingUser{
		Name:  model.UserName,
		Email: model.UserEmail,
	}
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
