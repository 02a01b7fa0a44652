package model

import (
	"time"

	"farhatna/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldUserID     = "user_id"
	FieldSupplierID = "supplier_id"
	FieldEventDate  = "event_date"
	FieldStatus     = "status"
)

// Status of a booking. New bookings are always StatusPending; StatusConfirmed
// and StatusCancelled are set by admin action.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

type Booking struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	SupplierID string    `db:"supplier_id"`
	EventDate  time.Time `db:"event_date"`
	Status     Status    `db:"status"`

	// Joined columns, populated on reads only.
	SupplierCompanyName string `db:"supplier_company_name" column:"company_name" table:"suppliers"`
	SupplierCategory    string `db:"supplier_category"     column:"category"     table:"suppliers"`
	SupplierLocation    string `db:"supplier_location"     column:"location"     table:"suppliers"`
	SupplierThumbnail   string `db:"supplier_thumbnail"    column:"thumbnail"    table:"suppliers"`
	UserName            string `db:"user_name"             column:"name"         table:"users"`
	UserEmail           string `db:"user_email"            column:"email"        table:"users"`

	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN suppliers ON suppliers.id = bookings.supplier_id LEFT JOIN users ON users.id = bookings.user_id"
}
