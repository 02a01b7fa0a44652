package model

import "farhatna/shared/model"

const (
	TableName  = "suppliers"
	EntityName = "supplier"

	FieldID          = "id"
	FieldCompanyName = "company_name"
	FieldCategory    = "category"
	FieldLocation    = "location"
	FieldDescription = "description"
	FieldPriceFrom   = "price_from"
	FieldPriceTo     = "price_to"
	FieldThumbnail   = "thumbnail"
)

// Category organizes suppliers by the wedding service they offer.
type Category string

const (
	CategoryVenue        Category = "VENUE"
	CategoryPhotographer Category = "PHOTOGRAPHER"
	CategoryDress        Category = "DRESS"
	CategoryMakeup       Category = "MAKEUP"
	CategoryCatering     Category = "CATERING"
	CategoryTravel       Category = "TRAVEL"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryVenue, CategoryPhotographer, CategoryDress, CategoryMakeup, CategoryCatering, CategoryTravel:
		return true
	default:
		return false
	}
}

type Supplier struct {
	ID          string   `db:"id"`
	CompanyName string   `db:"company_name"`
	Category    Category `db:"category"`
	Location    string   `db:"location"`
	Description string   `db:"description"`
	PriceFrom   int      `db:"price_from"`
	PriceTo     int      `db:"price_to"`
	Thumbnail   string   `db:"thumbnail"`
	model.Metadata
}
