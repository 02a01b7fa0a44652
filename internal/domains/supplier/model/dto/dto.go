package dto

import (
	"farhatna/internal/domains/supplier/model"
	"farhatna/shared"
	gDto "farhatna/shared/dto"
)

type SupplierResponse struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Description string `json:"description"`
	PriceFrom   int    `json:"price_from"`
	PriceTo     int    `json:"price_to"`
	Thumbnail   string `json:"thumbnail"`
	gDto.Metadata
}

func (r *SupplierResponse) FromModel(model model.Supplier) {
	r.ID = model.ID
	r.CompanyName = model.CompanyName
	r.Category = string(model.Category)
	r.Location = model.Location
	r.Description = model.Description
	r.PriceFrom = model.PriceFrom
	r.PriceTo = model.PriceTo
	r.Thumbnail = model.Thumbnail
	r.Metadata.FromModel(model.Metadata)
}

type GetSuppliersResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetSuppliersResponse) FromModels(models []model.Supplier, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Suppliers = make([]SupplierResponse, len(models))
	for i, mod := range models {
		r.Suppliers[i].FromModel(mod)
	}
}
