package supplier

import (
	"net/http"

	"farhatna/infras/otel"
	"farhatna/internal/domains/supplier/model"
	"farhatna/internal/domains/supplier/service"
	"farhatna/shared/constant"
	gDto "farhatna/shared/dto"
	"farhatna/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Supplier
	otel    otel.Otel
}

func New(service service.Supplier, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/suppliers", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSuppliers)
		routerGroup.Get("/{id}", handler.GetSupplierByID)
	})
}

// GetSuppliers retrieves the supplier catalog.
// @Summary Get all suppliers
// @Description Retrieve the supplier catalog, optionally filtered by category, with pagination.
// @Tags Supplier
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param category query string false "Filter by category (VENUE, PHOTOGRAPHER, DRESS, MAKEUP, CATERING, TRAVEL)"
// @Success 200 {object} response.Data[dto.GetSuppliersResponse] "List of suppliers"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /suppliers [get]
func (handler *Handler) GetSuppliers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSuppliers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	// Exact match; an unknown category simply matches nothing.
	if category := r.URL.Query().Get(constant.RequestParamCategory); category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	suppliers, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get suppliers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Suppliers retrieved successfully")

	response.WithJSON(w, http.StatusOK, suppliers)
}

// GetSupplierByID retrieves a single supplier.
// @Summary Get a supplier by ID
// @Description Retrieve a supplier by its unique identifier.
// @Tags Supplier
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} response.Data[dto.SupplierResponse] "Supplier details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /suppliers/{id} [get]
func (handler *Handler) GetSupplierByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSupplierByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	supplier, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get supplier by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Supplier retrieved successfully " + id)

	response.WithJSON(w, http.StatusOK, supplier)
}
