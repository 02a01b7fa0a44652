package supplier_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"farhatna/infras/otel/mocks"
	"farhatna/internal/domains/supplier/model/dto"
	serviceMocks "farhatna/internal/domains/supplier/service/mocks"
	supplierHandler "farhatna/internal/handlers/supplier"
	gDto "farhatna/shared/dto"
	"farhatna/shared/failure"
	"farhatna/transport/http/response"
)

func newSupplierRouter(t *testing.T) (*serviceMocks.MockSupplier, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := serviceMocks.NewMockSupplier(ctrl)

	handler := supplierHandler.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return mockService, router
}

func TestSupplierHandler_GetSuppliers(t *testing.T) {
	t.Run("category filter reaches the service", func(t *testing.T) {
		mockService, router := newSupplierRouter(t)

		suppliers := dto.GetSuppliersResponse{
			Suppliers: []dto.SupplierResponse{{ID: "supplier-1", Category: "VENUE"}},
			TotalPage: 1,
			TotalData: 1,
		}

		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSuppliersResponse, error) {
				where, args := filter.GetWhereClause()
				assert.Contains(t, where, "suppliers.category")
				assert.Equal(t, "VENUE", args["category"])

				return suppliers, nil
			})

		request := httptest.NewRequest(http.MethodGet, "/suppliers/?category=VENUE", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var envelope response.Data[dto.GetSuppliersResponse]
		assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
		assert.Len(t, envelope.Data.Suppliers, 1)
		assert.Equal(t, "VENUE", envelope.Data.Suppliers[0].Category)
	})

	t.Run("no category filter", func(t *testing.T) {
		mockService, router := newSupplierRouter(t)

		suppliers := dto.GetSuppliersResponse{
			Suppliers: []dto.SupplierResponse{
				{ID: "supplier-1", Category: "VENUE"},
				{ID: "supplier-2", Category: "CATERING"},
			},
			TotalPage: 1,
			TotalData: 2,
		}

		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSuppliersResponse, error) {
				assert.Empty(t, filter.Filters)

				return suppliers, nil
			})

		request := httptest.NewRequest(http.MethodGet, "/suppliers/", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var envelope response.Data[dto.GetSuppliersResponse]
		assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
		assert.Len(t, envelope.Data.Suppliers, 2)
	})

	t.Run("unknown category matches nothing", func(t *testing.T) {
		mockService, router := newSupplierRouter(t)

		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSuppliersResponse, error) {
				_, args := filter.GetWhereClause()
				assert.Equal(t, "CASTLE", args["category"])

				return dto.GetSuppliersResponse{Suppliers: []dto.SupplierResponse{}}, nil
			})

		request := httptest.NewRequest(http.MethodGet, "/suppliers/?category=CASTLE", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var envelope response.Data[dto.GetSuppliersResponse]
		assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
		assert.Empty(t, envelope.Data.Suppliers)
	})
}

func TestSupplierHandler_GetSupplierByID(t *testing.T) {
	t.Run("existing supplier", func(t *testing.T) {
		mockService, router := newSupplierRouter(t)

		mockService.EXPECT().
			Get(gomock.Any(), "supplier-1").
			Return(dto.SupplierResponse{ID: "supplier-1", CompanyName: "Grand Venue"}, nil)

		request := httptest.NewRequest(http.MethodGet, "/suppliers/supplier-1", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var envelope response.Data[dto.SupplierResponse]
		assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
		assert.Equal(t, "supplier-1", envelope.Data.ID)
	})

	t.Run("missing supplier", func(t *testing.T) {
		mockService, router := newSupplierRouter(t)

		mockService.EXPECT().
			Get(gomock.Any(), "missing").
			Return(dto.SupplierResponse{}, failure.NotFound("supplier not found"))

		request := httptest.NewRequest(http.MethodGet, "/suppliers/missing", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "supplier not found")
	})
}
