package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"farhatna/config"
	"farhatna/infras/otel/mocks"
	supplierMocks "farhatna/internal/domains/supplier/mocks"
	"farhatna/internal/domains/supplier/model"
	"farhatna/internal/domains/supplier/service"
	cacheMocks "farhatna/shared/cache/mocks"
	gDto "farhatna/shared/dto"
	"farhatna/shared/failure"
	gModel "farhatna/shared/model"
	"farhatna/shared/timezone"
)

func newSupplierService(t *testing.T) (service.Supplier, *supplierMocks.MockSupplier, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := supplierMocks.NewMockSupplier(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func venue(id string) model.Supplier {
	return model.Supplier{
		ID:          id,
		CompanyName: "Grand Venue",
		Category:    model.CategoryVenue,
		Location:    "Cairo",
		Description: "A large wedding hall",
		PriceFrom:   50000,
		PriceTo:     120000,
		Thumbnail:   "https://example.com/venue.jpg",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func TestSupplierService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := newSupplierService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	categoryFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCategory,
				Operator: gDto.FilterOperatorEq,
				Value:    "VENUE",
				Table:    model.TableName,
			},
		},
	}

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Supplier, error) {
			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "suppliers.category")
			assert.Equal(t, "VENUE", args["category"])

			return []model.Supplier{venue("supplier-1")}, nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, categoryFilter)

	assert.NoError(t, err)
	assert.Len(t, res.Suppliers, 1)
	assert.Equal(t, "VENUE", res.Suppliers[0].Category)
	assert.Equal(t, 1, res.TotalData)
}

func TestSupplierService_GetAllDefaultOrdering(t *testing.T) {
	svc, mockRepo, mockCache := newSupplierService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(0, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Supplier, error) {
			assert.Equal(t, "suppliers.created_at", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.Supplier{}, nil
		})

	_, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
}

func TestSupplierService_GetAllCacheHit(t *testing.T) {
	svc, _, mockCache := newSupplierService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
}

func TestSupplierService_Get(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(repo *supplierMocks.MockSupplier, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "existing supplier",
			id:   "supplier-1",
			setupMock: func(repo *supplierMocks.MockSupplier, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(venue("supplier-1"), nil)
			},
		},
		{
			name: "missing supplier",
			id:   "missing",
			setupMock: func(repo *supplierMocks.MockSupplier, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Supplier{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newSupplierService(t)
			tt.setupMock(mockRepo, mockCache)

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.id, res.ID)
		})
	}
}
