package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"farhatna/config"
	kafkaMocks "farhatna/infras/kafka/mocks"
	"farhatna/infras/otel/mocks"
	bookingMocks "farhatna/internal/domains/booking/mocks"
	"farhatna/internal/domains/booking/model"
	"farhatna/internal/domains/booking/model/dto"
	"farhatna/internal/domains/booking/service"
	supplierMocks "farhatna/internal/domains/supplier/mocks"
	userModel "farhatna/internal/domains/user/model"
	cacheMocks "farhatna/shared/cache/mocks"
	gDto "farhatna/shared/dto"
	"farhatna/shared/failure"
	gModel "farhatna/shared/model"
	"farhatna/shared/timezone"
)

func newBookingService(t *testing.T) (
	service.Booking,
	*bookingMocks.MockBooking,
	*supplierMocks.MockSupplier,
	*cacheMocks.MockRedisCache,
	*kafkaMocks.MockClient,
) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockSupplierRepo := supplierMocks.NewMockSupplier(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topic.BookingEvents = "booking-events"

	// Cache fills, invalidations and event publishes happen on background
	// goroutines; tolerate any number of them.
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockKafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockSupplierRepo, cfg, mockCache, mockKafka, mockOtel)

	return svc, mockRepo, mockSupplierRepo, mockCache, mockKafka
}

func pendingBooking(id, userID string) model.Booking {
	return model.Booking{
		ID:                  id,
		UserID:              userID,
		SupplierID:          "supplier-1",
		EventDate:           timezone.Now(),
		Status:              model.StatusPending,
		SupplierCompanyName: "Grand Venue",
		SupplierCategory:    "VENUE",
		UserName:            "Test Customer",
		UserEmail:           "customer@example.com",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.CreateBookingRequest
		role       userModel.Role
		setupMock  func(repo *bookingMocks.MockBooking, supplierRepo *supplierMocks.MockSupplier)
		wantErr    bool
		wantCode   int
		wantStatus string
	}{
		{
			name: "customer books an existing supplier",
			req: dto.CreateBookingRequest{
				SupplierID: "supplier-1",
				EventDate:  "2026-10-17",
			},
			role: userModel.RoleCustomer,
			setupMock: func(repo *bookingMocks.MockBooking, supplierRepo *supplierMocks.MockSupplier) {
				supplierRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, model.StatusPending, booking.Status)

						return nil
					})

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking("booking-1", "user-1"), nil)
			},
			wantStatus: "PENDING",
		},
		{
			name: "admin cannot book",
			req: dto.CreateBookingRequest{
				SupplierID: "supplier-1",
				EventDate:  "2026-10-17",
			},
			role:      userModel.RoleAdmin,
			setupMock: func(*bookingMocks.MockBooking, *supplierMocks.MockSupplier) {},
			wantErr:   true,
			wantCode:  403,
		},
		{
			name: "unknown supplier",
			req: dto.CreateBookingRequest{
				SupplierID: "missing-supplier",
				EventDate:  "2026-10-17",
			},
			role: userModel.RoleCustomer,
			setupMock: func(_ *bookingMocks.MockBooking, supplierRepo *supplierMocks.MockSupplier) {
				supplierRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "malformed event date",
			req: dto.CreateBookingRequest{
				SupplierID: "supplier-1",
				EventDate:  "17-10-2026",
			},
			role:      userModel.RoleCustomer,
			setupMock: func(*bookingMocks.MockBooking, *supplierMocks.MockSupplier) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "insert failure",
			req: dto.CreateBookingRequest{
				SupplierID: "supplier-1",
				EventDate:  "2026-10-17",
			},
			role: userModel.RoleCustomer,
			setupMock: func(repo *bookingMocks.MockBooking, supplierRepo *supplierMocks.MockSupplier) {
				supplierRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockSupplierRepo, _, _ := newBookingService(t)
			tt.setupMock(mockRepo, mockSupplierRepo)

			res, err := svc.Create(context.Background(), tt.req, "user-1", tt.role)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
		})
	}
}

func TestBookingService_CreateAdminMessage(t *testing.T) {
	svc, _, _, _, _ := newBookingService(t)

	_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
		SupplierID: "supplier-1",
		EventDate:  "2026-10-17",
	}, "admin-1", userModel.RoleAdmin)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "admins cannot book")
}

func TestBookingService_GetAllForUser(t *testing.T) {
	svc, mockRepo, _, mockCache, _ := newBookingService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
			assert.Equal(t, "bookings.created_at", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "bookings.user_id")
			assert.Equal(t, "user-1", args["user_id"])

			return []model.Booking{
				pendingBooking("booking-2", "user-1"),
				pendingBooking("booking-1", "user-1"),
			}, nil
		})

	res, err := svc.GetAllForUser(context.Background(), "user-1", gDto.QueryParams{Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}

func TestBookingService_GetAllCacheHit(t *testing.T) {
	svc, _, _, mockCache, _ := newBookingService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{}, userModel.RoleAdmin)

	assert.NoError(t, err)
}

func TestBookingService_GetAllRequiresAdmin(t *testing.T) {
	svc, _, _, _, _ := newBookingService(t)

	_, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{}, userModel.RoleCustomer)

	assert.Error(t, err)
	assert.Equal(t, 403, failure.GetCode(err))
	assert.Contains(t, err.Error(), "admin access required")
}

func TestBookingService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		role      userModel.Role
		status    string
		setupMock func(repo *bookingMocks.MockBooking)
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "admin confirms a pending booking",
			role:   userModel.RoleAdmin,
			status: "CONFIRMED",
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "CONFIRMED", fields["status"])

						return nil
					})

				confirmed := pendingBooking("booking-1", "user-1")
				confirmed.Status = model.StatusConfirmed

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)
			},
		},
		{
			name:   "admin re-confirms a cancelled booking",
			role:   userModel.RoleAdmin,
			status: "CONFIRMED",
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				// The current status is never read; the update applies
				// regardless of what the booking was before.
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				confirmed := pendingBooking("booking-1", "user-1")
				confirmed.Status = model.StatusConfirmed

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)
			},
		},
		{
			name:      "customer is rejected",
			role:      userModel.RoleCustomer,
			status:    "CONFIRMED",
			setupMock: func(*bookingMocks.MockBooking) {},
			wantErr:   true,
			wantCode:  403,
		},
		{
			name:   "unknown booking",
			role:   userModel.RoleAdmin,
			status: "CONFIRMED",
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _, _, _ := newBookingService(t)
			tt.setupMock(mockRepo)

			res, err := svc.UpdateStatus(context.Background(), "booking-1", dto.UpdateBookingStatusRequest{Status: tt.status}, "admin-1", tt.role)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.status, res.Status)
		})
	}
}
