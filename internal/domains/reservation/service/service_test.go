package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"mesa/config"
	"mesa/infras/otel/mocks"
	availabilityDto "mesa/internal/domains/availability/dto"
	availabilityMocks "mesa/internal/domains/availability/mocks"
	reservationMocks "mesa/internal/domains/reservation/mocks"
	"mesa/internal/domains/reservation/model"
	"mesa/internal/domains/reservation/model/dto"
	"mesa/internal/domains/reservation/service"
	cacheMocks "mesa/shared/cache/mocks"
	gDto "mesa/shared/dto"
	"mesa/shared/failure"
	gModel "mesa/shared/model"
	"mesa/shared/timezone"
)

type reservationFixture struct {
	svc          service.Reservation
	repo         *reservationMocks.MockReservation
	availability *availabilityMocks.MockAvailability
	cache        *cacheMocks.MockRedisCache
}

func newReservationFixture(t *testing.T) reservationFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockAvailability := availabilityMocks.NewMockAvailability(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Venue.SlotGranularityMinutes = 30

	return reservationFixture{
		svc:          service.New(mockRepo, mockAvailability, cfg, mockCache, mocks.NewOtel()),
		repo:         mockRepo,
		availability: mockAvailability,
		cache:        mockCache,
	}
}

func defaultQueryParams() gDto.QueryParams {
	return gDto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"}
}

func emptyFilter() gDto.FilterGroup {
	return gDto.FilterGroup{}
}

func validCreateRequest() dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		Date:             "2025-06-01",
		Time:             "12:00",
		CustomerName:     "Ada",
		CustomerLastName: "Lovelace",
		CustomerBirthday: "1990-12-10",
		CustomerContact:  "ada@example.com",
		PeopleNr:         2,
	}
}

func TestReservationService_Create(t *testing.T) {
	openDay := availabilityDto.AvailableTimesResponse{
		Date:           "2025-06-01",
		AvailableTimes: []string{"11:30", "12:00", "12:30"},
	}

	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func(f reservationFixture)
		wantErr   error
	}{
		{
			name: "successful booking",
			req:  validCreateRequest(),
			setupMock: func(f reservationFixture) {
				f.availability.EXPECT().
					GetAvailableTimes(gomock.Any(), "2025-06-01").
					Return(openDay, nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "time off the slot grid",
			req: func() dto.CreateReservationRequest {
				req := validCreateRequest()
				req.Time = "12:10"

				return req
			}(),
			setupMock: func(reservationFixture) {},
			wantErr:   failure.BadRequestFromString("time is not on a bookable slot boundary"),
		},
		{
			name: "venue closed that day",
			req:  validCreateRequest(),
			setupMock: func(f reservationFixture) {
				f.availability.EXPECT().
					GetAvailableTimes(gomock.Any(), "2025-06-01").
					Return(availabilityDto.AvailableTimesResponse{Date: "2025-06-01", IsClosed: true}, nil)
			},
			wantErr: failure.BadRequestFromString("the venue is closed on this date"),
		},
		{
			name: "slot already held",
			req: func() dto.CreateReservationRequest {
				req := validCreateRequest()
				req.Time = "13:00"

				return req
			}(),
			setupMock: func(f reservationFixture) {
				f.availability.EXPECT().
					GetAvailableTimes(gomock.Any(), "2025-06-01").
					Return(openDay, nil)
			},
			wantErr: failure.SlotTakenError,
		},
		{
			name: "concurrent booking loses the unique index race",
			req:  validCreateRequest(),
			setupMock: func(f reservationFixture) {
				f.availability.EXPECT().
					GetAvailableTimes(gomock.Any(), "2025-06-01").
					Return(openDay, nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505"})
			},
			wantErr: failure.SlotTakenError,
		},
		{
			name: "availability check fails",
			req:  validCreateRequest(),
			setupMock: func(f reservationFixture) {
				f.availability.EXPECT().
					GetAvailableTimes(gomock.Any(), "2025-06-01").
					Return(availabilityDto.AvailableTimesResponse{}, errors.New("database error"))
			},
			wantErr: errors.New("failed to check availability: database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReservationFixture(t)
			tt.setupMock(f)

			err := f.svc.Create(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newReservationFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{ID: "res-1", Date: "2025-06-01", Time: "12:00", Status: model.StatusActive}, nil)
		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := f.svc.Get(context.Background(), "res-1")

		assert.NoError(t, err)
		assert.Equal(t, "res-1", res.ID)
		assert.Equal(t, "12:00", res.Time)
	})

	t.Run("not found", func(t *testing.T) {
		f := newReservationFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{}, nil)

		_, err := f.svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, failure.NotFound("reservation not found").Error(), err.Error())
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		f := newReservationFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := f.svc.Get(context.Background(), "res-1")

		assert.NoError(t, err)
	})
}

func TestReservationService_GetAll(t *testing.T) {
	f := newReservationFixture(t)

	reservations := []model.Reservation{
		{ID: "res-1", Date: "2025-06-01", Time: "12:00", Metadata: gModel.Metadata{CreatedAt: timezone.Now()}},
		{ID: "res-2", Date: "2025-06-01", Time: "13:00", Metadata: gModel.Metadata{CreatedAt: timezone.Now()}},
	}

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)
	f.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(reservations, nil)
	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := f.svc.GetAll(context.Background(), defaultQueryParams(), emptyFilter())

	assert.NoError(t, err)
	assert.Len(t, res.Reservations, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}

func TestReservationService_Update(t *testing.T) {
	t.Run("empty request", func(t *testing.T) {
		f := newReservationFixture(t)

		err := f.svc.Update(context.Background(), dto.UpdateReservationRequest{}, "res-1")

		assert.Error(t, err)
	})

	t.Run("moving to a taken slot conflicts", func(t *testing.T) {
		f := newReservationFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: "23505"})

		err := f.svc.Update(context.Background(), dto.UpdateReservationRequest{Time: "13:00"}, "res-1")

		assert.ErrorIs(t, err, failure.SlotTakenError)
	})

	t.Run("date change marks the booking modified", func(t *testing.T) {
		f := newReservationFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusModified, fields[model.FieldStatus])

				return nil
			})
		f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := f.svc.Update(context.Background(), dto.UpdateReservationRequest{Date: "2025-06-02"}, "res-1")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newReservationFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := f.svc.Update(context.Background(), dto.UpdateReservationRequest{CustomerName: "Ada"}, "missing")

		assert.Error(t, err)
	})
}

func TestReservationService_Cancel(t *testing.T) {
	t.Run("successful cancel", func(t *testing.T) {
		f := newReservationFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{ID: "res-1", Status: model.StatusActive}, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusCanceled, fields[model.FieldStatus])
				assert.Equal(t, "double booked", fields[model.FieldCancelReason])

				return nil
			})
		f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := f.svc.Cancel(context.Background(), dto.CancelReservationRequest{Reason: "double booked"}, "res-1")

		assert.NoError(t, err)
	})

	t.Run("already canceled", func(t *testing.T) {
		f := newReservationFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{ID: "res-1", Status: model.StatusCanceled}, nil)

		err := f.svc.Cancel(context.Background(), dto.CancelReservationRequest{}, "res-1")

		assert.Error(t, err)
		assert.Equal(t, failure.Conflict("reservation is already canceled").Error(), err.Error())
	})

	t.Run("not found", func(t *testing.T) {
		f := newReservationFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{}, nil)

		err := f.svc.Cancel(context.Background(), dto.CancelReservationRequest{}, "missing")

		assert.Error(t, err)
	})
}

func TestReservationService_MarkAttendance(t *testing.T) {
	tests := []struct {
		name             string
		attendanceStatus string
		wantArrivalTime  bool
	}{
		{name: "attended stamps arrival time", attendanceStatus: model.AttendanceAttended, wantArrivalTime: true},
		{name: "late stamps arrival time", attendanceStatus: model.AttendanceLate, wantArrivalTime: true},
		{name: "no show clears arrival time", attendanceStatus: model.AttendanceNoShow, wantArrivalTime: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReservationFixture(t)

			f.repo.EXPECT().
				Exist(gomock.Any(), gomock.Any()).
				Return(true, nil)
			f.repo.EXPECT().
				Update(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
					assert.Equal(t, tt.attendanceStatus, fields[model.FieldAttendanceStatus])

					if tt.wantArrivalTime {
						assert.NotEmpty(t, fields[model.FieldAttendanceTime])
					} else {
						assert.Empty(t, fields[model.FieldAttendanceTime])
					}

					return nil
				})
			f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			err := f.svc.MarkAttendance(context.Background(), dto.MarkAttendanceRequest{AttendanceStatus: tt.attendanceStatus}, "res-1")

			assert.NoError(t, err)
		})
	}
}
