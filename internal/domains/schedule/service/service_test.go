package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"mesa/config"
	"mesa/infras/otel/mocks"
	scheduleMocks "mesa/internal/domains/schedule/mocks"
	"mesa/internal/domains/schedule/model"
	"mesa/internal/domains/schedule/model/dto"
	"mesa/internal/domains/schedule/service"
	cacheMocks "mesa/shared/cache/mocks"
	gDto "mesa/shared/dto"
)

type scheduleFixture struct {
	svc              service.Schedule
	closedDays       *scheduleMocks.MockClosedDay
	specialSchedules *scheduleMocks.MockSpecialSchedule
	cache            *cacheMocks.MockRedisCache
}

func newScheduleFixture(t *testing.T) scheduleFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockClosedDays := scheduleMocks.NewMockClosedDay(ctrl)
	mockSpecialSchedules := scheduleMocks.NewMockSpecialSchedule(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Venue.SlotGranularityMinutes = 30

	return scheduleFixture{
		svc:              service.New(mockClosedDays, mockSpecialSchedules, cfg, mockCache, mocks.NewOtel()),
		closedDays:       mockClosedDays,
		specialSchedules: mockSpecialSchedules,
		cache:            mockCache,
	}
}

func TestScheduleService_CreateClosedDay(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateClosedDayRequest
		setupMock func(f scheduleFixture)
		wantErr   bool
	}{
		{
			name: "successful creation",
			req:  dto.CreateClosedDayRequest{Date: "2025-12-25", Reason: "holiday"},
			setupMock: func(f scheduleFixture) {
				f.closedDays.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				f.closedDays.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "date already closed",
			req:  dto.CreateClosedDayRequest{Date: "2025-12-25"},
			setupMock: func(f scheduleFixture) {
				f.closedDays.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req:  dto.CreateClosedDayRequest{Date: "2025-12-25"},
			setupMock: func(f scheduleFixture) {
				f.closedDays.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				f.closedDays.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newScheduleFixture(t)
			tt.setupMock(f)

			err := f.svc.CreateClosedDay(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScheduleService_CreateSpecialSchedule(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateSpecialScheduleRequest
		setupMock func(f scheduleFixture)
		wantErr   bool
	}{
		{
			name: "successful creation",
			req:  dto.CreateSpecialScheduleRequest{Date: "2025-12-31", OpenTime: "10:00", CloseTime: "14:00"},
			setupMock: func(f scheduleFixture) {
				f.specialSchedules.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				f.specialSchedules.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name:      "inverted window",
			req:       dto.CreateSpecialScheduleRequest{Date: "2025-12-31", OpenTime: "14:00", CloseTime: "10:00"},
			setupMock: func(scheduleFixture) {},
			wantErr:   true,
		},
		{
			name:      "zero width window",
			req:       dto.CreateSpecialScheduleRequest{Date: "2025-12-31", OpenTime: "10:00", CloseTime: "10:00"},
			setupMock: func(scheduleFixture) {},
			wantErr:   true,
		},
		{
			name:      "open time off the slot grid",
			req:       dto.CreateSpecialScheduleRequest{Date: "2025-12-31", OpenTime: "10:15", CloseTime: "12:15"},
			setupMock: func(scheduleFixture) {},
			wantErr:   true,
		},
		{
			name:      "close time off the slot grid",
			req:       dto.CreateSpecialScheduleRequest{Date: "2025-12-31", OpenTime: "10:00", CloseTime: "14:10"},
			setupMock: func(scheduleFixture) {},
			wantErr:   true,
		},
		{
			name:      "malformed open time",
			req:       dto.CreateSpecialScheduleRequest{Date: "2025-12-31", OpenTime: "25:00", CloseTime: "26:00"},
			setupMock: func(scheduleFixture) {},
			wantErr:   true,
		},
		{
			name: "date already scheduled",
			req:  dto.CreateSpecialScheduleRequest{Date: "2025-12-31", OpenTime: "10:00", CloseTime: "14:00"},
			setupMock: func(f scheduleFixture) {
				f.specialSchedules.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newScheduleFixture(t)
			tt.setupMock(f)

			err := f.svc.CreateSpecialSchedule(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScheduleService_GetClosedDays(t *testing.T) {
	f := newScheduleFixture(t)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))
	f.closedDays.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)
	f.closedDays.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.ClosedDay{{ID: "cd-1", Date: "2025-12-25", Reason: "holiday"}}, nil)
	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := f.svc.GetClosedDays(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.ClosedDays, 1)
	assert.Equal(t, "2025-12-25", res.ClosedDays[0].Date)
	assert.Equal(t, 1, res.TotalData)
}

func TestScheduleService_GetSpecialSchedules(t *testing.T) {
	f := newScheduleFixture(t)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))
	f.specialSchedules.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)
	f.specialSchedules.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.SpecialSchedule{{ID: "ss-1", Date: "2025-12-31", OpenTime: "10:00", CloseTime: "14:00"}}, nil)
	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := f.svc.GetSpecialSchedules(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.SpecialSchedules, 1)
	assert.Equal(t, "10:00", res.SpecialSchedules[0].OpenTime)
}

func TestScheduleService_DeleteClosedDay(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		f := newScheduleFixture(t)

		f.closedDays.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.closedDays.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		assert.NoError(t, f.svc.DeleteClosedDay(context.Background(), "cd-1"))
	})

	t.Run("not found", func(t *testing.T) {
		f := newScheduleFixture(t)

		f.closedDays.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		assert.Error(t, f.svc.DeleteClosedDay(context.Background(), "missing"))
	})
}

func TestScheduleService_DeleteSpecialSchedule(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		f := newScheduleFixture(t)

		f.specialSchedules.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.specialSchedules.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		assert.NoError(t, f.svc.DeleteSpecialSchedule(context.Background(), "ss-1"))
	})

	t.Run("not found", func(t *testing.T) {
		f := newScheduleFixture(t)

		f.specialSchedules.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		assert.Error(t, f.svc.DeleteSpecialSchedule(context.Background(), "missing"))
	})
}
