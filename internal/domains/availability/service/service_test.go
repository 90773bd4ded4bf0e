package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"mesa/config"
	"mesa/infras/otel/mocks"
	"mesa/internal/domains/availability/service"
	reservationMocks "mesa/internal/domains/reservation/mocks"
	reservationModel "mesa/internal/domains/reservation/model"
	scheduleMocks "mesa/internal/domains/schedule/mocks"
	scheduleModel "mesa/internal/domains/schedule/model"
)

func newAvailabilityFixture(t *testing.T) (service.Availability, *reservationMocks.MockReservation, *scheduleMocks.MockClosedDay, *scheduleMocks.MockSpecialSchedule) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockReservations := reservationMocks.NewMockReservation(ctrl)
	mockClosedDays := scheduleMocks.NewMockClosedDay(ctrl)
	mockSpecialSchedules := scheduleMocks.NewMockSpecialSchedule(ctrl)

	cfg := &config.Config{}
	cfg.Venue.DefaultOpenTime = "09:00"
	cfg.Venue.DefaultCloseTime = "23:00"
	cfg.Venue.SlotGranularityMinutes = 30

	svc := service.New(mockReservations, mockClosedDays, mockSpecialSchedules, cfg, mocks.NewOtel())

	return svc, mockReservations, mockClosedDays, mockSpecialSchedules
}

func TestAvailabilityService_GetAvailableTimes_EmptyDate(t *testing.T) {
	svc, _, _, _ := newAvailabilityFixture(t)

	res, err := svc.GetAvailableTimes(context.Background(), "")

	assert.NoError(t, err)
	assert.True(t, res.IsClosed)
	assert.Empty(t, res.AvailableTimes)
}

func TestAvailabilityService_GetAvailableTimes_ClosedDayWins(t *testing.T) {
	svc, _, mockClosedDays, _ := newAvailabilityFixture(t)

	mockClosedDays.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(scheduleModel.ClosedDay{ID: "cd-1", Date: "2025-12-25", Reason: "holiday"}, nil)

	// The special schedule repo must not be consulted once the day is closed.
	res, err := svc.GetAvailableTimes(context.Background(), "2025-12-25")

	assert.NoError(t, err)
	assert.True(t, res.IsClosed)
	assert.Equal(t, "holiday", res.Reason)
	assert.Empty(t, res.AvailableTimes)
}

func TestAvailabilityService_GetAvailableTimes_SpecialSchedule(t *testing.T) {
	svc, mockReservations, mockClosedDays, mockSpecialSchedules := newAvailabilityFixture(t)

	mockClosedDays.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(scheduleModel.ClosedDay{}, nil)
	mockSpecialSchedules.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(scheduleModel.SpecialSchedule{ID: "ss-1", Date: "2025-12-31", OpenTime: "10:00", CloseTime: "14:00"}, nil)
	mockReservations.EXPECT().
		GetReservedTimes(gomock.Any(), "2025-12-31").
		Return([]reservationModel.ReservedTime{}, nil)

	res, err := svc.GetAvailableTimes(context.Background(), "2025-12-31")

	assert.NoError(t, err)
	assert.False(t, res.IsClosed)
	assert.Equal(t, []string{"10:00", "10:30", "11:00", "11:30", "12:00", "12:30", "13:00", "13:30"}, res.AvailableTimes)
}

func TestAvailabilityService_GetAvailableTimes_DefaultHours(t *testing.T) {
	svc, mockReservations, mockClosedDays, mockSpecialSchedules := newAvailabilityFixture(t)

	mockClosedDays.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(scheduleModel.ClosedDay{}, nil)
	mockSpecialSchedules.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(scheduleModel.SpecialSchedule{}, nil)
	mockReservations.EXPECT().
		GetReservedTimes(gomock.Any(), "2025-06-01").
		Return([]reservationModel.ReservedTime{}, nil)

	res, err := svc.GetAvailableTimes(context.Background(), "2025-06-01")

	assert.NoError(t, err)
	assert.Len(t, res.AvailableTimes, 28)
	assert.Equal(t, "09:00", res.AvailableTimes[0])
	assert.Equal(t, "22:30", res.AvailableTimes[len(res.AvailableTimes)-1])
}

func TestAvailabilityService_GetAvailableTimes_ActiveReservationsOccupySlots(t *testing.T) {
	svc, mockReservations, mockClosedDays, mockSpecialSchedules := newAvailabilityFixture(t)

	mockClosedDays.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(scheduleModel.ClosedDay{}, nil)
	mockSpecialSchedules.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(scheduleModel.SpecialSchedule{ID: "ss-1", OpenTime: "11:00", CloseTime: "13:00"}, nil)
	mockReservations.EXPECT().
		GetReservedTimes(gomock.Any(), "2025-06-01").
		Return([]reservationModel.ReservedTime{
			{Time: "12:00", Status: reservationModel.StatusActive},
			{Time: "12:30", Status: reservationModel.StatusCanceled},
		}, nil)

	res, err := svc.GetAvailableTimes(context.Background(), "2025-06-01")

	assert.NoError(t, err)
	assert.NotContains(t, res.AvailableTimes, "12:00")
	assert.Contains(t, res.AvailableTimes, "12:30")
	assert.Equal(t, []string{"11:00", "11:30", "12:30"}, res.AvailableTimes)
}

func TestAvailabilityService_GetAvailableTimes_Errors(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(r *reservationMocks.MockReservation, cd *scheduleMocks.MockClosedDay, ss *scheduleMocks.MockSpecialSchedule)
	}{
		{
			name: "closed day lookup fails",
			setupMock: func(_ *reservationMocks.MockReservation, cd *scheduleMocks.MockClosedDay, _ *scheduleMocks.MockSpecialSchedule) {
				cd.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(scheduleModel.ClosedDay{}, errors.New("database error"))
			},
		},
		{
			name: "special schedule lookup fails",
			setupMock: func(_ *reservationMocks.MockReservation, cd *scheduleMocks.MockClosedDay, ss *scheduleMocks.MockSpecialSchedule) {
				cd.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(scheduleModel.ClosedDay{}, nil)
				ss.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(scheduleModel.SpecialSchedule{}, errors.New("database error"))
			},
		},
		{
			name: "reserved times lookup fails",
			setupMock: func(r *reservationMocks.MockReservation, cd *scheduleMocks.MockClosedDay, ss *scheduleMocks.MockSpecialSchedule) {
				cd.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(scheduleModel.ClosedDay{}, nil)
				ss.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(scheduleModel.SpecialSchedule{}, nil)
				r.EXPECT().
					GetReservedTimes(gomock.Any(), "2025-06-01").
					Return(nil, errors.New("database error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockReservations, mockClosedDays, mockSpecialSchedules := newAvailabilityFixture(t)
			tt.setupMock(mockReservations, mockClosedDays, mockSpecialSchedules)

			_, err := svc.GetAvailableTimes(context.Background(), "2025-06-01")

			assert.Error(t, err)
		})
	}
}

func TestAvailabilityService_GetUnavailableDates(t *testing.T) {
	svc, _, mockClosedDays, mockSpecialSchedules := newAvailabilityFixture(t)

	mockClosedDays.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]scheduleModel.ClosedDay{
			{ID: "cd-1", Date: "2025-12-25"},
			{ID: "cd-2", Date: "2025-01-01"},
		}, nil)
	mockSpecialSchedules.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]scheduleModel.SpecialSchedule{
			{ID: "ss-1", Date: "2025-12-31"},
			{ID: "ss-2", Date: "2025-12-25"},
		}, nil)

	res, err := svc.GetUnavailableDates(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"2025-01-01", "2025-12-25", "2025-12-31"}, res.Dates)
}

func TestAvailabilityService_GetUnavailableDates_Empty(t *testing.T) {
	svc, _, mockClosedDays, mockSpecialSchedules := newAvailabilityFixture(t)

	mockClosedDays.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]scheduleModel.ClosedDay{}, nil)
	mockSpecialSchedules.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]scheduleModel.SpecialSchedule{}, nil)

	res, err := svc.GetUnavailableDates(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, res.Dates)
	assert.NotNil(t, res.Dates)
}

func TestAvailabilityService_GetUnavailableDates_Error(t *testing.T) {
	svc, _, mockClosedDays, _ := newAvailabilityFixture(t)

	mockClosedDays.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("database error"))

	_, err := svc.GetUnavailableDates(context.Background())

	assert.Error(t, err)
}
