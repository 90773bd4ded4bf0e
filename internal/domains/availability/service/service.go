package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"mesa/config"
	"mesa/infras/otel"
	"mesa/internal/domains/availability/dto"
	reservationModel "mesa/internal/domains/reservation/model"
	reservationRepo "mesa/internal/domains/reservation/repository"
	scheduleModel "mesa/internal/domains/schedule/model"
	scheduleRepo "mesa/internal/domains/schedule/repository"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/timeslot"
)

type Availability interface {
	GetAvailableTimes(ctx context.Context, date string) (dto.AvailableTimesResponse, error)
	GetUnavailableDates(ctx context.Context) (dto.UnavailableDatesResponse, error)
}

type serviceImpl struct {
	reservationRepo     reservationRepo.Reservation
	closedDayRepo       scheduleRepo.ClosedDay
	specialScheduleRepo scheduleRepo.SpecialSchedule
	cfg                 *config.Config
	otel                otel.Otel
}

func New(
	reservations reservationRepo.Reservation,
	closedDays scheduleRepo.ClosedDay,
	specialSchedules scheduleRepo.SpecialSchedule,
	cfg *config.Config,
	otel otel.Otel,
) Availability {
	return &serviceImpl{
		reservationRepo:     reservations,
		closedDayRepo:       closedDays,
		specialScheduleRepo: specialSchedules,
		cfg:                 cfg,
		otel:                otel,
	}
}

// resolvedSchedule is the outcome of the per-date schedule lookup: either the
// date is closed, or it carries the open/close bounds slot generation uses.
type resolvedSchedule struct {
	Closed    bool
	Reason    string
	OpenTime  string
	CloseTime string
}

// GetAvailableTimes computes the bookable slots for a date: resolve the
// operating hours, generate the candidate slots, then subtract the times
// already held by an active reservation. Results are never cached; callers
// always see the current repository state.
func (s *serviceImpl) GetAvailableTimes(ctx context.Context, date string) (res dto.AvailableTimesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailableTimes")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = dto.AvailableTimesResponse{
		Date:           date,
		AvailableTimes: []string{},
	}

	// No date is not an error, just nothing to offer.
	if date == "" {
		res.IsClosed = true

		return res, nil
	}

	schedule, err := s.resolveSchedule(ctx, date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to resolve schedule")

		return res, fmt.Errorf("failed to resolve schedule: %w", err)
	}

	if schedule.Closed {
		res.IsClosed = true
		res.Reason = schedule.Reason

		return res, nil
	}

	candidates, err := timeslot.Generate(schedule.OpenTime, schedule.CloseTime, s.cfg.Venue.SlotGranularityMinutes)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to generate time slots")

		return res, fmt.Errorf("failed to generate time slots: %w", err)
	}

	reserved, err := s.reservationRepo.GetReservedTimes(ctx, date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to get reserved times")

		return res, fmt.Errorf("failed to get reserved times: %w", err)
	}

	// Only active reservations occupy a slot; a canceled booking frees its
	// time again.
	taken := make(map[string]struct{}, len(reserved))
	for _, reservation := range reserved {
		if reservation.Status == reservationModel.StatusActive {
			taken[reservation.Time] = struct{}{}
		}
	}

	for _, slot := range candidates {
		if _, ok := taken[slot]; ok {
			continue
		}

		res.AvailableTimes = append(res.AvailableTimes, slot)
	}

	return res, nil
}

// resolveSchedule determines the operating hours for a date. A closed day
// always wins over a special schedule; without either the configured venue
// defaults apply.
func (s *serviceImpl) resolveSchedule(ctx context.Context, date string) (resolvedSchedule, error) {
	closedDay, err := s.closedDayRepo.Get(ctx, filterByDate(date, scheduleModel.ClosedDayTableName))
	if err != nil {
		return resolvedSchedule{}, fmt.Errorf("failed to look up closed day: %w", err)
	}

	if closedDay.ID != constant.Empty {
		return resolvedSchedule{Closed: true, Reason: closedDay.Reason}, nil
	}

	specialSchedule, err := s.specialScheduleRepo.Get(ctx, filterByDate(date, scheduleModel.SpecialScheduleTableName))
	if err != nil {
		return resolvedSchedule{}, fmt.Errorf("failed to look up special schedule: %w", err)
	}

	if specialSchedule.ID != constant.Empty {
		return resolvedSchedule{
			OpenTime:  specialSchedule.OpenTime,
			CloseTime: specialSchedule.CloseTime,
		}, nil
	}

	return resolvedSchedule{
		OpenTime:  s.cfg.Venue.DefaultOpenTime,
		CloseTime: s.cfg.Venue.DefaultCloseTime,
	}, nil
}

// GetUnavailableDates returns the union of closed days and special-schedule
// dates, sorted, for the booking calendar to mark.
func (s *serviceImpl) GetUnavailableDates(ctx context.Context) (res dto.UnavailableDatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetUnavailableDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	closedDays, err := s.closedDayRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}, scheduleModel.FieldID, scheduleModel.FieldDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to get closed days")

		return res, fmt.Errorf("failed to get closed days: %w", err)
	}

	specialSchedules, err := s.specialScheduleRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}, scheduleModel.FieldID, scheduleModel.FieldDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to get special schedules")

		return res, fmt.Errorf("failed to get special schedules: %w", err)
	}

	seen := make(map[string]struct{}, len(closedDays)+len(specialSchedules))
	dates := []string{}

	for _, closedDay := range closedDays {
		if _, ok := seen[closedDay.Date]; !ok {
			seen[closedDay.Date] = struct{}{}
			dates = append(dates, closedDay.Date)
		}
	}

	for _, specialSchedule := range specialSchedules {
		if _, ok := seen[specialSchedule.Date]; !ok {
			seen[specialSchedule.Date] = struct{}{}
			dates = append(dates, specialSchedule.Date)
		}
	}

	slices.Sort(dates)

	res.Dates = dates

	return res, nil
}

func filterByDate(date, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    scheduleModel.FieldDate,
				Value:    date,
				Operator: gDto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
