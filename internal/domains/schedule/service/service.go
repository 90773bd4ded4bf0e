package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"mesa/config"
	"mesa/infras/otel"
	"mesa/infras/postgres"
	"mesa/internal/domains/schedule/model"
	"mesa/internal/domains/schedule/model/dto"
	"mesa/internal/domains/schedule/repository"
	"mesa/shared"
	"mesa/shared/cache"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/failure"
	"mesa/shared/timeslot"
)

const (
	cacheGetAllClosedDay       = "closedday:gets"
	cacheGetAllSpecialSchedule = "specialschedule:gets"
)

type Schedule interface {
	CreateClosedDay(ctx context.Context, req dto.CreateClosedDayRequest) error
	GetClosedDays(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetClosedDaysResponse, error)
	DeleteClosedDay(ctx context.Context, id string) error
	CreateSpecialSchedule(ctx context.Context, req dto.CreateSpecialScheduleRequest) error
	GetSpecialSchedules(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSpecialSchedulesResponse, error)
	DeleteSpecialSchedule(ctx context.Context, id string) error
}

type serviceImpl struct {
	closedDayRepo       repository.ClosedDay
	specialScheduleRepo repository.SpecialSchedule
	cfg                 *config.Config
	cache               cache.RedisCache
	otel                otel.Otel
}

func New(
	closedDays repository.ClosedDay,
	specialSchedules repository.SpecialSchedule,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Schedule {
	return &serviceImpl{
		closedDayRepo:       closedDays,
		specialScheduleRepo: specialSchedules,
		cfg:                 cfg,
		cache:               cache,
		otel:                otel,
	}
}

func (s *serviceImpl) CreateClosedDay(ctx context.Context, req dto.CreateClosedDayRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateClosedDay")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.closedDayRepo.Exist(ctx, filterByDate(req.Date, model.ClosedDayTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if closed day exists")

		return fmt.Errorf("failed to check if closed day exists: %w", err)
	}

	if exist {
		return failure.Conflict("this date is already marked as closed") // nolint:wrapcheck
	}

	if err := s.closedDayRepo.Insert(ctx, req.ToModel(user)); err != nil {
		if postgres.IsUniqueViolation(err) {
			return failure.Conflict("this date is already marked as closed") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create closed day")

		return fmt.Errorf("failed to create closed day: %w", err)
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllClosedDay)

	return nil
}

func (s *serviceImpl) GetClosedDays(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetClosedDaysResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetClosedDays")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllClosedDay, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for closed days")

		return res, nil
	}

	total, err := s.closedDayRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count closed days")

		return res, fmt.Errorf("failed to count closed days: %w", err)
	}

	closedDays, err := s.closedDayRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get closed days")

		return res, fmt.Errorf("failed to get closed days: %w", err)
	}

	res.FromModels(closedDays, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save closed days to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) DeleteClosedDay(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteClosedDay")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.ClosedDayTableName)

	exist, err := s.closedDayRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if closed day exists")

		return fmt.Errorf("failed to check if closed day exists: %w", err)
	}

	if !exist {
		return failure.NotFound("closed day not found") // nolint:wrapcheck
	}

	if err := s.closedDayRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete closed day")

		return fmt.Errorf("failed to delete closed day: %w", err)
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllClosedDay)

	return nil
}

func (s *serviceImpl) CreateSpecialSchedule(ctx context.Context, req dto.CreateSpecialScheduleRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateSpecialSchedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := s.validateBounds(req.OpenTime, req.CloseTime); err != nil {
		return err
	}

	exist, err := s.specialScheduleRepo.Exist(ctx, filterByDate(req.Date, model.SpecialScheduleTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if special schedule exists")

		return fmt.Errorf("failed to check if special schedule exists: %w", err)
	}

	if exist {
		return failure.Conflict("this date already has a special schedule") // nolint:wrapcheck
	}

	if err := s.specialScheduleRepo.Insert(ctx, req.ToModel(user)); err != nil {
		if postgres.IsUniqueViolation(err) {
			return failure.Conflict("this date already has a special schedule") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create special schedule")

		return fmt.Errorf("failed to create special schedule: %w", err)
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllSpecialSchedule)

	return nil
}

func (s *serviceImpl) GetSpecialSchedules(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSpecialSchedulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSpecialSchedules")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSpecialSchedule, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for special schedules")

		return res, nil
	}

	total, err := s.specialScheduleRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count special schedules")

		return res, fmt.Errorf("failed to count special schedules: %w", err)
	}

	specialSchedules, err := s.specialScheduleRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get special schedules")

		return res, fmt.Errorf("failed to get special schedules: %w", err)
	}

	res.FromModels(specialSchedules, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save special schedules to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) DeleteSpecialSchedule(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteSpecialSchedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.SpecialScheduleTableName)

	exist, err := s.specialScheduleRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if special schedule exists")

		return fmt.Errorf("failed to check if special schedule exists: %w", err)
	}

	if !exist {
		return failure.NotFound("special schedule not found") // nolint:wrapcheck
	}

	if err := s.specialScheduleRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete special schedule")

		return fmt.Errorf("failed to delete special schedule: %w", err)
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllSpecialSchedule)

	return nil
}

// validateBounds rejects inverted, zero-width and off-grid operating windows.
// Slot generation starts at the open time as-is, so bounds off the grid would
// advertise slots that reservation creation refuses.
func (s *serviceImpl) validateBounds(openTime, closeTime string) error {
	open, err := timeslot.Parse(openTime)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	closed, err := timeslot.Parse(closeTime)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if open >= closed {
		return failure.BadRequestFromString("open_time must be before close_time") // nolint:wrapcheck
	}

	granularity := s.cfg.Venue.SlotGranularityMinutes
	if !timeslot.Aligned(openTime, granularity) || !timeslot.Aligned(closeTime, granularity) {
		return failure.BadRequestFromString("open_time and close_time must align to the slot granularity") // nolint:wrapcheck
	}

	return nil
}

func filterByDate(date, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldDate,
				Value:    date,
				Operator: gDto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
