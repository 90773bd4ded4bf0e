//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"mesa/config"
	"mesa/infras/otel"
	"mesa/infras/postgres"
	"mesa/infras/redis"
	"mesa/shared/cache"
	"mesa/transport/http"
	"mesa/transport/http/middleware"
	"mesa/transport/http/router"

	availabilityService "mesa/internal/domains/availability/service"
	reservationRepository "mesa/internal/domains/reservation/repository"
	reservationService "mesa/internal/domains/reservation/service"
	scheduleRepository "mesa/internal/domains/schedule/repository"
	scheduleService "mesa/internal/domains/schedule/service"

	availabilityHandler "mesa/internal/handlers/availability"
	reservationHandler "mesa/internal/handlers/reservation"
	scheduleHandler "mesa/internal/handlers/schedule"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var scheduleDomain = wire.NewSet(
	scheduleRepository.NewClosedDay,
	scheduleRepository.NewSpecialSchedule,
	scheduleService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityService.New,
)

var domains = wire.NewSet(
	reservationDomain,
	scheduleDomain,
	availabilityDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	availabilityHandler.New,
	reservationHandler.New,
	scheduleHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
