package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"mesa/infras/otel"
	"mesa/infras/postgres"
	"mesa/internal/domains/schedule/model"
	gDto "mesa/shared/dto"
	gRepo "mesa/shared/repository"
)

type ClosedDay interface {
	Insert(ctx context.Context, model model.ClosedDay) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ClosedDay, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ClosedDay, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type SpecialSchedule interface {
	Insert(ctx context.Context, model model.SpecialSchedule) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SpecialSchedule, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SpecialSchedule, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type closedDayRepositoryImpl struct {
	gRepo.Repository[model.ClosedDay]
	db   *postgres.Connection
	otel otel.Otel
}

func NewClosedDay(db *postgres.Connection, otel otel.Otel) ClosedDay {
	return &closedDayRepositoryImpl{
		Repository: gRepo.NewRepository[model.ClosedDay](model.ClosedDayEntityName, model.ClosedDayTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type specialScheduleRepositoryImpl struct {
	gRepo.Repository[model.SpecialSchedule]
	db   *postgres.Connection
	otel otel.Otel
}

func NewSpecialSchedule(db *postgres.Connection, otel otel.Otel) SpecialSchedule {
	return &specialScheduleRepositoryImpl{
		Repository: gRepo.NewRepository[model.SpecialSchedule](model.SpecialScheduleEntityName, model.SpecialScheduleTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
