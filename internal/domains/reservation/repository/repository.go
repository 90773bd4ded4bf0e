package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"mesa/infras/otel"
	"mesa/infras/postgres"
	"mesa/internal/domains/reservation/model"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/logger"
	gRepo "mesa/shared/repository"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	GetReservedTimes(ctx context.Context, date string) ([]model.ReservedTime, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetReservedTimes returns the time and status of every reservation placed on
// a date, regardless of pagination. The availability engine decides which
// statuses actually occupy a slot.
func (repo *repositoryImpl) GetReservedTimes(ctx context.Context, date string) ([]model.ReservedTime, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetReservedTimes")
	defer scope.End()

	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		model.FieldTime, model.FieldStatus, model.TableName, model.FieldDate)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	reserved := []model.ReservedTime{}

	err := repo.db.Read.SelectContext(ctx, &reserved, query, date)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get reserved times (%s): %w", model.EntityName, err)
	}

	return reserved, nil
}
