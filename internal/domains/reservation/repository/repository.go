package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tie/infras/otel"
	"tie/infras/postgres"
	"tie/internal/domains/reservation/model"
	"tie/shared/constant"
	gDto "tie/shared/dto"
	"tie/shared/logger"
	gRepo "tie/shared/repository"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, bool, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Summarize(ctx context.Context, filter gDto.FilterGroup) (model.Summary, error)
	Breakdown(ctx context.Context, dimension model.Dimension, filter gDto.FilterGroup) ([]model.BreakdownRow, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldBookingID, db, otel),
		db:         db,
		otel:       otel,
	}
}

const summarizeQuery = `SELECT COUNT(%[1]s.booking_id) AS reservations, ` +
	`COALESCE(SUM(%[1]s.total_tariff), 0) AS revenue, ` +
	`COALESCE(SUM(%[1]s.advance_amount), 0) AS advance_received, ` +
	`COALESCE(SUM(%[1]s.balance_amount), 0) AS balance_pending, ` +
	`COALESCE(AVG(%[1]s.tariff_per_night), 0) AS average_tariff, ` +
	`COALESCE(AVG(%[1]s.stay_days), 0) AS average_stay ` +
	`FROM %[1]s %[2]s`

func (r *repositoryImpl) Summarize(ctx context.Context, filter gDto.FilterGroup) (summary model.Summary, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Summarize")
	defer scope.End()

	where, args := r.BuildWhereClause(filter)

	query := fmt.Sprintf(summarizeQuery, model.TableName, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return summary, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &summary, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return summary, fmt.Errorf("failed to summarize data (%s): %w", model.EntityName, err)
	}

	return summary, nil
}

const breakdownQuery = `SELECT COALESCE(%[2]s, '') AS group_key, ` +
	`COUNT(%[1]s.booking_id) AS reservations, ` +
	`COALESCE(SUM(%[1]s.total_tariff), 0) AS revenue ` +
	`FROM %[1]s %[3]s GROUP BY 1 ORDER BY %[4]s`

// Breakdown groups the filtered reservations by dimension, which must be one of model.Dimensions.
func (r *repositoryImpl) Breakdown(
	ctx context.Context, dimension model.Dimension, filter gDto.FilterGroup,
) (rows []model.BreakdownRow, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Breakdown")
	defer scope.End()

	if !dimension.IsValid() {
		return nil, fmt.Errorf("unsupported breakdown dimension %q", dimension)
	}

	where, args := r.BuildWhereClause(filter)

	order := "reservations DESC, group_key ASC"
	if dimension.Chronological() {
		order = "group_key ASC"
	}

	query := fmt.Sprintf(breakdownQuery, model.TableName, dimension.GroupExpression(), where, order)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	rows = []model.BreakdownRow{}
	if err = prepare.SelectContext(ctx, &rows, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to break down data (%s): %w", model.EntityName, err)
	}

	return rows, nil
}
