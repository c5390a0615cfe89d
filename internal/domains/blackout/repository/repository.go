package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/internal/domains/blackout/model"
	"agenda/shared"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	gRepo "agenda/shared/repository"
)

type Blackout interface {
	Insert(ctx context.Context, period model.BlackoutPeriod) error
	Get(ctx context.Context, tenantID, id string) (model.BlackoutPeriod, error)
	ListForDate(ctx context.Context, tenantID string, date time.Time) ([]model.BlackoutPeriod, error)
	ListForTenant(ctx context.Context, tenantID string, params gDto.QueryParams) ([]model.BlackoutPeriod, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.BlackoutPeriod]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Blackout {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BlackoutPeriod](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, period model.BlackoutPeriod) error {
	return repo.Repository.Insert(ctx, period)
}

func (repo *repositoryImpl) Get(ctx context.Context, tenantID, id string) (model.BlackoutPeriod, error) {
	return repo.Repository.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldTenantID, Value: tenantID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	})
}

// ListForDate returns every period of the tenant whose date range covers the
// given day, oldest created first so the first match wins deterministically.
func (repo *repositoryImpl) ListForDate(ctx context.Context, tenantID string, date time.Time) ([]model.BlackoutPeriod, error) {
	day := date.Format(constant.DateOnlyFormat)

	return repo.GetAll(ctx,
		gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc},
		gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{Field: model.FieldTenantID, Value: tenantID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
				gDto.Filter{ArgName: "start_day", Field: model.FieldStartDate, Value: day, Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
				gDto.Filter{ArgName: "end_day", Field: model.FieldEndDate, Value: day, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
			},
		})
}

func (repo *repositoryImpl) ListForTenant(ctx context.Context, tenantID string, params gDto.QueryParams) ([]model.BlackoutPeriod, error) {
	return repo.GetAll(ctx, params, shared.FilterByID(tenantID, model.FieldTenantID, model.TableName))
}

func (repo *repositoryImpl) Delete(ctx context.Context, tenantID, id string) error {
	return repo.Repository.Delete(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldTenantID, Value: tenantID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	})
}
