package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/internal/domains/workinghours/model"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/logger"
	gRepo "agenda/shared/repository"
)

type WorkingHours interface {
	Upsert(ctx context.Context, row model.WorkingHours) error
	GetForWeekday(ctx context.Context, tenantID, staffID string, weekday int) (model.WorkingHours, error)
	ListForStaff(ctx context.Context, tenantID, staffID string) ([]model.WorkingHours, error)
	SetActive(ctx context.Context, tenantID, staffID string, weekday int, active bool, actor string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.WorkingHours]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) WorkingHours {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.WorkingHours](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Upsert writes the weekday row, replacing any existing schedule for the same
// staff member and weekday. One row per (staff, weekday) is an invariant.
func (repo *repositoryImpl) Upsert(ctx context.Context, row model.WorkingHours) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".workinghours.Upsert")
	defer scope.End()

	query := `INSERT INTO working_hours
		(id, tenant_id, staff_id, weekday, start_time, end_time, slot_duration_minutes, active, created_at, modified_at, created_by, modified_by)
		VALUES (:id, :tenant_id, :staff_id, :weekday, :start_time, :end_time, :slot_duration_minutes, :active, :created_at, :modified_at, :created_by, :modified_by)
		ON CONFLICT (tenant_id, staff_id, weekday) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			active = EXCLUDED.active,
			modified_at = EXCLUDED.modified_at,
			modified_by = EXCLUDED.modified_by`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, row); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert working hours: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) GetForWeekday(ctx context.Context, tenantID, staffID string, weekday int) (model.WorkingHours, error) {
	return repo.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldTenantID, Value: tenantID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStaffID, Value: staffID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldWeekday, Value: weekday, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	})
}

func (repo *repositoryImpl) ListForStaff(ctx context.Context, tenantID, staffID string) ([]model.WorkingHours, error) {
	return repo.GetAll(ctx,
		gDto.QueryParams{SortBy: model.FieldWeekday, SortDir: gDto.SortDirAsc},
		gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{Field: model.FieldTenantID, Value: tenantID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
				gDto.Filter{Field: model.FieldStaffID, Value: staffID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			},
		})
}

func (repo *repositoryImpl) SetActive(ctx context.Context, tenantID, staffID string, weekday int, active bool, actor string) error {
	return repo.Update(ctx,
		map[string]any{model.FieldActive: active, constant.FieldModifiedBy: actor},
		gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{Field: model.FieldTenantID, Value: tenantID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
				gDto.Filter{Field: model.FieldStaffID, Value: staffID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
				gDto.Filter{Field: model.FieldWeekday, Value: weekday, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			},
		})
}
