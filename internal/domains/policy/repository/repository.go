package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/internal/domains/policy/model"
	"agenda/shared"
	"agenda/shared/constant"
	"agenda/shared/logger"
	gRepo "agenda/shared/repository"
)

type Policy interface {
	Get(ctx context.Context, tenantID string) (model.CancellationPolicy, error)
	Upsert(ctx context.Context, policy model.CancellationPolicy) error
}

type repositoryImpl struct {
	gRepo.Repository[model.CancellationPolicy]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Policy {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CancellationPolicy](model.EntityName, model.TableName, model.FieldTenantID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) Get(ctx context.Context, tenantID string) (model.CancellationPolicy, error) {
	return repo.Repository.Get(ctx, shared.FilterByID(tenantID, model.FieldTenantID, model.TableName))
}

func (repo *repositoryImpl) Upsert(ctx context.Context, policy model.CancellationPolicy) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".policy.Upsert")
	defer scope.End()

	query := `INSERT INTO tenant_policies
		(tenant_id, enabled, min_notice_hours, max_per_month, block_on_exceed, block_days, block_message, created_at, modified_at, created_by, modified_by)
		VALUES (:tenant_id, :enabled, :min_notice_hours, :max_per_month, :block_on_exceed, :block_days, :block_message, :created_at, :modified_at, :created_by, :modified_by)
		ON CONFLICT (tenant_id) DO UPDATE SET
			enabled = EXCLUDED.enabled,
			min_notice_hours = EXCLUDED.min_notice_hours,
			max_per_month = EXCLUDED.max_per_month,
			block_on_exceed = EXCLUDED.block_on_exceed,
			block_days = EXCLUDED.block_days,
			block_message = EXCLUDED.block_message,
			modified_at = EXCLUDED.modified_at,
			modified_by = EXCLUDED.modified_by`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, policy); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert tenant policy: %w", err)
	}

	return nil
}
