package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/internal/domains/trust/model"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/logger"
	gRepo "agenda/shared/repository"
)

type Trust interface {
	GetOrCreate(ctx context.Context, rec model.ClientTrustRecord) (model.ClientTrustRecord, error)
	Save(ctx context.Context, rec model.ClientTrustRecord) error
	ResetPeriods(ctx context.Context, period string) (int64, error)
	GetForClient(ctx context.Context, tenantID, clientEmail string) (model.ClientTrustRecord, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.ClientTrustRecord]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Trust {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ClientTrustRecord](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetOrCreate inserts the record if no row exists for the (tenant, email)
// pair and returns whichever row ends up in the table. The no-op DO UPDATE
// makes RETURNING yield the existing row on conflict.
func (repo *repositoryImpl) GetOrCreate(ctx context.Context, rec model.ClientTrustRecord) (model.ClientTrustRecord, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".trust.GetOrCreate")
	defer scope.End()

	query := `INSERT INTO client_trust_records
		(id, tenant_id, client_email, period, cancellations_this_period, total_cancellations, blocked, blocked_until, block_reason, created_at, modified_at, created_by, modified_by)
		VALUES (:id, :tenant_id, :client_email, :period, :cancellations_this_period, :total_cancellations, :blocked, :blocked_until, :block_reason, :created_at, :modified_at, :created_by, :modified_by)
		ON CONFLICT (tenant_id, client_email) DO UPDATE SET tenant_id = EXCLUDED.tenant_id
		RETURNING *`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows, err := repo.db.Write.NamedQueryContext(ctx, query, rec)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.ClientTrustRecord{}, fmt.Errorf("failed to get or create trust record: %w", err)
	}
	defer rows.Close()

	var out model.ClientTrustRecord
	if rows.Next() {
		if err := rows.StructScan(&out); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return model.ClientTrustRecord{}, fmt.Errorf("failed to scan trust record: %w", err)
		}
	}

	return out, nil
}

func (repo *repositoryImpl) Save(ctx context.Context, rec model.ClientTrustRecord) error {
	return repo.Update(ctx,
		map[string]any{
			model.FieldPeriod:                  rec.Period,
			model.FieldCancellationsThisPeriod: rec.CancellationsThisPeriod,
			model.FieldTotalCancellations:      rec.TotalCancellations,
			model.FieldBlocked:                 rec.Blocked,
			model.FieldBlockedUntil:            rec.BlockedUntil,
			model.FieldBlockReason:             rec.BlockReason,
			constant.FieldModifiedBy:           rec.ModifiedBy,
		},
		gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{Field: model.FieldID, Value: rec.ID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			},
		})
}

// ResetPeriods zeroes the monthly counter for every record whose period key
// lags behind the given one. Running it twice in the same month matches
// nothing the second time.
func (repo *repositoryImpl) ResetPeriods(ctx context.Context, period string) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".trust.ResetPeriods")
	defer scope.End()

	query := `UPDATE client_trust_records
		SET cancellations_this_period = 0, period = $1, modified_at = NOW(), modified_by = $2
		WHERE period <> $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	res, err := repo.db.Write.ExecContext(ctx, query, period, constant.RoleSystem)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to reset trust periods: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count reset trust records: %w", err)
	}

	return affected, nil
}

func (repo *repositoryImpl) GetForClient(ctx context.Context, tenantID, clientEmail string) (model.ClientTrustRecord, error) {
	return repo.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldTenantID, Value: tenantID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldClientEmail, Value: clientEmail, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	})
}
