package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/internal/domains/waitlist/model"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/logger"
	gModel "agenda/shared/model"
	gRepo "agenda/shared/repository"
)

type Waitlist interface {
	Insert(ctx context.Context, entry model.WaitlistEntry) (model.WaitlistEntry, error)
	ResolveByID(ctx context.Context, tenantID, id string) (model.WaitlistEntry, error)
	FindByToken(ctx context.Context, token string) (model.WaitlistEntry, error)
	CountOpenForClient(ctx context.Context, tenantID, clientEmail string) (int, error)
	QueuePosition(ctx context.Context, entry model.WaitlistEntry) (int, error)
	FindCandidate(ctx context.Context, tenantID, staffID, serviceID string, slot gModel.TimeSlot) (model.WaitlistEntry, error)
	ListStaleNotified(ctx context.Context, now time.Time, limit int) ([]model.WaitlistEntry, error)
	Transition(ctx context.Context, entry model.WaitlistEntry, from model.State) (bool, error)
	ListForClient(ctx context.Context, tenantID, clientEmail string) ([]model.WaitlistEntry, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.WaitlistEntry]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Waitlist {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.WaitlistEntry](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Insert persists a new entry. Priority comes from a bigserial column, so
// insertion order is the FIFO order without any coordination on our side.
func (repo *repositoryImpl) Insert(ctx context.Context, entry model.WaitlistEntry) (model.WaitlistEntry, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".waitlist.Insert")
	defer scope.End()

	query := `INSERT INTO waitlist_entries
		(id, tenant_id, staff_id, service_id, client_email, preferred_date, preferred_weekdays, preferred_start_time, preferred_end_time, state, created_at, modified_at, created_by, modified_by)
		VALUES (:id, :tenant_id, :staff_id, :service_id, :client_email, :preferred_date, :preferred_weekdays, :preferred_start_time, :preferred_end_time, :state, :created_at, :modified_at, :created_by, :modified_by)
		RETURNING priority`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows, err := repo.db.Write.NamedQueryContext(ctx, query, entry)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return entry, fmt.Errorf("failed to insert waitlist entry: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&entry.Priority); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return entry, fmt.Errorf("failed to scan waitlist priority: %w", err)
		}
	}

	return entry, nil
}

func (repo *repositoryImpl) ResolveByID(ctx context.Context, tenantID, id string) (model.WaitlistEntry, error) {
	return repo.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldTenantID, Value: tenantID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	})
}

func (repo *repositoryImpl) FindByToken(ctx context.Context, token string) (model.WaitlistEntry, error) {
	return repo.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldConfirmationToken, Value: token, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	})
}

// CountOpenForClient counts the client's ACTIVE and NOTIFIED entries within
// the tenant, for the per-client abuse guard.
func (repo *repositoryImpl) CountOpenForClient(ctx context.Context, tenantID, clientEmail string) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".waitlist.CountOpenForClient")
	defer scope.End()

	query := `SELECT COUNT(*) FROM waitlist_entries
		WHERE tenant_id = $1 AND client_email = $2 AND state IN ('ACTIVE', 'NOTIFIED')`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int
	if err := repo.db.Read.GetContext(ctx, &count, query, tenantID, clientEmail); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count open waitlist entries: %w", err)
	}

	return count, nil
}

// QueuePosition returns the 1-based position among open entries for the same
// staff and service, ordered by priority.
func (repo *repositoryImpl) QueuePosition(ctx context.Context, entry model.WaitlistEntry) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".waitlist.QueuePosition")
	defer scope.End()

	query := `SELECT COUNT(*) FROM waitlist_entries
		WHERE tenant_id = $1 AND staff_id = $2 AND service_id = $3
		AND state IN ('ACTIVE', 'NOTIFIED') AND priority < $4`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var ahead int
	if err := repo.db.Read.GetContext(ctx, &ahead, query, entry.TenantID, entry.StaffID, entry.ServiceID, entry.Priority); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to compute waitlist queue position: %w", err)
	}

	return ahead + 1, nil
}

// FindCandidate returns the oldest ACTIVE entry whose preferences match the
// freed slot, or a zero entry when none match. Preference matching mirrors
// model.Matches so the SQL and the pure check cannot drift apart unnoticed.
func (repo *repositoryImpl) FindCandidate(ctx context.Context, tenantID, staffID, serviceID string, slot gModel.TimeSlot) (model.WaitlistEntry, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".waitlist.FindCandidate")
	defer scope.End()

	query := `SELECT * FROM waitlist_entries
		WHERE tenant_id = $1 AND staff_id = $2 AND service_id = $3 AND state = 'ACTIVE'
		AND (preferred_date = $4 OR $5 = ANY(preferred_weekdays))
		AND preferred_start_time <= $6 AND preferred_end_time > $6
		ORDER BY priority ASC
		LIMIT 1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var entries []model.WaitlistEntry

	err := repo.db.Read.SelectContext(ctx, &entries, query,
		tenantID, staffID, serviceID, slot.Date, int64(slot.Date.Weekday()), slot.Start)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.WaitlistEntry{}, fmt.Errorf("failed to find waitlist candidate: %w", err)
	}

	if len(entries) == 0 {
		return model.WaitlistEntry{}, nil
	}

	return entries[0], nil
}

// ListStaleNotified returns NOTIFIED entries whose confirmation window has
// already closed, oldest first.
func (repo *repositoryImpl) ListStaleNotified(ctx context.Context, now time.Time, limit int) ([]model.WaitlistEntry, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".waitlist.ListStaleNotified")
	defer scope.End()

	query := `SELECT * FROM waitlist_entries
		WHERE state = 'NOTIFIED' AND token_expires_at < $1
		ORDER BY token_expires_at ASC
		LIMIT $2`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var entries []model.WaitlistEntry
	if err := repo.db.Read.SelectContext(ctx, &entries, query, now, limit); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list stale notified entries: %w", err)
	}

	return entries, nil
}

// Transition persists the entry's new state conditionally on the row still
// being in the expected prior state. A false return means the entry moved
// concurrently and the caller's copy is stale.
func (repo *repositoryImpl) Transition(ctx context.Context, entry model.WaitlistEntry, from model.State) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".waitlist.Transition")
	defer scope.End()

	query := `UPDATE waitlist_entries SET
			state = :state,
			confirmation_token = :confirmation_token,
			token_expires_at = :token_expires_at,
			offered_date = :offered_date,
			offered_start_time = :offered_start_time,
			offered_end_time = :offered_end_time,
			reservation_id = :reservation_id,
			modified_at = :modified_at,
			modified_by = :modified_by
		WHERE id = :id AND state = :from_state`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"state":              entry.State,
		"confirmation_token": entry.ConfirmationToken,
		"token_expires_at":   entry.TokenExpiresAt,
		"offered_date":       entry.OfferedDate,
		"offered_start_time": entry.OfferedStart,
		"offered_end_time":   entry.OfferedEnd,
		"reservation_id":     entry.ReservationID,
		"modified_at":        entry.ModifiedAt,
		"modified_by":        entry.ModifiedBy,
		"id":                 entry.ID,
		"from_state":         from,
	}

	res, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to transition waitlist entry: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to count transitioned waitlist rows: %w", err)
	}

	return affected == 1, nil
}

func (repo *repositoryImpl) ListForClient(ctx context.Context, tenantID, clientEmail string) ([]model.WaitlistEntry, error) {
	return repo.GetAll(ctx,
		gDto.QueryParams{SortBy: model.FieldPriority, SortDir: gDto.SortDirAsc},
		gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{Field: model.FieldTenantID, Value: tenantID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
				gDto.Filter{Field: model.FieldClientEmail, Value: clientEmail, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			},
		})
}
