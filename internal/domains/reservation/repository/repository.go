package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"agenda/infras/otel"
	"agenda/infras/postgres"
	obModel "agenda/internal/domains/outbox/model"
	obRepo "agenda/internal/domains/outbox/repository"
	"agenda/internal/domains/reservation/model"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/logger"
	gModel "agenda/shared/model"
	gRepo "agenda/shared/repository"
)

type Reservation interface {
	InsertBooked(ctx context.Context, res model.Reservation, effects []obModel.Record) error
	UpdateSlot(ctx context.Context, res model.Reservation, effects []obModel.Record) error
	Transition(ctx context.Context, res model.Reservation, from model.State, effects []obModel.Record) error
	Get(ctx context.Context, tenantID, id string) (model.Reservation, error)
	GetByCancelToken(ctx context.Context, token string) (model.Reservation, error)
	ListActiveForStaffDate(ctx context.Context, tenantID, staffID string, date time.Time) ([]model.Reservation, error)
	SlotTaken(ctx context.Context, tenantID, staffID string, slot gModel.TimeSlot) (bool, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db     *postgres.Connection
	outbox obRepo.Outbox
	otel   otel.Otel
}

func New(db *postgres.Connection, outbox obRepo.Outbox, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		outbox:     outbox,
		otel:       otel,
	}
}

// overlapQuery finds any competing non-cancelled reservation for the staff
// member on the slot's day. Intervals are half-open.
const overlapQuery = `SELECT COUNT(1) FROM reservations
	WHERE tenant_id = :tenant_id
	  AND staff_id = :staff_id
	  AND booking_date = :booking_date
	  AND state != 'CANCELLED'
	  AND id != :exclude_id
	  AND start_time < :end_time
	  AND end_time > :start_time`

// lockStaff serializes concurrent writers for one staff member for the rest
// of the transaction. The advisory lock backs the overlap check-and-write so
// two concurrent bookers cannot both pass the check.
func lockStaff(ctx context.Context, tx *sqlx.Tx, tenantID, staffID string) error {
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1 || ':' || $2))`, tenantID, staffID); err != nil {
		return fmt.Errorf("failed to acquire staff booking lock: %w", err)
	}

	return nil
}

func slotTakenTx(ctx context.Context, tx *sqlx.Tx, res model.Reservation) (bool, error) {
	rows, err := sqlx.NamedQueryContext(ctx, tx, overlapQuery, map[string]any{
		"tenant_id":    res.TenantID,
		"staff_id":     res.StaffID,
		"booking_date": res.Date,
		"exclude_id":   res.ID,
		"start_time":   res.StartTime,
		"end_time":     res.EndTime,
	})
	if err != nil {
		return false, fmt.Errorf("failed to check slot overlap: %w", err)
	}
	defer rows.Close()

	count := 0
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return false, fmt.Errorf("failed to scan overlap count: %w", err)
		}
	}

	return count > 0, rows.Err()
}

// InsertBooked performs the atomic check-and-write that guarantees at most
// one non-cancelled reservation per slot: lock the staff member, re-check for
// overlaps, insert, and enqueue effects, all in one transaction.
func (repo *repositoryImpl) InsertBooked(ctx context.Context, res model.Reservation, effects []obModel.Record) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.InsertBooked")
	defer scope.End()

	err := gRepo.WithinTx(ctx, repo.db, func(tx *sqlx.Tx) error {
		if err := lockStaff(ctx, tx, res.TenantID, res.StaffID); err != nil {
			return err
		}

		taken, err := slotTakenTx(ctx, tx, res)
		if err != nil {
			return err
		}

		if taken {
			return ErrSlotTaken
		}

		if err := repo.InsertTx(ctx, tx, res); err != nil {
			return err //nolint:wrapcheck
		}

		return repo.outbox.InsertTx(ctx, tx, effects) //nolint:wrapcheck
	})

	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	return nil
}

// UpdateSlot moves a BOOKED reservation to a new slot under the same staff
// lock and overlap check used for booking. The reservation's own row is
// excluded from the check.
func (repo *repositoryImpl) UpdateSlot(ctx context.Context, res model.Reservation, effects []obModel.Record) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.UpdateSlot")
	defer scope.End()

	err := gRepo.WithinTx(ctx, repo.db, func(tx *sqlx.Tx) error {
		if err := lockStaff(ctx, tx, res.TenantID, res.StaffID); err != nil {
			return err
		}

		taken, err := slotTakenTx(ctx, tx, res)
		if err != nil {
			return err
		}

		if taken {
			return ErrSlotTaken
		}

		query := `UPDATE reservations
			SET booking_date = :booking_date, start_time = :start_time, end_time = :end_time,
			    modified_at = :modified_at, modified_by = :modified_by
			WHERE id = :id AND state = 'BOOKED'`

		result, err := tx.NamedExecContext(ctx, query, res)
		if err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to update reservation slot: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}

		if affected == 0 {
			return ErrStaleState
		}

		return repo.outbox.InsertTx(ctx, tx, effects) //nolint:wrapcheck
	})

	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	return nil
}

// Transition persists a state change conditionally on the expected source
// state, enqueueing effects in the same transaction. A zero-row update means
// a concurrent writer got there first.
func (repo *repositoryImpl) Transition(ctx context.Context, res model.Reservation, from model.State, effects []obModel.Record) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Transition")
	defer scope.End()

	err := gRepo.WithinTx(ctx, repo.db, func(tx *sqlx.Tx) error {
		query := `UPDATE reservations
			SET state = :state, modified_at = :modified_at, modified_by = :modified_by
			WHERE id = :id AND state = :from_state`

		result, err := tx.NamedExecContext(ctx, query, map[string]any{
			"state":       res.State,
			"modified_at": res.ModifiedAt,
			"modified_by": res.ModifiedBy,
			"id":          res.ID,
			"from_state":  from,
		})
		if err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to transition reservation: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}

		if affected == 0 {
			return ErrStaleState
		}

		return repo.outbox.InsertTx(ctx, tx, effects) //nolint:wrapcheck
	})

	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	return nil
}

func (repo *repositoryImpl) Get(ctx context.Context, tenantID, id string) (model.Reservation, error) {
	return repo.Repository.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldTenantID, Value: tenantID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	})
}

func (repo *repositoryImpl) GetByCancelToken(ctx context.Context, token string) (model.Reservation, error) {
	return repo.Repository.Get(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldCancelToken, Value: token, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	})
}

// ListActiveForStaffDate returns the staff member's non-cancelled
// reservations on a day, the busy intervals availability subtracts.
func (repo *repositoryImpl) ListActiveForStaffDate(ctx context.Context, tenantID, staffID string, date time.Time) ([]model.Reservation, error) {
	return repo.GetAll(ctx,
		gDto.QueryParams{SortBy: model.FieldStartTime, SortDir: gDto.SortDirAsc},
		gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{Field: model.FieldTenantID, Value: tenantID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
				gDto.Filter{Field: model.FieldStaffID, Value: staffID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
				gDto.Filter{Field: model.FieldDate, Value: gModel.Midnight(date), Operator: gDto.FilterOperatorEq, Table: model.TableName},
				gDto.Filter{Field: model.FieldState, Value: string(model.StateCancelled), Operator: gDto.FilterOperatorNotEq, Table: model.TableName},
			},
		})
}

// SlotTaken is the read-only re-verification used at waitlist conversion
// time. It deliberately runs outside any lock: conversion compensates on
// conflict instead of serializing.
func (repo *repositoryImpl) SlotTaken(ctx context.Context, tenantID, staffID string, slot gModel.TimeSlot) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.SlotTaken")
	defer scope.End()

	query := `SELECT COUNT(1) FROM reservations
		WHERE tenant_id = $1 AND staff_id = $2 AND booking_date = $3
		  AND state != 'CANCELLED' AND start_time < $4 AND end_time > $5`

	count := 0
	if err := repo.db.Read.GetContext(ctx, &count, query, tenantID, staffID, slot.Date, slot.End, slot.Start); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check slot: %w", err)
	}

	return count > 0, nil
}
