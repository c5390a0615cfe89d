package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/internal/domains/outbox/model"
	"agenda/shared/constant"
	"agenda/shared/logger"
	gRepo "agenda/shared/repository"
)

type Outbox interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, records []model.Record) error
	FetchDue(ctx context.Context, tx *sqlx.Tx, now time.Time, limit int) ([]model.Record, error)
	MarkProcessed(ctx context.Context, tx *sqlx.Tx, id int64, now time.Time) error
	MarkFailed(ctx context.Context, tx *sqlx.Tx, id int64, nextAttempt time.Time) error
	WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Outbox {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

// InsertTx appends effect records inside the caller's transaction so the
// effects commit atomically with the state transition that produced them.
func (repo *repositoryImpl) InsertTx(ctx context.Context, tx *sqlx.Tx, records []model.Record) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".outbox.InsertTx")
	defer scope.End()

	query := `INSERT INTO outbox_effects (tenant_id, kind, payload, attempts, next_attempt_at, created_at)
		VALUES (:tenant_id, :kind, :payload, :attempts, :next_attempt_at, :created_at)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	for _, record := range records {
		if _, err := tx.NamedExecContext(ctx, query, record); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return fmt.Errorf("failed to insert outbox effect (%s): %w", record.Kind, err)
		}
	}

	return nil
}

// FetchDue claims a batch of unprocessed effects. SKIP LOCKED lets multiple
// workers drain the queue without stepping on each other.
func (repo *repositoryImpl) FetchDue(ctx context.Context, tx *sqlx.Tx, now time.Time, limit int) ([]model.Record, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".outbox.FetchDue")
	defer scope.End()

	query := `SELECT id, tenant_id, kind, payload, attempts, next_attempt_at, processed_at, created_at
		FROM outbox_effects
		WHERE processed_at IS NULL AND next_attempt_at <= $1
		ORDER BY id
		LIMIT $2
		FOR UPDATE SKIP LOCKED`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var records []model.Record

	if err := tx.SelectContext(ctx, &records, query, now, limit); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to fetch due outbox effects: %w", err)
	}

	return records, nil
}

func (repo *repositoryImpl) MarkProcessed(ctx context.Context, tx *sqlx.Tx, id int64, now time.Time) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".outbox.MarkProcessed")
	defer scope.End()

	if _, err := tx.ExecContext(ctx, `UPDATE outbox_effects SET processed_at = $1 WHERE id = $2`, now, id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to mark outbox effect processed: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) MarkFailed(ctx context.Context, tx *sqlx.Tx, id int64, nextAttempt time.Time) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".outbox.MarkFailed")
	defer scope.End()

	if _, err := tx.ExecContext(ctx, `UPDATE outbox_effects SET attempts = attempts + 1, next_attempt_at = $1 WHERE id = $2`, nextAttempt, id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to mark outbox effect failed: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return gRepo.WithinTx(ctx, repo.db, fn) //nolint:wrapcheck
}
