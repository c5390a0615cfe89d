package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"agenda/infras/postgres"
	"agenda/shared/logger"
)

// WithinTx runs fn inside a single write transaction, committing on nil and
// rolling back on error. Check-and-write sequences that must be atomic (slot
// overlap check + insert, conditional state transitions + outbox effects) go
// through here.
func WithinTx(ctx context.Context, db *postgres.Connection, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.ErrorWithStack(rbErr)
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
