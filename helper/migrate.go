package helper

import (
	"errors"
	"fmt"
	"net"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"

	"agenda/config"
)

const migrationSource = "file://migrations/postgres"

func open(config *config.Config) (*migrate.Migrate, error) {
	write := config.DB.Postgres.Write

	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s&x-migrations-table=%s",
		write.Username,
		write.Password,
		net.JoinHostPort(write.Host, write.Port),
		config.DB.Postgres.Prefix+write.Name,
		write.SSLMode,
		config.DB.Postgres.MigrationTable,
	)

	mig, err := migrate.New(migrationSource, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return mig, nil
}

func run(config *config.Config, action string, apply func(*migrate.Migrate) error) error {
	mig, err := open(config)
	if err != nil {
		return err
	}
	defer mig.Close()

	if err := apply(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration %s failed: %w", action, err)
	}

	log.Info().Str("action", action).Msg("database migration finished")

	return nil
}

func Up(config *config.Config) error {
	return run(config, "up", func(mig *migrate.Migrate) error { return mig.Up() })
}

func StepUp(config *config.Config) error {
	return run(config, "step-up", func(mig *migrate.Migrate) error { return mig.Steps(1) })
}

func Down(config *config.Config) error {
	return run(config, "down", func(mig *migrate.Migrate) error { return mig.Steps(-1) })
}

func Drop(config *config.Config) error {
	return run(config, "drop", func(mig *migrate.Migrate) error { return mig.Down() })
}
