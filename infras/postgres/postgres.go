package postgres

import (
	"fmt"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"agenda/config"
)

const (
	maxIdleConns = 10
	maxOpenConns = 10
)

// Connection keeps separate read and write handles so listing traffic can be
// pointed at a replica without touching the repositories.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	host     string
	port     string
	username string
	password string
	name     string
	sslMode  string
}

func New(config *config.Config) *Connection {
	pg := config.DB.Postgres

	read := endpoint{
		host:     pg.Read.Host,
		port:     pg.Read.Port,
		username: pg.Read.Username,
		password: pg.Read.Password,
		name:     pg.Read.Name,
		sslMode:  pg.Read.SSLMode,
	}

	write := endpoint{
		host:     pg.Write.Host,
		port:     pg.Write.Port,
		username: pg.Write.Username,
		password: pg.Write.Password,
		name:     pg.Write.Name,
		sslMode:  pg.Write.SSLMode,
	}

	return &Connection{
		Read:  connect("read", read, pg.Prefix, pg.MaxRetry, pg.RetryWaitTime),
		Write: connect("write", write, pg.Prefix, pg.MaxRetry, pg.RetryWaitTime),
	}
}

func connect(role string, ep endpoint, prefix string, maxRetry, waitSeconds int) *sqlx.DB {
	dbName := prefix + ep.name

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		ep.username, ep.password, net.JoinHostPort(ep.host, ep.port), dbName, ep.sslMode,
	)

	for attempt := 1; attempt <= maxRetry; attempt++ {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			db.SetMaxIdleConns(maxIdleConns)
			db.SetMaxOpenConns(maxOpenConns)

			log.Info().
				Str("role", role).
				Str("host", ep.host).
				Str("database", dbName).
				Msg("connected to postgres")

			return db
		}

		log.Error().
			Err(err).
			Str("role", role).
			Str("host", ep.host).
			Str("database", dbName).
			Int("attempt", attempt).
			Msg("failed to connect to postgres, retrying")

		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	return nil
}
