package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"net/url"
	"time"

	"hotel/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName = "postgres"

	// one interactive session issues one statement at a time
	postgresMaxOpenConnection = 1
	postgresMaxIdleConnection = 1
)

// New opens the client's single database connection. The returned cleanup closes it.
func New(cfg *config.Config) (*sqlx.DB, func(), error) {
	db, err := CreatePostgresConnection(
		cfg.DB.Postgres.Username,
		cfg.DB.Postgres.Password,
		cfg.DB.Postgres.Host,
		cfg.DB.Postgres.Port,
		cfg.DB.Postgres.Name,
		cfg.DB.Postgres.SSLMode,
		cfg.DB.Postgres.MaxRetry,
		cfg.DB.Postgres.RetryWaitTime,
	)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed closing database connection")
		}
	}

	return db, cleanup, nil
}

// Descriptor builds the postgres connection URL.
func Descriptor(username, password, host, port, dbName, sslMode string) string {
	return fmt.Sprintf(
		"postgres://%s@%s/%s?sslmode=%s",
		url.UserPassword(username, password).String(),
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)
}

// CreatePostgresConnection connects to postgres, retrying up to maxRetry times.
func CreatePostgresConnection(username, password, host, port, dbName, sslMode string, maxRetry, waitTime int) (*sqlx.DB, error) {
	descriptor := Descriptor(username, password, host, port, dbName, sslMode)

	if maxRetry < 1 {
		maxRetry = 1
	}

	var err error

	for retry := range maxRetry {
		var sqlDB *sqlx.DB

		sqlDB, err = sqlx.Connect(driverName, descriptor)
		if err == nil {
			log.
				Info().
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB, nil
		}

		log.
			Error().
			Err(err).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database")

		if retry+1 < maxRetry {
			time.Sleep(time.Duration(waitTime) * time.Second)
		}
	}

	return nil, fmt.Errorf("unable to connect to database %s: %w", dbName, err)
}
