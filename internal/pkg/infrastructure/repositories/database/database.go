package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

var (
	ErrNotFound         = errors.New("document not found")
	ErrStoreUnavailable = errors.New("document store unavailable")
	ErrCorruptRecord    = errors.New("corrupt document")
)

const (
	KindCatalog string = "catalog"
	KindDataset string = "dataset"
	KindTheme   string = "theme"
)

//Datastore is an interface that is used to inject the database into different services to improve testability
type Datastore interface {
	Ping(ctx context.Context) error
	Close() error
}

type Dialect struct {
	name        string
	placeholder squirrel.PlaceholderFormat
	schema      []string
}

var sqliteDialect = Dialect{
	name:        "sqlite",
	placeholder: squirrel.Question,
	schema: []string{
		`CREATE TABLE IF NOT EXISTS documents (
			kind     TEXT NOT NULL,
			id       TEXT NOT NULL,
			catalog  TEXT NOT NULL DEFAULT '',
			status   TEXT NOT NULL DEFAULT '',
			body     TEXT NOT NULL,
			modified TEXT NOT NULL,
			PRIMARY KEY (kind, id)
		)`,
		`CREATE INDEX IF NOT EXISTS documents_owner_idx ON documents (kind, catalog, status)`,
	},
}

var postgresDialect = Dialect{
	name:        "postgres",
	placeholder: squirrel.Dollar,
	schema: []string{
		`CREATE TABLE IF NOT EXISTS documents (
			kind     TEXT NOT NULL,
			id       TEXT NOT NULL,
			catalog  TEXT NOT NULL DEFAULT '',
			status   TEXT NOT NULL DEFAULT '',
			body     JSONB NOT NULL,
			modified TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (kind, id)
		)`,
		`CREATE INDEX IF NOT EXISTS documents_owner_idx ON documents (kind, catalog, status)`,
	},
}

//ConnectorFunc is used to inject a database connection method into NewDatabaseConnection
type ConnectorFunc func(ctx context.Context) (*sql.DB, Dialect, error)

//NewSQLiteConnector opens a connection to a local sqlite database, such as "file:dcat.db" or ":memory:"
func NewSQLiteConnector(dsn string) ConnectorFunc {
	return func(ctx context.Context) (*sql.DB, Dialect, error) {
		db, err := sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, sqliteDialect, err
		}

		// an in memory database only lives as long as its connection
		db.SetMaxOpenConns(1)
		db.SetConnMaxIdleTime(0)
		db.SetConnMaxLifetime(0)

		return db, sqliteDialect, nil
	}
}

//NewPostgreSQLConnector opens a connection pool to a PostgreSQL server using pgx
func NewPostgreSQLConnector(dsn string, connectTimeout time.Duration) ConnectorFunc {
	return func(ctx context.Context) (*sql.DB, Dialect, error) {
		cfg, err := pgx.ParseConfig(dsn)
		if err != nil {
			return nil, postgresDialect, fmt.Errorf("failed to parse postgres dsn: %w", err)
		}

		if connectTimeout > 0 {
			cfg.ConnectTimeout = connectTimeout
		}

		db := stdlib.OpenDB(*cfg)
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(time.Hour)

		return db, postgresDialect, nil
	}
}

type Database struct {
	impl    *sql.DB
	dialect Dialect
	builder squirrel.StatementBuilderType
}

//NewDatabaseConnection initializes a new connection to the database and makes sure the schema exists
func NewDatabaseConnection(ctx context.Context, connect ConnectorFunc) (*Database, error) {
	log := logging.GetFromContext(ctx)

	impl, d, err := connect(ctx)
	if err != nil {
		return nil, unavailable(err)
	}

	db := &Database{
		impl:    impl,
		dialect: d,
		builder: squirrel.StatementBuilder.PlaceholderFormat(d.placeholder),
	}

	if err = db.Ping(ctx); err != nil {
		impl.Close()
		return nil, err
	}

	for _, stmt := range d.schema {
		if _, err = impl.ExecContext(ctx, stmt); err != nil {
			impl.Close()
			return nil, fmt.Errorf("failed to migrate %s schema: %w", d.name, err)
		}
	}

	log.Info().Msgf("connected to %s document store", d.name)

	return db, nil
}

func (db *Database) Ping(ctx context.Context) error {
	if err := db.impl.PingContext(ctx); err != nil {
		return unavailable(err)
	}
	return nil
}

func (db *Database) Close() error {
	return db.impl.Close()
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
