package databases

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"attempt-stats/internal/shared/loggers"

	zerologadapter "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultPostgresPort = 5432
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Dialect covers the SQL differences between the supported drivers.
type Dialect string

const (
	DialectPostgres Dialect = DriverPostgres
	DialectSQLite   Dialect = DriverSQLite
)

// Placeholder returns the bind parameter for the n-th (1-based) argument.
func (d Dialect) Placeholder(n int) string {
	if d == DialectPostgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// Placeholders returns "p1, p2, ..., pn" starting at the given 1-based offset.
func (d Dialect) Placeholders(from, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = d.Placeholder(from + i)
	}
	return strings.Join(parts, ", ")
}

type Options struct {
	Driver   string
	DBName   string
	User     string
	Password string
	Host     string
	Port     int
	SSLMode  string
}

// DB is a *sql.DB that knows its dialect.
type DB struct {
	*sql.DB
	Dialect Dialect
}

// Open opens and pings the database. Postgres goes through pgx's database/sql adapter with
// query tracing on the given logger; sqlite treats DBName as a file path (or ":memory:").
func Open(ctx context.Context, opts Options, logger loggers.Logger) (*DB, error) {
	var (
		sqlDB   *sql.DB
		dialect Dialect
	)
	switch opts.Driver {
	case DriverPostgres, "":
		connConfig, err := pgx.ParseConfig(PostgresDSN(opts))
		if err != nil {
			return nil, fmt.Errorf("parse postgres config: %w", err)
		}
		connConfig.Tracer = &tracelog.TraceLog{
			Logger:   zerologadapter.NewLogger(logger),
			LogLevel: tracelog.LogLevelWarn,
		}
		sqlDB = stdlib.OpenDB(*connConfig)
		dialect = DialectPostgres
	case DriverSQLite:
		db, err := sql.Open("sqlite", SQLiteDSN(opts.DBName))
		if err != nil {
			return nil, fmt.Errorf("open sqlite db: %w", err)
		}
		if opts.DBName == ":memory:" {
			// each connection would see its own empty database
			db.SetMaxOpenConns(1)
		}
		sqlDB = db
		dialect = DialectSQLite
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, opts.Driver)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s db: %w", dialect, err)
	}
	return &DB{DB: sqlDB, Dialect: dialect}, nil
}

// PostgresDSN builds a postgres:// url; the password is escaped.
func PostgresDSN(opts Options) string {
	port := opts.Port
	if port == 0 {
		port = defaultPostgresPort
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(opts.User, opts.Password),
		Host:   net.JoinHostPort(opts.Host, strconv.Itoa(port)),
		Path:   "/" + opts.DBName,
	}
	if opts.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {opts.SSLMode}}.Encode()
	}
	return u.String()
}

func SQLiteDSN(path string) string {
	if path == ":memory:" {
		return path
	}
	return filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}
