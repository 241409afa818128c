// Package sqldb implements the store contracts on database/sql, backed by
// SQLite (modernc.org/sqlite) or MySQL (go-sql-driver/mysql).
package sqldb

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"github.com/grammatica/grammatica-server/internal/config"
)

var (
	//go:embed schema_sqlite.sql
	schemaSQLite string
	//go:embed schema_mysql.sql
	schemaMySQL string
)

// Options selects and addresses the database.
type Options struct {
	Driver string // config.DriverSQLite or config.DriverMySQL

	// Path is the SQLite database file.
	Path string

	Host     string
	Port     int
	User     string
	Password string
	Name     string

	MaxOpenConns int
}

// OptionsFromConfig maps the database section of the server config.
func OptionsFromConfig(cfg config.DatabaseConfig) Options {
	return Options{
		Driver:       cfg.Driver,
		Path:         cfg.Path,
		Host:         cfg.Host,
		Port:         cfg.Port,
		User:         cfg.User,
		Password:     cfg.Password,
		Name:         cfg.Name,
		MaxOpenConns: cfg.MaxOpenConns,
	}
}

// Store provides SQL-backed persistence for every resource.
type Store struct {
	db      *sql.DB
	dialect dialect
	logger  *slog.Logger

	tables
}

// Open connects to the configured database and applies the schema.
func Open(ctx context.Context, opts Options, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	d, dsn, err := dataSource(opts)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d.driver, err)
	}

	maxOpen := opts.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 4
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(min(maxOpen, 2))
	db.SetConnMaxLifetime(time.Hour)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", d.driver, err)
	}

	if err := applySchema(ctx, db, d.schema); err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db, dialect: d, logger: logger}
	s.tables = newTables(s)

	logger.Info("database ready", "driver", d.driver)
	return s, nil
}

func dataSource(opts Options) (dialect, string, error) {
	switch opts.Driver {
	case config.DriverSQLite, "":
		if opts.Path == "" {
			return dialect{}, "", fmt.Errorf("sqlite path is required")
		}
		// Pragmas go in the DSN so every pooled connection gets them.
		q := url.Values{}
		for _, p := range []string{"foreign_keys(1)", "journal_mode(WAL)", "synchronous(NORMAL)", "busy_timeout(5000)"} {
			q.Add("_pragma", p)
		}
		return sqliteDialect, "file:" + opts.Path + "?" + q.Encode(), nil

	case config.DriverMySQL:
		cfg := mysql.NewConfig()
		cfg.Net = "tcp"
		cfg.Addr = net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port))
		cfg.User = opts.User
		cfg.Passwd = opts.Password
		cfg.DBName = opts.Name
		// Report matched rather than changed rows so an update that writes
		// identical values is not mistaken for a missing row.
		cfg.ClientFoundRows = true
		cfg.Timeout = 10 * time.Second
		return mysqlDialect, cfg.FormatDSN(), nil

	default:
		return dialect{}, "", fmt.Errorf("unsupported database driver %q", opts.Driver)
	}
}

// applySchema runs each statement of schema separately; neither driver is
// opened with multi-statement support.
func applySchema(ctx context.Context, db *sql.DB, schema string) error {
	for _, stmt := range splitStatements(schema) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("exec schema: %w", err)
		}
	}
	return nil
}

func splitStatements(schema string) []string {
	var stmts []string
	for raw := range strings.SplitSeq(schema, ";") {
		var lines []string
		for line := range strings.SplitSeq(raw, "\n") {
			if t := strings.TrimSpace(line); t != "" && !strings.HasPrefix(t, "--") {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			stmts = append(stmts, strings.Join(lines, "\n"))
		}
	}
	return stmts
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Driver returns the database/sql driver name in use.
func (s *Store) Driver() string {
	return s.dialect.driver
}

// formatTime formats a time.Time to RFC3339Nano for storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTime parses a stored RFC3339Nano string.
func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
