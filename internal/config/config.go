// Package config loads server configuration from command-line flags,
// environment variables and an optional .env file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported database drivers.
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Config holds the application configuration.
type Config struct {
	App        AppConfig
	Logger     LoggerConfig
	Data       DataConfig
	Database   DatabaseConfig
	Server     ServerConfig
	Auth       AuthConfig
	Pagination PaginationConfig
	RateLimit  RateLimitConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// DataConfig points at the directory holding local state (SQLite file, auth key).
type DataConfig struct {
	Path string
}

// DatabaseConfig selects and addresses the backing database.
type DatabaseConfig struct {
	Driver string
	// Path is the SQLite file. Ignored for mysql.
	Path string

	Host     string
	Port     int
	User     string
	Password string
	Name     string

	MaxOpenConns int
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	// AccessTokenKey is the PASETO v4 symmetric key, filled in at startup.
	AccessTokenKey      []byte
	AccessTokenDuration time.Duration
}

// PaginationConfig controls the paged resources (books, politiebureaus).
type PaginationConfig struct {
	PageSize int
}

// RateLimitConfig controls the login limiter.
type RateLimitConfig struct {
	LoginPerMinute int
	LoginBurst     int
}

// LoadConfig builds a Config from args (without the program name).
// Precedence: flags, environment, .env file, defaults.
func LoadConfig(args []string) (*Config, error) {
	flags := flag.NewFlagSet("grammatica", flag.ContinueOnError)

	env := flags.String("env", "", "Environment (development, staging, production)")
	logLevel := flags.String("log-level", "", "Log level (debug, info, warn, error)")
	dataPath := flags.String("data-path", "", "Directory for local state (default: ~/Grammatica/data)")

	dbDriver := flags.String("db-driver", "", "Database driver (sqlite, mysql)")
	dbPath := flags.String("db-path", "", "SQLite database file (default: {data-path}/grammatica.db)")
	dbHost := flags.String("db-host", "", "MySQL host")
	dbPort := flags.String("db-port", "", "MySQL port (default: 3306)")
	dbUser := flags.String("db-user", "", "MySQL user")
	dbPassword := flags.String("db-password", "", "MySQL password")
	dbName := flags.String("db-name", "", "MySQL database name")
	dbMaxOpen := flags.String("db-max-open-conns", "", "Maximum open database connections")

	port := flags.String("port", "", "Server port (default: 8080)")
	readTimeout := flags.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := flags.String("write-timeout", "", "HTTP write timeout (default: 15s)")
	idleTimeout := flags.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")
	origins := flags.String("cors-allowed-origins", "", "Comma separated CORS origins (default: *)")

	accessTokenDuration := flags.String("access-token-duration", "", "Access token lifetime (default: 24h)")
	pageSize := flags.String("page-size", "", "Rows per page for paged resources (default: 2)")
	loginRate := flags.String("login-rate", "", "Login attempts per minute per client (default: 20)")
	loginBurst := flags.String("login-burst", "", "Login burst size (default: 10)")

	envFile := flags.String("env-file", ".env", "Path to .env file")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", *envFile, err)
	}

	r := &resolver{}
	cfg := &Config{
		App:    AppConfig{Environment: r.str(*env, "ENV", "development")},
		Logger: LoggerConfig{Level: r.str(*logLevel, "LOG_LEVEL", "info")},
		Data:   DataConfig{Path: r.str(*dataPath, "DATA_PATH", "")},
		Database: DatabaseConfig{
			Driver:       strings.ToLower(r.str(*dbDriver, "DB_DRIVER", DriverSQLite)),
			Path:         r.str(*dbPath, "DB_PATH", ""),
			Host:         r.str(*dbHost, "DB_HOST", "127.0.0.1"),
			Port:         r.integer(*dbPort, "DB_PORT", 3306),
			User:         r.str(*dbUser, "DB_USER", "root"),
			Password:     r.str(*dbPassword, "DB_PASSWORD", ""),
			Name:         r.str(*dbName, "DB_NAME", ""),
			MaxOpenConns: r.integer(*dbMaxOpen, "DB_MAX_OPEN_CONNS", 10),
		},
		Server: ServerConfig{
			Port:           r.str(*port, "SERVER_PORT", "8080"),
			ReadTimeout:    r.duration(*readTimeout, "SERVER_READ_TIMEOUT", "15s"),
			WriteTimeout:   r.duration(*writeTimeout, "SERVER_WRITE_TIMEOUT", "15s"),
			IdleTimeout:    r.duration(*idleTimeout, "SERVER_IDLE_TIMEOUT", "60s"),
			AllowedOrigins: splitList(r.str(*origins, "CORS_ALLOWED_ORIGINS", "*")),
		},
		Auth: AuthConfig{
			AccessTokenDuration: r.duration(*accessTokenDuration, "ACCESS_TOKEN_DURATION", "24h"),
		},
		Pagination: PaginationConfig{PageSize: r.integer(*pageSize, "PAGE_SIZE", 2)},
		RateLimit: RateLimitConfig{
			LoginPerMinute: r.integer(*loginRate, "LOGIN_RATE_PER_MINUTE", 20),
			LoginBurst:     r.integer(*loginBurst, "LOGIN_RATE_BURST", 10),
		},
	}
	if r.err != nil {
		return nil, r.err
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all config values are present and valid.
func (c *Config) Validate() error {
	switch c.App.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("invalid environment: %q (must be development, staging, or production)", c.App.Environment)
	}

	switch strings.ToLower(c.Logger.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q (must be debug, info, warn, or error)", c.Logger.Level)
	}

	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return errors.New("sqlite database path cannot be empty")
		}
	case DriverMySQL:
		if c.Database.Name == "" {
			return errors.New("DB_NAME is required for the mysql driver")
		}
	default:
		return fmt.Errorf("invalid database driver: %q (must be sqlite or mysql)", c.Database.Driver)
	}

	if c.Pagination.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", c.Pagination.PageSize)
	}

	if c.RateLimit.LoginPerMinute <= 0 || c.RateLimit.LoginBurst <= 0 {
		return errors.New("login rate limit values must be positive")
	}

	return nil
}

// IsProduction reports whether the server runs in production.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) expandPaths() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	c.Data.Path, err = expandPath(c.Data.Path, filepath.Join(home, "Grammatica", "data"))
	if err != nil {
		return fmt.Errorf("invalid data path: %w", err)
	}

	c.Database.Path, err = expandPath(c.Database.Path, filepath.Join(c.Data.Path, "grammatica.db"))
	if err != nil {
		return fmt.Errorf("invalid database path: %w", err)
	}
	return nil
}

// expandPath expands ~ and makes path absolute. Empty path yields defaultPath.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return abs, nil
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// resolver picks flag > env > default and remembers the first parse error.
type resolver struct {
	err error
}

func (r *resolver) str(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return defaultValue
}

func (r *resolver) integer(flagValue, envKey string, defaultValue int) int {
	s := r.str(flagValue, envKey, "")
	if s == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		r.fail(fmt.Errorf("invalid %s %q: %w", envKey, s, err))
		return defaultValue
	}
	return n
}

func (r *resolver) duration(flagValue, envKey, defaultValue string) time.Duration {
	s := r.str(flagValue, envKey, defaultValue)
	d, err := time.ParseDuration(s)
	if err != nil {
		r.fail(fmt.Errorf("invalid %s %q: %w", envKey, s, err))
		return 0
	}
	return d
}

func (r *resolver) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}
