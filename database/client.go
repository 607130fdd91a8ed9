package database

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"main/utils"

	"github.com/hashicorp/go-multierror"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Config holds database configuration
type Config struct {
	DSN   string
	Debug bool
}

// Client manages the database connection
type Client struct {
	db     *gorm.DB
	config *Config
}

// GetConfigFromEnv creates config from environment variables
func GetConfigFromEnv() *Config {
	user := os.Getenv("DB_USER")
	if user == "" {
		user = "postgres"
	}

	password := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "postgres"
	}

	sslMode := os.Getenv("DB_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}

	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}

	// Default schema (search_path)
	schema := os.Getenv("DB_SCHEMA")
	if schema == "" {
		schema = "public"
	}

	// Debug mode
	debug, _ := strconv.ParseBool(os.Getenv("DEBUG_DB"))

	// Build DSN using pgx format
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&search_path=%s",
		user, password, host, port, dbName, sslMode, schema,
	)

	return &Config{
		DSN:   dsn,
		Debug: debug,
	}
}

// NewClient creates a new database client backed by pgx
func NewClient(ctx context.Context, config *Config) (*Client, error) {
	if config == nil {
		config = GetConfigFromEnv()
	}

	// Parse connection config
	connConfig, err := pgx.ParseConfig(config.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection config: %w", err)
	}

	// Open database using pgx through stdlib interface
	sqlDB := stdlib.OpenDB(*connConfig)

	// Configure connection pool for external proxy (PgBouncer/pgpool)
	// These settings ensure connections are properly returned to proxy
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	// Test connection
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logLevel := gormlogger.Silent
	if config.Debug {
		logLevel = gormlogger.Info
	}

	// TranslateError включает перевод ошибок драйвера в перечислимые
	// ошибки gorm (ErrForeignKeyViolated и т.д.), на которые опирается store
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	utils.Logger.Info("Database client created successfully",
		zap.String("database", connConfig.Database),
		zap.String("host", connConfig.Host),
		zap.Uint16("port", connConfig.Port),
		zap.Bool("debug", config.Debug),
	)

	return &Client{db: db, config: config}, nil
}

// DB returns the underlying gorm connection
func (c *Client) DB() *gorm.DB {
	return c.db
}

// Close closes the database connection
func (c *Client) Close() error {
	var errs *multierror.Error

	if c.db != nil {
		sqlDB, err := c.db.DB()
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("failed to obtain sql connection: %w", err))
		} else if err := sqlDB.Close(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("failed to close database connection: %w", err))
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return err
	}

	utils.Logger.Info("Database client closed successfully")
	return nil
}

// IsDebugDB returns true if database debug mode is enabled
func IsDebugDB() bool {
	debug, _ := strconv.ParseBool(os.Getenv("DEBUG_DB"))
	return debug
}
