package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"minshuku/domain"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

type DatabaseOptions struct {
	Driver      string
	Path        string
	DSN         string
	CacheSizeKB int
	Debug       bool
}

// GetDatabaseURL builds the connection string of the server dialects.
func GetDatabaseURL(driver string) string {
	if driver == DriverMySQL {
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_HOST"),
			os.Getenv("DB_PORT"), os.Getenv("DB_DATABASE"))
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
}

func GetDatabaseOptions() DatabaseOptions {
	driver := GetDBDriver()
	opts := DatabaseOptions{
		Driver:      driver,
		Path:        GetDatabasePath(),
		CacheSizeKB: GetDatabaseCacheSizeKB(),
		Debug:       GetDatabaseDebug(),
	}
	if driver != DriverSQLite {
		opts.DSN = GetDatabaseURL(driver)
	}
	return opts
}

// BootDB opens the process-wide connection from the environment and makes sure the schema exists.
func BootDB() (*gorm.DB, error) {
	conn, err := OpenDB(GetDatabaseOptions())
	if err != nil {
		return nil, err
	}
	db = conn
	GetLogrusInstance().WithField("driver", GetDBDriver()).Info("DB initialized")
	return db, nil
}

// CloseDB releases the connection opened by BootDB. Calling it twice is harmless.
func CloseDB() error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	db = nil
	return sqlDB.Close()
}

func OpenDB(opts DatabaseOptions) (*gorm.DB, error) {
	dialector, err := dialectorFor(opts)
	if err != nil {
		return nil, err
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(opts.Debug),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if opts.Driver == DriverSQLite || opts.Driver == "" {
		// one writer at a time; pragmas in the DSN apply to this single connection
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := autoMigrate(conn); err != nil {
		return conn, err
	}
	return conn, nil
}

func dialectorFor(opts DatabaseOptions) (gorm.Dialector, error) {
	switch opts.Driver {
	case DriverPostgres:
		return postgres.Open(opts.DSN), nil
	case DriverMySQL:
		return mysql.Open(opts.DSN), nil
	case DriverSQLite, "":
		if dir := filepath.Dir(opts.Path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
		return sqlite.Open(SQLiteDSN(opts.Path, opts.CacheSizeKB)), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
}

// SQLiteDSN enables foreign keys, WAL journaling and a page cache of cacheKB KiB.
func SQLiteDSN(path string, cacheKB int) string {
	if cacheKB <= 0 {
		cacheKB = 64 * 1024
	}
	return fmt.Sprintf("%s?_foreign_keys=1&_journal_mode=WAL&_cache_size=-%d&_busy_timeout=5000", path, cacheKB)
}

func newGormLogger(debug bool) logger.Interface {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	return logger.New(GetLogrusInstance(), logger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func autoMigrate(db *gorm.DB) error {
	// tables without foreign keys first
	if err := db.AutoMigrate(
		&domain.Host{},
		&domain.Guest{},
	); err != nil {
		return fmt.Errorf("failed to migrate base tables: %w", err)
	}

	if err := db.AutoMigrate(
		&domain.House{},
		&domain.Room{},
		&domain.Bed{},
		&domain.Bathroom{},
		&domain.FamilyMember{},
		&domain.Assignment{},
	); err != nil {
		return fmt.Errorf("failed to migrate relational tables: %w", err)
	}

	return nil
}
