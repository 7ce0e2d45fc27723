package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

func GetAppName() string {
	v := os.Getenv("APP_NAME")
	if v == "" {
		return "MINSHUKU"
	}
	return v
}

func GetLogLevel() string {
	v := os.Getenv("LOG_LEVEL")
	if v == "" {
		return "info"
	}
	return v
}

func GetDBDriver() string {
	switch v := strings.ToLower(strings.TrimSpace(os.Getenv("DB_DRIVER"))); v {
	case DriverPostgres, "postgresql", "pg":
		return DriverPostgres
	case DriverMySQL, "mariadb":
		return DriverMySQL
	default:
		return DriverSQLite
	}
}

func GetDatabasePath() string {
	v := os.Getenv("DB_PATH")
	if v == "" {
		return "data/minshuku.sqlite"
	}
	return v
}

// GetDatabaseCacheSizeKB is the SQLite page cache size, in KiB.
func GetDatabaseCacheSizeKB() int {
	v, err := strconv.Atoi(os.Getenv("DB_CACHE_SIZE_KB"))
	if err != nil || v <= 0 {
		return 64 * 1024
	}
	return v
}

func GetDatabaseDebug() bool {
	return envBool("DB_DEBUG", false)
}

func GetHTTPEnabled() bool {
	return envBool("HTTP_ENABLED", true)
}

func GetHTTPHost() string {
	env := os.Getenv("HTTP_HOST")
	if env != "" {
		return env
	}
	return "127.0.0.1"
}

func GetHTTPPort() string {
	env := os.Getenv("HTTP_PORT")
	if env != "" {
		return env
	}
	return "8000"
}

// GetAPISecret returns the HS256 key of the HTTP delivery. Empty disables authentication.
func GetAPISecret() string {
	return os.Getenv("API_SECRET")
}

func GetOperatorUsername() string {
	v := os.Getenv("OPERATOR_USERNAME")
	if v == "" {
		return "admin"
	}
	return v
}

func GetOperatorPasswordHash() string {
	return os.Getenv("OPERATOR_PASSWORD_HASH")
}

func envBool(key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

// GetContextTimeout bounds every use-case call. CONTEXT_TIMEOUT is in seconds.
func GetContextTimeout() time.Duration {
	v, err := strconv.Atoi(os.Getenv("CONTEXT_TIMEOUT"))
	if err != nil || v <= 0 {
		return 10 * time.Second
	}
	return time.Duration(v) * time.Second
}
