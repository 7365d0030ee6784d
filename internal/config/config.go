package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	AppPort string

	DBDriver   string
	SQLitePath string
	MySQLHost  string
	MySQLPort  string
	MySQLDB    string
	MySQLUser  string
	MySQLPass  string
	DBLogLevel string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs            int
	EligibilityCacheTTLSecs int

	JWTSecret     string
	JWTTTLMinutes int
	BcryptCost    int

	AdminEmail    string
	AdminPassword string
	AdminName     string

	RequestExpiryDays int
	RequestExpirySpec string

	LogLevel  string
	LogFormat string

	AllowedOrigins []string
}

func getenv(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return d
}

// Load reads a .env file when present and then the process environment.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds the config from the environment only.
func FromEnv() *Config {
	c := &Config{
		AppPort: getenv("APP_PORT", "8080"),

		DBDriver:   strings.ToLower(getenv("DB_DRIVER", DriverMySQL)),
		SQLitePath: getenv("SQLITE_PATH", "inclusionnet.db"),
		MySQLHost:  getenv("MYSQL_HOST", "mysql"),
		MySQLPort:  getenv("MYSQL_PORT", "3306"),
		MySQLDB:    getenv("MYSQL_DB", "inclusionnet"),
		MySQLUser:  getenv("MYSQL_USER", "inclusionnet"),
		MySQLPass:  getenv("MYSQL_PASS", "inclusionnet"),
		DBLogLevel: getenv("DB_LOG_LEVEL", "warn"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		IdempTTLSecs:            getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),
		EligibilityCacheTTLSecs: getenvInt("ELIGIBILITY_CACHE_TTL_SECONDS", 600),

		JWTSecret:     getenv("JWT_SECRET", ""),
		JWTTTLMinutes: getenvInt("JWT_TTL_MINUTES", 60),
		BcryptCost:    getenvInt("BCRYPT_COST", 12),

		AdminEmail:    getenv("ADMIN_EMAIL", "admin@inclusionnet.local"),
		AdminPassword: getenv("ADMIN_PASSWORD", ""),
		AdminName:     getenv("ADMIN_NAME", "Administrator"),

		RequestExpiryDays: getenvInt("REQUEST_EXPIRY_DAYS", 14),
		RequestExpirySpec: getenv("REQUEST_EXPIRY_CRON", "0 0 * * * *"),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "text"),
	}
	for _, o := range strings.Split(getenv("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			c.AllowedOrigins = append(c.AllowedOrigins, o)
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	switch c.DBDriver {
	case DriverMySQL:
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("missing SQLITE_PATH")
		}
	default:
		return fmt.Errorf("invalid DB_DRIVER %q (must be mysql or sqlite)", c.DBDriver)
	}
	if len(c.JWTSecret) < 16 {
		return errors.New("JWT_SECRET must be at least 16 characters")
	}
	if c.JWTTTLMinutes <= 0 {
		return errors.New("JWT_TTL_MINUTES must be positive")
	}
	if c.RequestExpiryDays <= 0 {
		return errors.New("REQUEST_EXPIRY_DAYS must be positive")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

func (c *Config) IdempotencyTTL() time.Duration {
	return time.Duration(c.IdempTTLSecs) * time.Second
}

func (c *Config) EligibilityCacheTTL() time.Duration {
	return time.Duration(c.EligibilityCacheTTLSecs) * time.Second
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTTTLMinutes) * time.Minute
}

func (c *Config) RequestExpiry() time.Duration {
	return time.Duration(c.RequestExpiryDays) * 24 * time.Hour
}
