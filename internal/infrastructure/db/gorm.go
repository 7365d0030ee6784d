package db

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"inclusionnet/internal/config"
	applog "inclusionnet/internal/logger"
)

// Dialector picks the gorm driver for the configured DB_DRIVER.
func Dialector(c *config.Config) (gorm.Dialector, error) {
	switch c.DBDriver {
	case config.DriverMySQL:
		return mysql.Open(c.MySQLDSN()), nil
	case config.DriverSQLite:
		// foreign keys are off by default in sqlite
		return sqlite.Open(c.SQLitePath + "?_foreign_keys=on&_busy_timeout=5000"), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
}

func OpenGorm(c *config.Config) (*gorm.DB, error) {
	dial, err := Dialector(c)
	if err != nil {
		return nil, err
	}
	db, err := OpenGormWithDialector(dial, GormLogLevel(c.DBLogLevel))
	if err != nil {
		return nil, err
	}
	if c.DBDriver == config.DriverSQLite {
		// single writer
		sqlDB, _ := db.DB()
		sqlDB.SetMaxOpenConns(1)
	}
	applog.Info("gorm: connected", "driver", c.DBDriver)
	return db, nil
}

// OpenGormWithDialector opens, tunes the pool and pings. The ping is explicit
// so an unreachable database fails here rather than on first query.
func OpenGormWithDialector(dial gorm.Dialector, level logger.LogLevel) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:               logger.Default.LogMode(level),
		DisableAutomaticPing: true,
		TranslateError:       true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

func GormLogLevel(s string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info", "debug":
		return logger.Info
	default:
		return logger.Warn
	}
}
