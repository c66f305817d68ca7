package database

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fintrack/fintrack-api/internal/infrastructure/config"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config represents database configuration
type Config struct {
	Driver             string
	Host               string
	Port               int
	Username           string
	Password           string
	Database           string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	QueryTimeout       time.Duration
	RetryAttempts      int
	RetryDelay         time.Duration
	SlowQueryThreshold time.Duration
	LogLevel           string
	AutoMigrate        bool
	SeedDemo           bool
}

// FromAppConfig adapts the application configuration to database configuration
func FromAppConfig(conf *config.Config) *Config {
	db := conf.Database
	return &Config{
		Driver:             db.Driver,
		Host:               db.Host,
		Port:               ParsePort(db.Port, defaultPort(db.Driver)),
		Username:           db.Username,
		Password:           db.Password,
		Database:           db.Database,
		SSLMode:            db.SSLMode,
		MaxOpenConns:       db.MaxOpenConns,
		MaxIdleConns:       db.MaxIdleConns,
		ConnMaxLifetime:    db.ConnMaxLifetime,
		ConnMaxIdleTime:    db.ConnMaxIdleTime,
		QueryTimeout:       db.QueryTimeout,
		RetryAttempts:      db.RetryAttempts,
		RetryDelay:         db.RetryDelay,
		SlowQueryThreshold: db.SlowQueryThreshold,
		LogLevel:           conf.Logger.Level,
		AutoMigrate:        db.AutoMigrate,
		SeedDemo:           db.SeedDemo,
	}
}

func defaultPort(driver string) int {
	if driver == DriverMySQL {
		return 3306
	}
	return 5432
}

// ParsePort converts a port string to an int, returning fallback when it is unset or invalid
func ParsePort(port string, fallback int) int {
	p, err := strconv.Atoi(port)
	if err != nil || p <= 0 || p > 65535 {
		return fallback
	}
	return p
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Host == "" {
		return errors.New("database host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}
	if c.Username == "" {
		return errors.New("database username is required")
	}
	if c.Database == "" {
		return errors.New("database name is required")
	}

	switch c.Driver {
	case DriverPostgres:
		validSSLModes := map[string]bool{
			"disable":     true,
			"require":     true,
			"verify-ca":   true,
			"verify-full": true,
			"prefer":      true,
		}
		if !validSSLModes[c.SSLMode] {
			return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
		}
	case DriverMySQL:
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("max idle connections must be non-negative, got: %d", c.MaxIdleConns)
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry attempts must be non-negative, got: %d", c.RetryAttempts)
	}
	return nil
}

// DSN returns the connection string for the configured driver
func (c *Config) DSN() string {
	if c.Driver == DriverMySQL {
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.Username, c.Password, c.Host, c.Port, c.Database,
		)
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}
