package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/domain/port/persistence"
	"github.com/fintrack/fintrack-api/internal/domain/port/security"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/database/migration"
)

const poolMonitorInterval = 30 * time.Second

// Manager owns the database handle and its lifecycle
type Manager struct {
	config       *Config
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	monitor      *ConnectionPoolMonitor
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

func (m *Manager) dialector() (gorm.Dialector, error) {
	switch m.config.Driver {
	case DriverPostgres:
		return postgres.Open(m.config.DSN()), nil
	case DriverMySQL:
		return mysql.Open(m.config.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}
}

// Connect opens the database, retrying with backoff until it answers a ping
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, err
	}
	dialector, err := m.dialector()
	if err != nil {
		return nil, err
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	})

	var gormDB *gorm.DB
	retryAll := func(error) bool { return true }
	err = Retry(ctx, connectRetryConfig(m.config), m.logger, retryAll, func(ctx context.Context) error {
		db, err := gorm.Open(dialector, &gorm.Config{
			Logger: NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel, m.config.SlowQueryThreshold),
			NowFunc: func() time.Time {
				return m.timeProvider.Now().UTC()
			},
			TranslateError: true,
		})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return err
		}
		gormDB = db
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", m.config.RetryAttempts, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	m.db = gormDB
	m.monitor = NewConnectionPoolMonitor(sqlDB, m.logger)
	m.monitor.Start(poolMonitorInterval)

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":         m.config.Driver,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
		"query_timeout":  m.config.QueryTimeout.String(),
	})
	return m.db, nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// UnitOfWork returns a unit of work bound to the managed handle
func (m *Manager) UnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger)
}

// Migrate brings the schema up to date and seeds demo data when configured
func (m *Manager) Migrate(ctx context.Context, hasher security.PasswordHasher) error {
	if m.db == nil {
		return errors.New("database not connected")
	}
	if m.config.AutoMigrate {
		if err := migration.NewMigrationManager(m.db, m.logger, m.timeProvider).MigrateAll(ctx); err != nil {
			return err
		}
	}
	if m.config.SeedDemo {
		return migration.SeedDemo(ctx, m.db, hasher, m.timeProvider, m.logger)
	}
	return nil
}

// Health pings the database and returns the current pool statistics
func (m *Manager) Health(ctx context.Context) (PoolStats, error) {
	if m.db == nil {
		return PoolStats{}, errors.New("database not connected")
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return PoolStats{}, err
	}
	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return PoolStats{}, err
	}
	return poolStatsOf(sqlDB.Stats()), nil
}

// WithTimeout bounds ctx by the configured query timeout
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.config.QueryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

// Close stops pool monitoring and closes the connection
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}
	m.logger.Info("Closing database connection", nil)

	if m.monitor != nil {
		m.monitor.Stop()
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}
