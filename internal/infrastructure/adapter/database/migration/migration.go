package migration

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/model"
)

// Step is one versioned schema change. Versions are applied in slice order.
type Step struct {
	Version     string
	Description string
	Up          func(tx *gorm.DB) error
}

// MigrationManager applies pending steps and records them in schema_migrations
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	steps        []Step
}

// NewMigrationManager creates a migration manager with the built-in steps
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	indexes := NewIndexManager(logger)
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		steps: []Step{
			{
				Version:     "1.0.0",
				Description: "base schema",
				Up: func(tx *gorm.DB) error {
					return tx.AutoMigrate(model.All()...)
				},
			},
			{
				Version:     "1.1.0",
				Description: "reporting indexes",
				Up:          indexes.CreateIndexes,
			},
			{
				Version:     "1.2.0",
				Description: "driver specific indexes",
				Up:          indexes.CreateDriverIndexes,
			},
		},
	}
}

// WithSteps replaces the step list. Used by tests and one-off tools.
func (m *MigrationManager) WithSteps(steps ...Step) *MigrationManager {
	m.steps = steps
	return m
}

// MigrateAll applies every step not yet recorded
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	db := m.db.WithContext(ctx)

	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{"error": err})
		return err
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return err
	}

	pending := 0
	for _, step := range m.steps {
		if applied[step.Version] {
			continue
		}
		pending++
		if err := m.apply(ctx, step); err != nil {
			return err
		}
	}

	current, err := m.CurrentVersion(ctx)
	if err != nil {
		return err
	}
	m.logger.Info("Database schema up to date", map[string]any{
		"version": current,
		"applied": pending,
	})
	return nil
}

func (m *MigrationManager) apply(ctx context.Context, step Step) error {
	m.logger.Info("Applying migration", map[string]any{
		"version":     step.Version,
		"description": step.Description,
	})

	start := m.timeProvider.Now()
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := step.Up(tx); err != nil {
			return err
		}
		return tx.Create(&model.MigrationVersion{
			Version:     step.Version,
			Description: step.Description,
			AppliedAt:   m.timeProvider.Now().UTC(),
			DurationMs:  m.timeProvider.Since(start).Std().Milliseconds(),
		}).Error
	})
	if err != nil {
		m.logger.Error("Migration failed", map[string]any{
			"version": step.Version,
			"error":   err,
		})
		return fmt.Errorf("migration %s: %w", step.Version, err)
	}
	return nil
}

func (m *MigrationManager) appliedVersions(ctx context.Context) (map[string]bool, error) {
	var versions []string
	if err := m.db.WithContext(ctx).Model(&model.MigrationVersion{}).Pluck("version", &versions).Error; err != nil {
		return nil, err
	}
	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}
	return applied, nil
}

// CurrentVersion returns the most recently applied version, or "" on an empty schema
func (m *MigrationManager) CurrentVersion(ctx context.Context) (string, error) {
	var version model.MigrationVersion
	err := m.db.WithContext(ctx).Order("applied_at desc, id desc").First(&version).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return version.Version, nil
}
