// Command rollover closes a month for every user and exits non-zero when any close fails.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	cacheport "github.com/fintrack/fintrack-api/internal/domain/port/cache"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	rolloverUseCase "github.com/fintrack/fintrack-api/internal/domain/usecase/rollover"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/cache"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/database"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/logger"
	timeProvider "github.com/fintrack/fintrack-api/internal/infrastructure/adapter/time"
	"github.com/fintrack/fintrack-api/internal/infrastructure/config"
)

func main() {
	monthFlag := flag.String("month", "", "month to close as YYYY-MM (default: latest ended month)")
	quiet := flag.Bool("quiet", false, "only print the summary")
	flag.Parse()

	if err := run(*monthFlag, *quiet); err != nil {
		fmt.Fprintln(os.Stderr, "rollover:", err)
		os.Exit(1)
	}
}

func run(monthFlag string, quiet bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appLogger, err := newLogger(cfg, quiet)
	if err != nil {
		return err
	}

	tp, err := timeProvider.NewRealTimeProvider(cfg.Server.Timezone)
	if err != nil {
		return err
	}

	month, err := targetMonth(monthFlag, tp)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer dbManager.Close()

	var reportCache cacheport.Cache = cache.NoopCache{}
	if cfg.Cache.Enabled {
		redisCache, err := cache.NewRedisCache(ctx, cache.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		}, appLogger)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer redisCache.Close()
		reportCache = redisCache
	}

	rollover := rolloverUseCase.NewRolloverUseCase(dbManager.UnitOfWork(), reportCache, tp, appLogger)

	summary, err := rollover.RunForAll(ctx, month)
	if err != nil {
		return err
	}

	fmt.Printf("month=%s closed=%d skipped=%d failed=%d\n", summary.Month, summary.Closed, summary.Skipped, summary.Failed)
	if summary.Failed > 0 {
		return fmt.Errorf("%d users failed to close %s", summary.Failed, summary.Month)
	}
	return nil
}

func newLogger(cfg *config.Config, quiet bool) (coreport.Logger, error) {
	if quiet {
		return logger.NewNoopLogger(), nil
	}
	return logger.NewZapLogger(logger.Options{
		Production: cfg.Logger.Production,
		Level:      cfg.Logger.Level,
	})
}

// targetMonth parses the flag. The default is the latest ended month: the
// current one on its last day, otherwise the one before.
func targetMonth(flagValue string, tp coreport.TimeProvider) (entity.Month, error) {
	if flagValue == "" {
		now := tp.Now()
		if entity.IsLastDay(now) {
			return entity.MonthOf(now), nil
		}
		return entity.MonthOf(now).AddMonths(-1), nil
	}
	return entity.ParseMonth(flagValue)
}
