package rollover

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	mockcore "github.com/fintrack/fintrack-api/mocks/port/core"
	mockusecase "github.com/fintrack/fintrack-api/mocks/port/usecase"
)

func newSchedulerMocks(t *testing.T, now time.Time) (*mockusecase.MockRolloverUseCase, *mockcore.MockTimeProvider, *mockcore.MockLogger) {
	rollover := mockusecase.NewMockRolloverUseCase(t)
	mockTime := mockcore.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(now).Maybe()
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Return().Maybe()
	return rollover, mockTime, mockLogger
}

func TestScheduler_Run(t *testing.T) {
	t.Run("Runs on the last day of the month", func(t *testing.T) {
		rollover, mockTime, mockLogger := newSchedulerMocks(t, time.Date(2025, 3, 31, 22, 0, 0, 0, time.UTC))
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		rollover.EXPECT().RunForAll(mock.Anything, march).
			RunAndReturn(func(ctx context.Context, m entity.Month) (*entity.RolloverSummary, error) {
				cancel()
				return &entity.RolloverSummary{Month: m}, nil
			}).Once()

		NewScheduler(rollover, time.Hour, mockTime, mockLogger).Run(ctx)
	})

	t.Run("Idle on other days", func(t *testing.T) {
		rollover, mockTime, mockLogger := newSchedulerMocks(t, time.Date(2025, 3, 30, 22, 0, 0, 0, time.UTC))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		NewScheduler(rollover, time.Hour, mockTime, mockLogger).Run(ctx)
		rollover.AssertNotCalled(t, "RunForAll", mock.Anything, mock.Anything)
	})
}
