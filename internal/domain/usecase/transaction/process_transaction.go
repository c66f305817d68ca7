package transaction

import (
	"context"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	"github.com/fintrack/fintrack-api/internal/domain/port/persistence"
)

// processCreate checks the expense veto and inserts tx in one database
// transaction. It runs on the owner's write queue, so no other write of the
// same user can slip between the balance read and the insert.
func (s *Service) processCreate(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error) {
	err := persistence.WithinTransaction(ctx, s.uow, func(txCtx context.Context) error {
		repo := s.uow.GetTransactionRepository(txCtx)

		if tx.IsExpense() {
			month := entity.MonthOf(s.timeProvider.Now())
			totals, err := repo.SumByType(txCtx, tx.UserID, month.Window())
			if err != nil {
				return wrapStep("sum current month", err)
			}
			if !totals.CanAfford(tx.Amount) {
				s.logger.Debug("Expense rejected by balance check", map[string]any{
					"user_id": tx.UserID,
					"amount":  entity.FormatAmount(tx.Amount),
					"balance": entity.FormatAmount(totals.Balance()),
				})
				return errs.NewInsufficientBalanceError(tx.UserID,
					entity.FormatAmount(tx.Amount), entity.FormatAmount(totals.Balance()))
			}
		}

		if err := repo.Create(txCtx, tx); err != nil {
			return wrapStep("insert transaction", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}
