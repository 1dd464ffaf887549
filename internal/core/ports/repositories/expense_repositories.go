package repositories

import (
	"context"

	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
)

// ExpenseRepository defines persistence operations for expenses.
type ExpenseRepository interface {
	// SaveExpense inserts a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// FindExpenses returns all expenses ordered by date descending.
	FindExpenses(ctx context.Context) ([]domain.Expense, error)

	// FindExpensesInRange returns expenses dated within the range, ordered by
	// date descending.
	FindExpensesInRange(ctx context.Context, rng domain.DateRange) ([]domain.Expense, error)

	// DeleteExpense removes an expense or returns apperrors.ErrNotFound.
	DeleteExpense(ctx context.Context, expenseID string) error
}
