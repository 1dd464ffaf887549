package services

import (
	"context"

	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	"github.com/clubfundhq/clubfund_backend/internal/dto"
)

// ExpenseSvcFacade defines operations for managing club expenses.
type ExpenseSvcFacade interface {
	// ListExpenses returns all expenses, newest first.
	ListExpenses(ctx context.Context) ([]domain.Expense, error)

	// CreateExpense records a new expense. Date defaults to the current time.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string) error
}
