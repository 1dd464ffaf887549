package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/clubfundhq/clubfund_backend/internal/apperrors"
	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	portsrepo "github.com/clubfundhq/clubfund_backend/internal/core/ports/repositories"
	portssvc "github.com/clubfundhq/clubfund_backend/internal/core/ports/services"
	"github.com/clubfundhq/clubfund_backend/internal/dto"
	"github.com/google/uuid"
)

// expenseService implements the ExpenseSvcFacade interface.
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepository
}

// ExpenseServiceOption is a functional option for configuring the service.
type ExpenseServiceOption func(*expenseService)

// WithExpenseClock sets the clock used for timestamps and date defaults.
func WithExpenseClock(clock func() time.Time) ExpenseServiceOption {
	return func(s *expenseService) {
		s.clock = clock
	}
}

// NewExpenseService creates a new expense service with the provided options.
func NewExpenseService(repo portsrepo.ExpenseRepository, options ...ExpenseServiceOption) portssvc.ExpenseSvcFacade {
	svc := &expenseService{expenseRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure expenseService implements the ExpenseSvcFacade interface
var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.FindExpenses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, fmt.Errorf("reason is required: %w", apperrors.ErrValidation)
	}

	now := s.Now()
	date := now
	if req.Date != nil {
		date = *req.Date
	}

	expense := domain.Expense{
		ExpenseID: uuid.NewString(),
		Amount:    req.Amount,
		Reason:    reason,
		Date:      date,
		CreatedAt: now,
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("reason", reason))
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.LogInfo(ctx, "Expense created",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("amount", expense.Amount.String()))
	return &expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		return err
	}
	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}
