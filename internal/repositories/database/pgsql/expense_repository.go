package pgsql

import (
	"context"
	"fmt"

	"github.com/clubfundhq/clubfund_backend/internal/apperrors"
	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	portsrepo "github.com/clubfundhq/clubfund_backend/internal/core/ports/repositories"
	"github.com/clubfundhq/clubfund_backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepository {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepository
var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

func toModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID: d.ExpenseID,
		Amount:    d.Amount,
		Reason:    d.Reason,
		Date:      d.Date,
		CreatedAt: d.CreatedAt,
	}
}

func toDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID: m.ExpenseID,
		Amount:    m.Amount,
		Reason:    m.Reason,
		Date:      m.Date,
		CreatedAt: m.CreatedAt,
	}
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := toModelExpense(expense)
	query := `
        INSERT INTO expenses (expense_id, amount, reason, date, created_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.Pool.Exec(ctx, query, m.ExpenseID, m.Amount, m.Reason, m.Date, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenses(ctx context.Context) ([]domain.Expense, error) {
	query := `
        SELECT expense_id, amount, reason, date, created_at
        FROM expenses
        ORDER BY date DESC;
    `
	return r.queryExpenses(ctx, query)
}

func (r *PgxExpenseRepository) FindExpensesInRange(ctx context.Context, rng domain.DateRange) ([]domain.Expense, error) {
	query := `
        SELECT expense_id, amount, reason, date, created_at
        FROM expenses
        WHERE date BETWEEN $1 AND $2
        ORDER BY date DESC;
    `
	return r.queryExpenses(ctx, query, rng.From, rng.To)
}

func (r *PgxExpenseRepository) queryExpenses(ctx context.Context, query string, args ...any) ([]domain.Expense, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		var m models.Expense
		if err := rows.Scan(&m.ExpenseID, &m.Amount, &m.Reason, &m.Date, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, toDomainExpense(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", rows.Err())
	}
	return expenses, nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	query := `DELETE FROM expenses WHERE expense_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
