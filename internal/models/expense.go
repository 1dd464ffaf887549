package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a row in the expenses table.
type Expense struct {
	ExpenseID string          `db:"expense_id"`
	Amount    decimal.Decimal `db:"amount"`
	Reason    string          `db:"reason"`
	Date      time.Time       `db:"date"`
	CreatedAt time.Time       `db:"created_at"`
}
