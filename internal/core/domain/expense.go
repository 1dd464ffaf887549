package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a club-level expenditure not attributed to any member.
type Expense struct {
	ExpenseID string          `json:"expenseID"` // Primary Key (UUID)
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
}
