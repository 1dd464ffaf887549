package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyFee represents a row in the monthly_fees table. MemberName is only
// populated by queries joining members.
type MonthlyFee struct {
	FeeID      string          `db:"fee_id"`
	MemberID   string          `db:"member_id"`
	MemberName string          `db:"-"`
	Month      int             `db:"month"`
	Year       int             `db:"year"`
	Amount     decimal.Decimal `db:"amount"`
	IsPaid     bool            `db:"is_paid"`
	PaidDate   *time.Time      `db:"paid_date"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}
