package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Penalty represents a row in the penalties table. MemberName is only
// populated by queries joining members.
type Penalty struct {
	PenaltyID  string          `db:"penalty_id"`
	MemberID   string          `db:"member_id"`
	MemberName string          `db:"-"`
	Date       time.Time       `db:"date"`
	Amount     decimal.Decimal `db:"amount"`
	Reason     *string         `db:"reason"`
	IsPaid     bool            `db:"is_paid"`
	PaidDate   *time.Time      `db:"paid_date"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}
