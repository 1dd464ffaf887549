package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Penalty represents a one-off fine owed by a member. Multiple penalties per
// member per day are valid; there is no uniqueness constraint.
type Penalty struct {
	PenaltyID  string          `json:"penaltyID"` // Primary Key (UUID)
	MemberID   string          `json:"memberID"`
	MemberName string          `json:"memberName,omitempty"` // Populated when loaded with the member join
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason,omitempty"`
	IsPaid     bool            `json:"isPaid"`
	PaidDate   *time.Time      `json:"paidDate,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
