package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyFee represents a recurring due owed by a member for a given month/year.
// PaidDate is set iff IsPaid is true.
type MonthlyFee struct {
	FeeID      string          `json:"feeID"` // Primary Key (UUID)
	MemberID   string          `json:"memberID"`
	MemberName string          `json:"memberName,omitempty"` // Populated when loaded with the member join
	Month      int             `json:"month"`                // 1-12
	Year       int             `json:"year"`
	Amount     decimal.Decimal `json:"amount"`
	IsPaid     bool            `json:"isPaid"`
	PaidDate   *time.Time      `json:"paidDate,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
