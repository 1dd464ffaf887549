package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnpaidFee is a single unpaid monthly fee line item in a member's debt breakdown.
type UnpaidFee struct {
	FeeID  string          `json:"feeID"`
	Month  int             `json:"month"`
	Year   int             `json:"year"`
	Amount decimal.Decimal `json:"amount"`
}

// UnpaidPenalty is a single unpaid penalty line item in a member's debt breakdown.
type UnpaidPenalty struct {
	PenaltyID string          `json:"penaltyID"`
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason,omitempty"`
}

// MemberDebt aggregates everything a single member currently owes.
// Invariant: TotalDebt = MonthlyFeesDebt + PenaltiesDebt.
type MemberDebt struct {
	MemberID          string          `json:"memberID"`
	MemberName        string          `json:"memberName"`
	MonthlyFeesDebt   decimal.Decimal `json:"monthlyFeesDebt"`
	PenaltiesDebt     decimal.Decimal `json:"penaltiesDebt"`
	TotalDebt         decimal.Decimal `json:"totalDebt"`
	UnpaidMonthlyFees []UnpaidFee     `json:"unpaidMonthlyFees"`
	UnpaidPenalties   []UnpaidPenalty `json:"unpaidPenalties"`
}

// DebtSummary holds club-wide debt totals across all indebted members.
type DebtSummary struct {
	TotalMonthlyFeesDebt decimal.Decimal `json:"totalMonthlyFeesDebt"`
	TotalPenaltiesDebt   decimal.Decimal `json:"totalPenaltiesDebt"`
	TotalDebt            decimal.Decimal `json:"totalDebt"`
	TotalMembers         int             `json:"totalMembers"`
}

// DebtReport is the full per-member debt breakdown plus the club-wide summary.
// Debts is sorted by TotalDebt descending; members with no unpaid items are
// omitted entirely.
type DebtReport struct {
	Summary DebtSummary  `json:"summary"`
	Debts   []MemberDebt `json:"debts"`
}
