package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRange is a closed day-granularity interval. From is normalized to
// start-of-day and To to end-of-day before it reaches the repositories.
type DateRange struct {
	From time.Time
	To   time.Time
}

// FundSummary holds the top-line treasury figures, with income broken down by
// source. Balance is TotalIncome minus TotalExpense and may be negative.
type FundSummary struct {
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	MonthlyFeesIncome decimal.Decimal `json:"monthlyFeesIncome"`
	PenaltiesIncome   decimal.Decimal `json:"penaltiesIncome"`
	TotalExpense      decimal.Decimal `json:"totalExpense"`
	Balance           decimal.Decimal `json:"balance"`
}
