package domain

// BulkGenerationResult reports the outcome of a bulk monthly fee generation run.
// Total is the number of active members considered; Created + Skipped == Total.
type BulkGenerationResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Total   int `json:"total"`
}

// StatisticsReport combines the scoped fund summary with the itemized
// transactions contributing to it. Each list is sorted by its relevant date
// descending (paidDate for fees and penalties, date for expenses).
type StatisticsReport struct {
	Summary     FundSummary  `json:"summary"`
	MonthlyFees []MonthlyFee `json:"monthlyFees"`
	Penalties   []Penalty    `json:"penalties"`
	Expenses    []Expense    `json:"expenses"`
}
