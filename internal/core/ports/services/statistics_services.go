package services

import (
	"context"
	"time"

	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
)

// StatisticsSvcFacade produces the scoped summary plus itemized transactions
// for a date range. Unlike the fund service, from > to is not an error here:
// it simply yields empty results, which keeps UI date pickers forgiving.
type StatisticsSvcFacade interface {
	// Report computes the summary and itemized lists for [from, to].
	Report(ctx context.Context, from, to time.Time) (*domain.StatisticsReport, error)
}
