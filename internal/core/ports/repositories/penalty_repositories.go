package repositories

import (
	"context"
	"time"

	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
)

// PenaltyFilter narrows penalty listings. When Day is set, only penalties
// dated within that calendar day are returned.
type PenaltyFilter struct {
	Day *time.Time
}

// PenaltyRepository defines persistence operations for penalties.
type PenaltyRepository interface {
	// SavePenalty inserts a new penalty.
	SavePenalty(ctx context.Context, penalty domain.Penalty) error

	// FindPenaltyByID returns a penalty (with member name) or apperrors.ErrNotFound.
	FindPenaltyByID(ctx context.Context, penaltyID string) (*domain.Penalty, error)

	// FindPenalties returns penalties matching the filter, joined with member
	// names, ordered by date descending.
	FindPenalties(ctx context.Context, filter PenaltyFilter) ([]domain.Penalty, error)

	// FindUnpaidPenalties returns all unpaid penalties joined with member
	// names, ordered by date descending.
	FindUnpaidPenalties(ctx context.Context) ([]domain.Penalty, error)

	// FindPaidPenaltiesInRange returns paid penalties whose paid date falls in
	// the range, joined with member names, ordered by paid date descending.
	FindPaidPenaltiesInRange(ctx context.Context, rng domain.DateRange) ([]domain.Penalty, error)

	// MarkPenaltyPayment updates the paid flag and paid date of a penalty, or
	// returns apperrors.ErrNotFound.
	MarkPenaltyPayment(ctx context.Context, penaltyID string, isPaid bool, paidDate *time.Time, updatedAt time.Time) error

	// DeletePenalty removes a penalty or returns apperrors.ErrNotFound.
	DeletePenalty(ctx context.Context, penaltyID string) error
}
