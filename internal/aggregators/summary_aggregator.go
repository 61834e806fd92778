package aggregators

import (
	"attempt-stats/internal/models"
)

//go:generate mockgen -source=summary_aggregator.go -destination=./mocks/summary_aggregator_mock.go -package=mocks
type SummaryAggregator interface {
	// Aggregate reduces a batch of normalized records to its summary counters.
	Aggregate(records []models.NormalizedRecord) models.AggregateSummary
}

type summaryAggregator struct{}

func NewSummaryAggregator() SummaryAggregator {
	return &summaryAggregator{}
}

func (a *summaryAggregator) Aggregate(records []models.NormalizedRecord) models.AggregateSummary {
	return Aggregate(records)
}

// Aggregate counts attempts, successful attempts and distinct user ids.
// An attempt is successful only when is_correct is true; null counts as unsuccessful.
func Aggregate[T models.Attempt](records []T) models.AggregateSummary {
	users := make(map[string]struct{}, len(records))
	summary := models.AggregateSummary{}
	for _, record := range records {
		summary.TotalAttempts++
		if record.Successful() {
			summary.SuccessfulAttempts++
		}
		users[record.AttemptUserID()] = struct{}{}
	}
	summary.UniqueUsers = len(users)
	return summary
}
