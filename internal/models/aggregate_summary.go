package models

// AggregateSummary is the per-batch reduction of attempt records.
// Invariant: UniqueUsers <= TotalAttempts and SuccessfulAttempts <= TotalAttempts.
type AggregateSummary struct {
	TotalAttempts      int `json:"total_attempts"`
	SuccessfulAttempts int `json:"successful_attempts"`
	UniqueUsers        int `json:"unique_users"`
}

// SummaryEntry is one named counter of a summary.
type SummaryEntry struct {
	Name  string
	Value int
}

// Entries returns the counters in a fixed order, for row-oriented sinks.
func (s AggregateSummary) Entries() []SummaryEntry {
	return []SummaryEntry{
		{Name: "total_attempts", Value: s.TotalAttempts},
		{Name: "successful_attempts", Value: s.SuccessfulAttempts},
		{Name: "unique_users", Value: s.UniqueUsers},
	}
}
