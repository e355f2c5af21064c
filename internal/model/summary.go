package model

// MetricStats holds the per-metric spread for a batch.
type MetricStats struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

// BatchSummary aggregates one scored batch. Leaders maps each metric to the
// name of the player with the highest raw value for it; ties go to the
// player who appeared first in the input.
type BatchSummary struct {
	Count        int                    `json:"count"`
	AverageScore float64                `json:"average_score"`
	MaxScore     float64                `json:"max_score"`
	MinScore     float64                `json:"min_score"`
	TopPerformer string                 `json:"top_performer,omitempty"`
	Leaders      map[string]string      `json:"leaders,omitempty"`
	Metrics      map[string]MetricStats `json:"metrics,omitempty"`
}

// HasData reports whether the batch contained any ranked records. Callers
// render a "no data" message instead of the summary when this is false.
func (s BatchSummary) HasData() bool {
	return s.Count > 0
}
