package pipeline

import (
	"github.com/courtdata/statline/internal/model"
)

// Summarize reduces a ranked batch to its summary statistics. The input is
// in rank order, so max is the first score and min the last. Metric leaders
// break ties toward the record that appeared first in the source, not the
// one that ranked higher. An empty batch returns a zero summary with
// HasData() == false; it never errors.
func Summarize(records []model.RankedRecord) model.BatchSummary {
	if len(records) == 0 {
		return model.BatchSummary{}
	}

	var sum float64
	for _, r := range records {
		sum += r.Score
	}

	summary := model.BatchSummary{
		Count:        len(records),
		AverageScore: sum / float64(len(records)),
		MaxScore:     records[0].Score,
		MinScore:     records[len(records)-1].Score,
		TopPerformer: records[0].Name,
		Leaders:      make(map[string]string, len(model.MetricNames())),
		Metrics:      make(map[string]model.MetricStats, len(model.MetricNames())),
	}

	for _, metric := range model.MetricNames() {
		var (
			leader    string
			leaderVal float64
			leaderRow int
			minVal    float64
			maxVal    float64
			metricSum float64
		)

		for i, r := range records {
			v := r.Metric(metric)
			metricSum += v

			if i == 0 {
				leader, leaderVal, leaderRow = r.Name, v, r.Row
				minVal, maxVal = v, v
				continue
			}
			if v > leaderVal || (v == leaderVal && r.Row < leaderRow) {
				leader, leaderVal, leaderRow = r.Name, v, r.Row
			}
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}

		summary.Leaders[metric] = leader
		summary.Metrics[metric] = model.MetricStats{
			Min:  minVal,
			Max:  maxVal,
			Mean: metricSum / float64(len(records)),
		}
	}

	return summary
}
