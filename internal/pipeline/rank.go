package pipeline

import (
	"sort"

	"github.com/courtdata/statline/internal/config"
	"github.com/courtdata/statline/internal/model"
)

// RankRecords orders scored records best-first and assigns ranks and tiers.
// The sort is stable, so tied scores keep their input order and every rank
// 1..N is distinct. Tiers are assigned in a second pass once the batch
// average is known, so every record is classified against the same value.
func RankRecords(records []model.ScoredRecord, cutoffs config.TierCutoffs) []model.RankedRecord {
	if len(records) == 0 {
		return []model.RankedRecord{}
	}

	ranked := make([]model.RankedRecord, len(records))
	for i, rec := range records {
		ranked[i] = model.RankedRecord{ScoredRecord: rec}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	var sum float64
	for i := range ranked {
		ranked[i].Rank = i + 1
		sum += ranked[i].Score
	}
	avg := sum / float64(len(ranked))

	for i := range ranked {
		ranked[i].Tier = tierFor(ranked[i].Score, avg, cutoffs)
	}

	return ranked
}

// tierFor classifies a score against the batch average. Bounds are checked
// top-down and are inclusive, so a score exactly on a cutoff takes the
// higher tier. The arithmetic applies unchanged when the average is zero or
// negative.
func tierFor(score, avg float64, c config.TierCutoffs) model.Tier {
	switch {
	case score >= c.Elite*avg:
		return model.TierElite
	case score >= c.Strong*avg:
		return model.TierStrong
	case score >= c.Average*avg:
		return model.TierAverage
	default:
		return model.TierDeveloping
	}
}
