package pipeline

import (
	"github.com/courtdata/statline/internal/config"
	"github.com/courtdata/statline/internal/model"
)

// ComputeScore combines a player's metrics into a single performance score
// using the configured weights. The score is a plain weighted sum at full
// float64 precision; turnovers usually carry a negative weight, so the
// result can go below zero. Rounding is left to the export boundary.
func ComputeScore(rec model.PlayerRecord, w config.Weights) float64 {
	return w.Points*rec.Points +
		w.Assists*rec.Assists +
		w.Rebounds*rec.Rebounds +
		w.Steals*rec.Steals +
		w.Turnovers*rec.Turnovers
}

// ScoreRecords scores every record with the same weights, preserving input
// order. Re-scoring the same records always yields the same scores.
func ScoreRecords(records []model.PlayerRecord, w config.Weights) []model.ScoredRecord {
	scored := make([]model.ScoredRecord, len(records))
	for i, rec := range records {
		scored[i] = model.ScoredRecord{
			PlayerRecord: rec,
			Score:        ComputeScore(rec, w),
		}
	}
	return scored
}
