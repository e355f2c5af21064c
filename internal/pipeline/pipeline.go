// Package pipeline implements the player stats batch pipeline: validate raw
// rows, score them, rank and tier them, and summarize the batch. A run is
// synchronous and self-contained; concurrent runs never share state.
package pipeline

import (
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/courtdata/statline/internal/config"
	"github.com/courtdata/statline/internal/model"
	"github.com/courtdata/statline/pkg/tabular"
)

// Result is the complete output of one pipeline run over a single batch.
type Result struct {
	RunID    string               `json:"run_id"`
	Source   string               `json:"source"`
	Records  []model.RankedRecord `json:"records"`
	Summary  model.BatchSummary   `json:"summary"`
	Warnings []model.Warning      `json:"warnings,omitempty"`
	Skipped  []model.SkippedRow   `json:"skipped,omitempty"`
}

// Run executes the pipeline over a parsed table: validate, score, rank,
// summarize. A schema failure rejects the whole batch; sanitized fields and
// skipped rows are carried in the Result, not raised.
func Run(tbl *tabular.Table, scoring config.ScoringConfig) (*Result, error) {
	runID := uuid.NewString()

	validated, err := ValidateTable(tbl)
	if err != nil {
		return nil, eris.Wrapf(err, "pipeline: validate %s", tbl.Source)
	}

	for _, w := range validated.Warnings {
		zap.L().Warn("pipeline: field sanitized",
			zap.String("run_id", runID),
			zap.Int("row", w.Row),
			zap.String("player", w.Player),
			zap.String("field", w.Field),
			zap.String("reason", w.Reason),
		)
	}
	for _, s := range validated.Skipped {
		zap.L().Warn("pipeline: row skipped",
			zap.String("run_id", runID),
			zap.Int("row", s.Row),
			zap.String("reason", s.Reason),
		)
	}

	scored := ScoreRecords(validated.Records, scoring.Weights)
	ranked := RankRecords(scored, scoring.Tiers)
	summary := Summarize(ranked)

	zap.L().Info("pipeline: batch complete",
		zap.String("run_id", runID),
		zap.String("source", tbl.Source),
		zap.Int("players_ranked", summary.Count),
		zap.Int("rows_skipped", len(validated.Skipped)),
		zap.Int("fields_sanitized", len(validated.Warnings)),
	)

	return &Result{
		RunID:    runID,
		Source:   tbl.Source,
		Records:  ranked,
		Summary:  summary,
		Warnings: validated.Warnings,
		Skipped:  validated.Skipped,
	}, nil
}

// RunFile reads a source file and executes the pipeline on it.
func RunFile(path string, opts tabular.Options, scoring config.ScoringConfig) (*Result, error) {
	tbl, err := tabular.Read(path, opts)
	if err != nil {
		return nil, eris.Wrapf(err, "pipeline: read source %s", path)
	}
	return Run(tbl, scoring)
}
