package pipeline

import (
	"math"
	"strconv"

	"go.uber.org/zap"

	"github.com/courtdata/statline/internal/model"
	"github.com/courtdata/statline/pkg/tabular"
)

// requiredColumns is the header contract, in canonical order. Extra columns
// in a source are ignored.
var requiredColumns = []string{"Name", "Points", "Assists", "Rebounds", "Steals", "Turnovers"}

// metricColumns maps metric identifiers to their source column names.
var metricColumns = map[string]string{
	model.MetricPoints:    "Points",
	model.MetricAssists:   "Assists",
	model.MetricRebounds:  "Rebounds",
	model.MetricSteals:    "Steals",
	model.MetricTurnovers: "Turnovers",
}

// ValidatedBatch is the output of table validation: the clean records plus
// everything that was sanitized or dropped along the way.
type ValidatedBatch struct {
	Records  []model.PlayerRecord
	Warnings []model.Warning
	Skipped  []model.SkippedRow
}

// ValidateTable checks the header contract and normalizes every data row
// into a PlayerRecord. Rows without a name are skipped; metric cells that
// are missing, unparseable, or non-finite default to 0, and negative values
// clip to 0, each with a warning. Validating already-clean data is a no-op:
// same records back, no warnings.
func ValidateTable(tbl *tabular.Table) (*ValidatedBatch, error) {
	colIdx := tbl.ColumnIndex()

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := colIdx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, NewSchemaError(tbl.Source, missing)
	}

	out := &ValidatedBatch{}
	for i, row := range tbl.Rows {
		rowNum := i + 1 // 1-based, header excluded

		name := tabular.Field(row, colIdx, "Name")
		if name == "" {
			out.Skipped = append(out.Skipped, model.SkippedRow{Row: rowNum, Reason: model.ReasonNoName})
			continue
		}

		rec := model.PlayerRecord{Row: rowNum, Name: name}

		takeMetric := func(metric string) float64 {
			raw := tabular.Field(row, colIdx, metricColumns[metric])
			v, reason := sanitizeMetric(raw)
			if reason != "" {
				out.Warnings = append(out.Warnings, model.Warning{
					Row:    rowNum,
					Player: name,
					Field:  metric,
					Value:  raw,
					Reason: reason,
				})
			}
			return v
		}

		rec.Points = takeMetric(model.MetricPoints)
		rec.Assists = takeMetric(model.MetricAssists)
		rec.Rebounds = takeMetric(model.MetricRebounds)
		rec.Steals = takeMetric(model.MetricSteals)
		rec.Turnovers = takeMetric(model.MetricTurnovers)

		out.Records = append(out.Records, rec)
	}

	if len(out.Skipped) > 0 || len(out.Warnings) > 0 {
		zap.L().Debug("validate: table sanitized",
			zap.String("source", tbl.Source),
			zap.Int("records", len(out.Records)),
			zap.Int("skipped", len(out.Skipped)),
			zap.Int("warnings", len(out.Warnings)),
		)
	}

	return out, nil
}

// sanitizeMetric parses a raw metric cell. It returns the cleaned value and
// a warning reason, or "" when the cell was already valid. Zero is valid;
// negative zero passes through as zero.
func sanitizeMetric(raw string) (float64, string) {
	if raw == "" {
		return 0, model.ReasonDefaulted
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, model.ReasonDefaulted
	}
	if v < 0 {
		return 0, model.ReasonClipped
	}
	if v == 0 {
		// Normalizes -0 so it can never surface in output.
		return 0, ""
	}
	return v, ""
}
