package model

// Metric identifiers for the five tracked stat categories.
const (
	MetricPoints    = "points"
	MetricAssists   = "assists"
	MetricRebounds  = "rebounds"
	MetricSteals    = "steals"
	MetricTurnovers = "turnovers"
)

// MetricNames returns the tracked metrics in canonical column order.
func MetricNames() []string {
	return []string{MetricPoints, MetricAssists, MetricRebounds, MetricSteals, MetricTurnovers}
}

// PlayerRecord is a single player's validated stat line. All metrics are
// finite and non-negative once validation has run. Row is the 1-based data
// row the record came from (header excluded), kept for warning references
// and input-order tie-breaking.
type PlayerRecord struct {
	Row       int     `json:"row"`
	Name      string  `json:"name"`
	Points    float64 `json:"points"`
	Assists   float64 `json:"assists"`
	Rebounds  float64 `json:"rebounds"`
	Steals    float64 `json:"steals"`
	Turnovers float64 `json:"turnovers"`
}

// Metric returns the value of the named metric. Unknown names return 0.
func (r PlayerRecord) Metric(name string) float64 {
	switch name {
	case MetricPoints:
		return r.Points
	case MetricAssists:
		return r.Assists
	case MetricRebounds:
		return r.Rebounds
	case MetricSteals:
		return r.Steals
	case MetricTurnovers:
		return r.Turnovers
	default:
		return 0
	}
}

// ScoredRecord is a PlayerRecord with its computed performance score.
// Score is kept at full float64 precision; rounding happens only at the
// export boundary.
type ScoredRecord struct {
	PlayerRecord
	Score float64 `json:"score"`
}

// RankedRecord is a ScoredRecord with its batch rank and tier. Rank 1 is the
// best score; tied scores get distinct sequential ranks in input order.
type RankedRecord struct {
	ScoredRecord
	Rank int  `json:"rank"`
	Tier Tier `json:"tier"`
}
