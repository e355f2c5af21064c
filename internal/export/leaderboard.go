package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/courtdata/statline/internal/model"
)

// metricLabels maps metric identifiers to their display names, in the order
// the summary block lists them.
var metricLabels = []struct {
	metric string
	label  string
}{
	{model.MetricPoints, "Points"},
	{model.MetricAssists, "Assists"},
	{model.MetricRebounds, "Rebounds"},
	{model.MetricSteals, "Steals"},
	{model.MetricTurnovers, "Turnovers"},
}

// WriteLeaderboard renders the ranked batch as a fixed-width terminal table
// followed by the batch summary. An empty batch renders a single "no data"
// line.
func WriteLeaderboard(w io.Writer, records []model.RankedRecord, summary model.BatchSummary) error {
	if !summary.HasData() {
		_, err := fmt.Fprintln(w, "No data: no players ranked in this batch.")
		return eris.Wrap(err, "export: write leaderboard")
	}

	header := fmt.Sprintf("%-5s %-30s %-12s %8s\n", "Rank", "Name", "Tier", "Score")
	if _, err := fmt.Fprint(w, header); err != nil {
		return eris.Wrap(err, "export: write leaderboard header")
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 58)); err != nil {
		return eris.Wrap(err, "export: write leaderboard separator")
	}

	for _, r := range records {
		name := r.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		line := fmt.Sprintf("%-5d %-30s %-12s %8.1f\n", r.Rank, name, r.Tier, r.Score)
		if _, err := fmt.Fprint(w, line); err != nil {
			return eris.Wrap(err, "export: write leaderboard row")
		}
	}

	return writeSummary(w, summary)
}

func writeSummary(w io.Writer, s model.BatchSummary) error {
	var b strings.Builder

	b.WriteString("\n--- Summary ---\n")
	fmt.Fprintf(&b, "Players ranked: %d\n", s.Count)
	fmt.Fprintf(&b, "Average score:  %.1f\n", s.AverageScore)
	fmt.Fprintf(&b, "Highest score:  %.1f\n", s.MaxScore)
	fmt.Fprintf(&b, "Lowest score:   %.1f\n", s.MinScore)
	fmt.Fprintf(&b, "Top performer:  %s\n", s.TopPerformer)

	if len(s.Leaders) > 0 {
		b.WriteString("\nMetric leaders:\n")
		for _, m := range metricLabels {
			leader, ok := s.Leaders[m.metric]
			if !ok {
				continue
			}
			stats := s.Metrics[m.metric]
			fmt.Fprintf(&b, "  %-10s %-30s (max %.1f, avg %.1f)\n", m.label, leader, stats.Max, stats.Mean)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return eris.Wrap(err, "export: write summary")
	}
	return nil
}
