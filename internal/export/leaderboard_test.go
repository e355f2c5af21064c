package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtdata/statline/internal/model"
)

func summaryFixture() model.BatchSummary {
	return model.BatchSummary{
		Count:        2,
		AverageScore: 31.65,
		MaxScore:     48.5,
		MinScore:     14.8,
		TopPerformer: "Ali Hassan",
		Leaders: map[string]string{
			model.MetricPoints:    "Ali Hassan",
			model.MetricAssists:   "Ali Hassan",
			model.MetricRebounds:  "Ali Hassan",
			model.MetricSteals:    "Ali Hassan",
			model.MetricTurnovers: "Dana Reyes",
		},
		Metrics: map[string]model.MetricStats{
			model.MetricPoints:    {Min: 10, Max: 22, Mean: 16},
			model.MetricAssists:   {Min: 2, Max: 7, Mean: 4.5},
			model.MetricRebounds:  {Min: 4, Max: 10, Mean: 7},
			model.MetricSteals:    {Min: 1, Max: 3, Mean: 2},
			model.MetricTurnovers: {Min: 2, Max: 5, Mean: 3.5},
		},
	}
}

func TestWriteLeaderboard(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteLeaderboard(&buf, rankedFixture(), summaryFixture()))
	out := buf.String()

	assert.Contains(t, out, "Rank")
	assert.Contains(t, out, "Ali Hassan")
	assert.Contains(t, out, "48.5")
	assert.Contains(t, out, "Average")
	assert.Contains(t, out, "Developing")
	assert.Contains(t, out, "Players ranked: 2")
	assert.Contains(t, out, "Top performer:  Ali Hassan")
	assert.Contains(t, out, "Metric leaders:")
	assert.Contains(t, out, "Turnovers")

	// Ranked rows appear in rank order.
	assert.Less(t, strings.Index(out, "Ali Hassan"), strings.Index(out, "Dana Reyes"))
}

func TestWriteLeaderboard_LongNameTruncated(t *testing.T) {
	records := rankedFixture()
	records[0].Name = strings.Repeat("x", 40)

	var buf strings.Builder
	require.NoError(t, WriteLeaderboard(&buf, records, summaryFixture()))

	assert.Contains(t, buf.String(), strings.Repeat("x", 27)+"...")
	assert.NotContains(t, buf.String(), strings.Repeat("x", 31))
}

func TestWriteLeaderboard_NoData(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteLeaderboard(&buf, nil, model.BatchSummary{}))

	assert.Contains(t, buf.String(), "No data")
	assert.NotContains(t, buf.String(), "Summary")
}
