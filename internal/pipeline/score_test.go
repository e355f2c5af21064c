package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtdata/statline/internal/config"
	"github.com/courtdata/statline/internal/model"
)

func defaultWeights() config.Weights {
	return config.Weights{Points: 1.0, Assists: 1.5, Rebounds: 1.2, Steals: 2.0, Turnovers: -1.0}
}

func TestComputeScore_DefaultWeights(t *testing.T) {
	rec := model.PlayerRecord{Points: 20, Assists: 5, Rebounds: 10, Steals: 2, Turnovers: 3}
	// 20*1.0 + 5*1.5 + 10*1.2 + 2*2.0 - 3*1.0 = 20 + 7.5 + 12 + 4 - 3 = 40.5
	assert.InDelta(t, 40.5, ComputeScore(rec, defaultWeights()), 0.0001)
}

func TestComputeScore_AllZero(t *testing.T) {
	assert.Equal(t, 0.0, ComputeScore(model.PlayerRecord{}, defaultWeights()))
}

func TestComputeScore_CanGoNegative(t *testing.T) {
	rec := model.PlayerRecord{Points: 2, Turnovers: 8}
	// 2*1.0 - 8*1.0 = -6
	assert.InDelta(t, -6.0, ComputeScore(rec, defaultWeights()), 0.0001)
}

func TestComputeScore_CustomWeights(t *testing.T) {
	rec := model.PlayerRecord{Points: 10, Assists: 4, Rebounds: 2, Steals: 1, Turnovers: 2}
	w := config.Weights{Points: 2.0, Assists: 1.0, Rebounds: 1.0, Steals: 3.0, Turnovers: -2.0}
	// 10*2 + 4*1 + 2*1 + 1*3 - 2*2 = 20 + 4 + 2 + 3 - 4 = 25
	assert.InDelta(t, 25.0, ComputeScore(rec, w), 0.0001)
}

func TestScoreRecords_PreservesOrder(t *testing.T) {
	records := []model.PlayerRecord{
		{Row: 1, Name: "Ava", Points: 10},
		{Row: 2, Name: "Noah", Points: 30},
		{Row: 3, Name: "Mia", Points: 20},
	}

	scored := ScoreRecords(records, defaultWeights())
	require.Len(t, scored, 3)
	assert.Equal(t, "Ava", scored[0].Name)
	assert.Equal(t, "Noah", scored[1].Name)
	assert.Equal(t, "Mia", scored[2].Name)
	assert.InDelta(t, 10.0, scored[0].Score, 0.0001)
	assert.InDelta(t, 30.0, scored[1].Score, 0.0001)
}

func TestScoreRecords_Deterministic(t *testing.T) {
	records := []model.PlayerRecord{
		{Row: 1, Name: "Ava", Points: 17, Assists: 3, Rebounds: 6, Steals: 2, Turnovers: 1},
		{Row: 2, Name: "Noah", Points: 9, Assists: 11, Rebounds: 4, Steals: 0, Turnovers: 4},
	}

	first := ScoreRecords(records, defaultWeights())
	second := ScoreRecords(records, defaultWeights())
	assert.Equal(t, first, second)
}

func TestScoreRecords_Empty(t *testing.T) {
	scored := ScoreRecords(nil, defaultWeights())
	assert.Empty(t, scored)
}
