package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleEmpty(t *testing.T) {
	var s Sample

	assert.Zero(t, s.Mean())
	assert.Zero(t, s.Variance())
	assert.Zero(t, s.StdDev())
	assert.Zero(t, s.StdError())
	assert.Zero(t, s.Median())
	assert.Zero(t, s.Percentile(0.9))
}

func TestSampleMoments(t *testing.T) {
	var s Sample
	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		s.Add(v)
	}

	assert.Equal(t, 8, s.N)
	assert.InDelta(t, 5.0, s.Mean(), 1e-9)
	assert.InDelta(t, 32.0/7.0, s.Variance(), 1e-9)
	assert.InDelta(t, math.Sqrt(32.0/7.0), s.StdDev(), 1e-9)
	assert.InDelta(t, s.StdDev()/math.Sqrt(8), s.StdError(), 1e-9)
	assert.InDelta(t, 4.5, s.Median(), 1e-9)
	assert.InDelta(t, 2.0, s.Percentile(0), 1e-9)
	assert.InDelta(t, 9.0, s.Percentile(1), 1e-9)

	lo, hi := s.ConfidenceInterval95()
	assert.Less(t, lo, s.Mean())
	assert.Greater(t, hi, s.Mean())
	assert.InDelta(t, s.Mean(), (lo+hi)/2, 1e-9)
}

func TestStatisticsAdd(t *testing.T) {
	stats := New([]string{"greedy", "random", "greedy-2"})

	require.NoError(t, stats.Add(MatchResult{Rounds: 20, Scores: []int{15, 3, 9}, Winners: []int{0}, Reached: true}))
	require.NoError(t, stats.Add(MatchResult{Rounds: 25, Scores: []int{16, 2, 16}, Winners: []int{0, 2}, Reached: true, Forfeits: []int{0, 2, 0}}))
	require.NoError(t, stats.Add(MatchResult{Rounds: 100, Scores: []int{0, 0, 0}}))

	assert.Equal(t, 3, stats.Matches)
	assert.Equal(t, 2, stats.Reached)
	assert.InDelta(t, 145.0/3.0, stats.Rounds.Mean(), 1e-9)

	assert.InDelta(t, 1.5, stats.Seats[0].Wins, 1e-9)
	assert.Equal(t, 1, stats.Seats[0].Outright)
	assert.InDelta(t, 0.5, stats.Seats[2].Wins, 1e-9)
	assert.Zero(t, stats.Seats[2].Outright)
	assert.Equal(t, 2, stats.Seats[1].Forfeits)
	assert.InDelta(t, 0.5, stats.Seats[0].WinRate(), 1e-9)
	assert.InDelta(t, 31.0/3.0, stats.Seats[0].Score.Mean(), 1e-9)
	assert.Equal(t, 0, stats.Leader())

	require.NoError(t, stats.Validate())
}

func TestStatisticsRejectsMismatchedResults(t *testing.T) {
	stats := New([]string{"a", "b"})

	assert.Error(t, stats.Add(MatchResult{Scores: []int{1}}))
	assert.Error(t, stats.Add(MatchResult{Scores: []int{1, 2}, Winners: []int{2}}))
	assert.Zero(t, stats.Matches)
}

func TestStatisticsValidate(t *testing.T) {
	stats := New([]string{"a", "b"})
	assert.ErrorContains(t, stats.Validate(), "invalid matches count")

	require.NoError(t, stats.Add(MatchResult{Scores: []int{3, 1}, Winners: []int{0}}))
	require.NoError(t, stats.Validate())

	stats.Seats[1].Wins = 0.5
	assert.ErrorContains(t, stats.Validate(), "ledger")

	stats.Seats[1].Wins = 0
	stats.Seats[1].Matches = 4
	assert.ErrorContains(t, stats.Validate(), "played 4 of 1")
}
