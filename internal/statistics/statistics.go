package statistics

import (
	"fmt"
	"math"
	"sort"
)

// MatchResult represents the outcome of a single simulated match
type MatchResult struct {
	Seed     int64 // RNG seed for this match (for replay)
	Rounds   int   // Completed rounds
	Scores   []int // Final score per seat
	Winners  []int // Seat indices sharing the win
	Reached  bool  // Someone reached the target score
	Forfeits []int // Forfeited turns per seat
}

// Sample accumulates a series of observations
type Sample struct {
	N      int
	Sum    float64
	SumSq  float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation
}

// Add records one observation
func (s *Sample) Add(v float64) {
	s.N++
	s.Sum += v
	s.SumSq += v * v
	s.Values = append(s.Values, v)
}

// Mean returns the arithmetic mean
func (s *Sample) Mean() float64 {
	if s.N == 0 {
		return 0
	}
	return s.Sum / float64(s.N)
}

// Variance returns the sample variance
func (s *Sample) Variance() float64 {
	if s.N < 2 {
		return 0
	}
	mean := s.Mean()
	return max(0, (s.SumSq-float64(s.N)*mean*mean)/float64(s.N-1))
}

// StdDev returns the sample standard deviation
func (s *Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Sample) StdError() float64 {
	if s.N == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.N))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Sample) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median value
func (s *Sample) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Sample) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// SeatStats tracks one seat across matches
type SeatStats struct {
	Name     string
	Matches  int
	Wins     float64 // shared wins count fractionally
	Outright int     // sole wins
	Forfeits int
	Score    Sample
}

// WinRate returns the seat's share of wins
func (s *SeatStats) WinRate() float64 {
	if s.Matches == 0 {
		return 0
	}
	return s.Wins / float64(s.Matches)
}

// Statistics tracks simulation results for a fixed seating
type Statistics struct {
	Matches int
	Reached int // matches ended by the target score rather than the round cap
	Rounds  Sample
	Seats   []SeatStats

	decided int // matches with at least one winner
}

// New creates statistics for the named seats
func New(names []string) *Statistics {
	s := &Statistics{Seats: make([]SeatStats, len(names))}
	for i, name := range names {
		s.Seats[i].Name = name
	}
	return s
}

// Add incorporates a new match result into the statistics
func (s *Statistics) Add(result MatchResult) error {
	if len(result.Scores) != len(s.Seats) {
		return fmt.Errorf("result has %d scores for %d seats", len(result.Scores), len(s.Seats))
	}
	for _, w := range result.Winners {
		if w < 0 || w >= len(s.Seats) {
			return fmt.Errorf("winner index %d out of range", w)
		}
	}

	s.Matches++
	s.Rounds.Add(float64(result.Rounds))
	if result.Reached {
		s.Reached++
	}

	for i := range s.Seats {
		seat := &s.Seats[i]
		seat.Matches++
		seat.Score.Add(float64(result.Scores[i]))
		if i < len(result.Forfeits) {
			seat.Forfeits += result.Forfeits[i]
		}
	}

	if n := len(result.Winners); n > 0 {
		s.decided++
		for _, w := range result.Winners {
			s.Seats[w].Wins += 1 / float64(n)
		}
		if n == 1 {
			s.Seats[result.Winners[0]].Outright++
		}
	}
	return nil
}

// Leader returns the index of the seat with the highest win rate
func (s *Statistics) Leader() int {
	best := -1
	for i := range s.Seats {
		if best < 0 || s.Seats[i].Wins > s.Seats[best].Wins {
			best = i
		}
	}
	return best
}

// IsLedgerBalanced checks that fractional wins add up to decided matches
func (s *Statistics) IsLedgerBalanced() bool {
	total := 0.0
	for _, seat := range s.Seats {
		total += seat.Wins
	}
	return math.Abs(total-float64(s.decided)) <= 1e-6
}

// Validate performs comprehensive validation of statistics data
func (s *Statistics) Validate() error {
	if s.Matches <= 0 {
		return fmt.Errorf("invalid matches count: %d", s.Matches)
	}
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("win ledger mismatch over %d decided matches", s.decided)
	}
	if s.Rounds.N != s.Matches {
		return fmt.Errorf("rounds samples (%d) do not match matches (%d)", s.Rounds.N, s.Matches)
	}
	if s.Reached > s.Matches {
		return fmt.Errorf("reached count (%d) exceeds matches (%d)", s.Reached, s.Matches)
	}
	for _, seat := range s.Seats {
		if seat.Matches != s.Matches {
			return fmt.Errorf("seat %s played %d of %d matches", seat.Name, seat.Matches, s.Matches)
		}
		if len(seat.Score.Values) != seat.Score.N {
			return fmt.Errorf("seat %s: values length (%d) does not match samples (%d)",
				seat.Name, len(seat.Score.Values), seat.Score.N)
		}
	}
	return nil
}
