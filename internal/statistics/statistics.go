package statistics

import (
	"fmt"
	"math"

	"github.com/lox/videopoker/poker"
)

// RoundResult represents the outcome of a single played round
type RoundResult struct {
	Category poker.Category // Final hand category after the draw
	Bet      int            // Coins wagered
	Win      int            // Coins paid back (0 for a losing hand)
	Seed     int64          // Worker seed, for replay
}

// Net returns the coins won or lost on the round.
func (r RoundResult) Net() int {
	return r.Win - r.Bet
}

// Statistics tracks aggregate results of many rounds. All sums are integer
// coins so merging partial results is exact and order independent.
type Statistics struct {
	Rounds   int
	Wagered  int64
	Returned int64
	SumNet   int64
	SumNet2  int64 // Sum of squares for variance calculation
	Winners  int   // Rounds that paid anything
	MaxWin   int

	Categories [poker.NumCategories]int
	Paid       [poker.NumCategories]int64 // Coins returned per category
}

// Add incorporates a new round into the statistics
func (s *Statistics) Add(result RoundResult) {
	net := int64(result.Net())
	s.Rounds++
	s.Wagered += int64(result.Bet)
	s.Returned += int64(result.Win)
	s.SumNet += net
	s.SumNet2 += net * net

	if result.Win > 0 {
		s.Winners++
	}
	if result.Win > s.MaxWin {
		s.MaxWin = result.Win
	}

	if result.Category.Valid() {
		s.Categories[result.Category]++
		s.Paid[result.Category] += int64(result.Win)
	}
}

// Merge folds other into s.
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.Wagered += other.Wagered
	s.Returned += other.Returned
	s.SumNet += other.SumNet
	s.SumNet2 += other.SumNet2
	s.Winners += other.Winners
	if other.MaxWin > s.MaxWin {
		s.MaxWin = other.MaxWin
	}
	for i := range s.Categories {
		s.Categories[i] += other.Categories[i]
		s.Paid[i] += other.Paid[i]
	}
}

// Mean returns the average net coins per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.SumNet) / float64(s.Rounds)
}

// Variance returns the sample variance of net coins per round
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return max(0, (float64(s.SumNet2)-float64(s.Rounds)*mean*mean)/float64(s.Rounds-1))
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// ReturnRate returns coins returned per coin wagered (1.0 is break-even).
func (s *Statistics) ReturnRate() float64 {
	if s.Wagered == 0 {
		return 0
	}
	return float64(s.Returned) / float64(s.Wagered)
}

// HitRate returns the fraction of rounds that paid anything.
func (s *Statistics) HitRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Winners) / float64(s.Rounds)
}

// Frequency returns the fraction of rounds that finished in category c.
func (s *Statistics) Frequency(c poker.Category) float64 {
	if s.Rounds == 0 || !c.Valid() {
		return 0
	}
	return float64(s.Categories[c]) / float64(s.Rounds)
}

// Validate checks that the accounting is consistent
func (s *Statistics) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}

	total := 0
	var paid int64
	for i := range s.Categories {
		total += s.Categories[i]
		paid += s.Paid[i]
	}
	if total != s.Rounds {
		return fmt.Errorf("category total (%d) does not match rounds (%d)", total, s.Rounds)
	}
	if paid != s.Returned {
		return fmt.Errorf("category payouts (%d) do not match returned coins (%d)", paid, s.Returned)
	}
	if s.Returned-s.Wagered != s.SumNet {
		return fmt.Errorf("ledger mismatch: returned=%d wagered=%d net=%d", s.Returned, s.Wagered, s.SumNet)
	}
	if s.Winners > s.Rounds {
		return fmt.Errorf("winning rounds (%d) exceeds total rounds (%d)", s.Winners, s.Rounds)
	}
	return nil
}
