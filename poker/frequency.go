package poker

import "fmt"

// Analysis is the rank-frequency breakdown of a hand.
type Analysis struct {
	// Sorted holds the cards ordered by ascending rank.
	Sorted Hand
	// Counts maps rank weight to the number of cards of that rank.
	Counts [NumRanks]uint8
	// Fours, Threes and Pairs list the ranks seen exactly 4, 3 and 2 times,
	// each in ascending order.
	Fours  []Rank
	Threes []Rank
	Pairs  []Rank
}

// Analyze sorts the hand and groups its ranks by frequency. It trusts the
// hand to hold five valid cards; a count total other than five is a defect
// and panics.
func Analyze(h Hand) Analysis {
	a := Analysis{Sorted: h.Sorted()}
	for _, c := range a.Sorted {
		a.Counts[c.rank]++
	}

	total := 0
	for r, n := range a.Counts {
		total += int(n)
		switch n {
		case 4:
			a.Fours = append(a.Fours, Rank(r))
		case 3:
			a.Threes = append(a.Threes, Rank(r))
		case 2:
			a.Pairs = append(a.Pairs, Rank(r))
		}
	}
	if total != HandSize {
		panic(fmt.Sprintf("poker: rank counts sum to %d, want %d", total, HandSize))
	}
	return a
}

// Count returns how many cards of the given rank are in the hand.
func (a Analysis) Count(r Rank) int {
	if !r.Valid() {
		return 0
	}
	return int(a.Counts[r])
}

// HighRank returns the highest rank in the hand.
func (a Analysis) HighRank() Rank {
	return a.Sorted[HandSize-1].rank
}
