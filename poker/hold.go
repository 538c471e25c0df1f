package poker

// HoldCategory names the reason a set of cards is kept before the draw.
type HoldCategory string

const (
	HoldMadeHand     HoldCategory = "Made Hand"
	HoldRoyalDraw    HoldCategory = "Royal Draw"
	HoldTrips        HoldCategory = "Three of a Kind"
	HoldTwoPair      HoldCategory = "Two Pair"
	HoldHighPair     HoldCategory = "High Pair"
	HoldFlushDraw    HoldCategory = "Flush Draw"
	HoldLowPair      HoldCategory = "Low Pair"
	HoldStraightDraw HoldCategory = "Straight Draw"
	HoldHighCards    HoldCategory = "High Cards"
	HoldNothing      HoldCategory = "Redraw"
)

// highPairThreshold is the lowest rank whose pair pays in Jacks or Better.
const highPairThreshold = Jack

// Advice is a suggested set of cards to keep, indexed by dealt position.
type Advice struct {
	Category HoldCategory
	Hold     [HandSize]bool
}

// Positions returns the held positions, zero-based.
func (a Advice) Positions() []int {
	var pos []int
	for i, held := range a.Hold {
		if held {
			pos = append(pos, i)
		}
	}
	return pos
}

// SuggestHolds provides a simple Jacks-or-Better draw strategy.
// Order: pat straight-or-better (except a four-card royal draw beating a
// flush or straight), trips, two pair, high pair (JJ+), four to a flush,
// low pair, four to a straight, up to two high cards, otherwise redraw all.
func SuggestHolds(h Hand) Advice {
	outcome := Evaluate(h)
	a := Analyze(h)

	switch outcome.Category {
	case RoyalFlush, StraightFlush, FourOfAKind, FullHouse:
		return holdAll(h, HoldMadeHand)
	}

	if royal := royalDraw(h); royal != nil {
		return holdWhere(h, HoldRoyalDraw, royal)
	}

	switch outcome.Category {
	case Flush, Straight:
		return holdAll(h, HoldMadeHand)
	case ThreeOfAKind:
		return holdWhere(h, HoldTrips, func(c Card) bool { return c.rank == outcome.Rank })
	case TwoPair:
		return holdWhere(h, HoldTwoPair, func(c Card) bool { return a.Count(c.rank) == 2 })
	case Pair:
		if outcome.Rank >= highPairThreshold {
			return holdWhere(h, HoldHighPair, func(c Card) bool { return c.rank == outcome.Rank })
		}
	}

	if suit, ok := flushDraw(h); ok {
		return holdWhere(h, HoldFlushDraw, func(c Card) bool { return c.suit == suit })
	}

	if outcome.Category == Pair {
		return holdWhere(h, HoldLowPair, func(c Card) bool { return c.rank == outcome.Rank })
	}

	if low, ok := straightDraw(a); ok {
		var taken [NumRanks]bool
		return holdWhere(h, HoldStraightDraw, func(c Card) bool {
			if c.rank < low || c.rank > low+3 || taken[c.rank] {
				return false
			}
			taken[c.rank] = true
			return true
		})
	}

	// Keep at most the two highest cards that could still make a high pair.
	var advice Advice
	kept := 0
	for i := HandSize - 1; i >= 0 && kept < 2; i-- {
		c := a.Sorted[i]
		if c.rank < highPairThreshold {
			break
		}
		for pos, dealt := range h {
			if dealt == c {
				advice.Hold[pos] = true
			}
		}
		kept++
	}
	if kept > 0 {
		advice.Category = HoldHighCards
		return advice
	}
	return Advice{Category: HoldNothing}
}

func holdAll(h Hand, category HoldCategory) Advice {
	return holdWhere(h, category, func(Card) bool { return true })
}

func holdWhere(h Hand, category HoldCategory, keep func(Card) bool) Advice {
	advice := Advice{Category: category}
	for i, c := range h {
		advice.Hold[i] = keep(c)
	}
	return advice
}

// royalDraw returns a matcher for four suited ten-or-better cards, or nil.
func royalDraw(h Hand) func(Card) bool {
	var counts [NumSuits]int
	for _, c := range h {
		if c.rank >= Ten {
			counts[c.suit]++
		}
	}
	for suit, n := range counts {
		if n == 4 {
			s := Suit(suit)
			return func(c Card) bool { return c.suit == s && c.rank >= Ten }
		}
	}
	return nil
}

// flushDraw finds a suit held by exactly four cards.
func flushDraw(h Hand) (Suit, bool) {
	var counts [NumSuits]int
	for _, c := range h {
		counts[c.suit]++
	}
	for suit, n := range counts {
		if n == 4 {
			return Suit(suit), true
		}
	}
	return 0, false
}

// straightDraw finds four consecutive ranks and returns the lowest of them.
// The highest qualifying run wins.
func straightDraw(a Analysis) (Rank, bool) {
	for low := int(Ace - 3); low >= 0; low-- {
		run := true
		for r := low; r < low+4; r++ {
			if a.Counts[r] == 0 {
				run = false
				break
			}
		}
		if run {
			return Rank(low), true
		}
	}
	return 0, false
}
