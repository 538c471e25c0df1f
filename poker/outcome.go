package poker

import "fmt"

// Outcome is the classification of a single hand. Which parameters are set
// depends on the category:
//
//	HighCard, Pair, ThreeOfAKind, FourOfAKind: Rank
//	Straight, StraightFlush: Rank (top of the straight, Five for the wheel)
//	TwoPair: Ranks, the two pair ranks in ascending order
//	FullHouse: High (three rank) and Low (pair rank)
//	Flush, StraightFlush, RoyalFlush: Suit
type Outcome struct {
	Category Category
	Rank     Rank
	Ranks    [2]Rank
	High     Rank
	Low      Rank
	Suit     Suit
}

// Weight returns the category weight, 0 (High Card) to 9 (Royal Flush).
func (o Outcome) Weight() int {
	return o.Category.Weight()
}

// tiebreak returns the parameter ranks that order outcomes within a
// category, most significant first.
func (o Outcome) tiebreak() []Rank {
	switch o.Category {
	case HighCard, Pair, ThreeOfAKind, Straight, FourOfAKind, StraightFlush:
		return []Rank{o.Rank}
	case TwoPair:
		return []Rank{o.Ranks[1], o.Ranks[0]}
	case FullHouse:
		return []Rank{o.High, o.Low}
	default:
		return nil
	}
}

// Key returns a composite comparison value: the category weight followed by
// one hex digit per tie-break rank weight. Keys from different categories
// order by weight first because every key has the same width.
func (o Outcome) Key() uint16 {
	key := uint16(o.Weight()) << 8
	shift := 4
	for _, r := range o.tiebreak() {
		key |= uint16(r.Weight()) << shift
		shift -= 4
	}
	return key
}

// Compare returns -1 if o is weaker than other, 0 if equal, 1 if o is stronger.
func (o Outcome) Compare(other Outcome) int {
	a, b := o.Key(), other.Key()
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// Beats reports whether o is strictly stronger than other.
func (o Outcome) Beats(other Outcome) bool {
	return o.Compare(other) > 0
}

// Describe returns the category label with its parameters for display.
func (o Outcome) Describe() string {
	switch o.Category {
	case HighCard:
		return fmt.Sprintf("%s (%s)", o.Category, o.Rank.Name())
	case Pair, ThreeOfAKind, FourOfAKind:
		return fmt.Sprintf("%s (%s)", o.Category, o.Rank.Plural())
	case TwoPair:
		return fmt.Sprintf("%s (%s and %s)", o.Category, o.Ranks[1].Plural(), o.Ranks[0].Plural())
	case Straight:
		return fmt.Sprintf("%s (%s high)", o.Category, o.Rank.Name())
	case Flush:
		return fmt.Sprintf("%s (%s)", o.Category, o.Suit.Symbol())
	case FullHouse:
		return fmt.Sprintf("%s (%s over %s)", o.Category, o.High.Plural(), o.Low.Plural())
	case StraightFlush:
		return fmt.Sprintf("%s (%s high, %s)", o.Category, o.Rank.Name(), o.Suit.Symbol())
	case RoyalFlush:
		return o.Category.String()
	default:
		return "Unknown"
	}
}

// String implements fmt.Stringer using Describe.
func (o Outcome) String() string {
	return o.Describe()
}
