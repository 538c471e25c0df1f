package poker

import "fmt"

// Category enumerates the kinds of poker hands ordered from weakest to strongest.
// The numeric value is the category weight.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// NumCategories is the number of hand categories.
const NumCategories = 10

var categoryNames = [NumCategories]string{
	"High Card",
	"Pair",
	"Two Pair",
	"Three of a Kind",
	"Straight",
	"Flush",
	"Full House",
	"Four of a Kind",
	"Straight Flush",
	"Royal Flush",
}

var categorySlugs = [NumCategories]string{
	"high_card",
	"pair",
	"two_pair",
	"three_of_a_kind",
	"straight",
	"flush",
	"full_house",
	"four_of_a_kind",
	"straight_flush",
	"royal_flush",
}

// Weight returns the 0-9 strength of the category.
func (c Category) Weight() int {
	return int(c)
}

// Valid reports whether c is one of the ten categories.
func (c Category) Valid() bool {
	return c < NumCategories
}

// String returns a human-readable category name.
func (c Category) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return categoryNames[c]
}

// Slug returns the snake_case identifier used in configuration files.
func (c Category) Slug() string {
	if !c.Valid() {
		return "unknown"
	}
	return categorySlugs[c]
}

// ParseCategory resolves a snake_case identifier such as "full_house".
func ParseCategory(slug string) (Category, error) {
	for i, s := range categorySlugs {
		if s == slug {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown hand category %q", slug)
}

// Categories returns every category from weakest to strongest.
func Categories() []Category {
	cats := make([]Category, NumCategories)
	for i := range cats {
		cats[i] = Category(i)
	}
	return cats
}

// Evaluate classifies a five-card hand. The result depends only on the
// cards, not on their order, and is safe to call concurrently.
func Evaluate(h Hand) Outcome {
	a := Analyze(h)
	return classify(a)
}

// EvaluateCards validates cards into a hand and classifies it.
func EvaluateCards(cards []Card) (Outcome, error) {
	h, err := NewHand(cards...)
	if err != nil {
		return Outcome{}, err
	}
	return Evaluate(h), nil
}

// CompareHands compares two hands and returns 1 if a wins, -1 if b wins, 0 for tie
func CompareHands(a, b Hand) int {
	return Evaluate(a).Compare(Evaluate(b))
}

func classify(a Analysis) Outcome {
	flush := isFlush(a.Sorted)
	top, straight := straightTop(a.Sorted)

	if straight && flush {
		if top == Ace {
			return Outcome{Category: RoyalFlush, Suit: a.Sorted[0].suit}
		}
		return Outcome{Category: StraightFlush, Rank: top, Suit: a.Sorted[0].suit}
	}

	if len(a.Fours) > 0 {
		return Outcome{Category: FourOfAKind, Rank: a.Fours[0]}
	}

	if len(a.Threes) > 0 {
		high := a.Threes[len(a.Threes)-1]
		if len(a.Threes) >= 2 || len(a.Pairs) >= 1 {
			// The low component is the highest of any leftover three ranks and the pair ranks.
			var low Rank
			found := false
			for _, r := range a.Threes[:len(a.Threes)-1] {
				if !found || r > low {
					low, found = r, true
				}
			}
			for _, r := range a.Pairs {
				if !found || r > low {
					low, found = r, true
				}
			}
			return Outcome{Category: FullHouse, High: high, Low: low}
		}
		return Outcome{Category: ThreeOfAKind, Rank: high}
	}

	if flush {
		return Outcome{Category: Flush, Suit: a.Sorted[0].suit}
	}

	if straight {
		return Outcome{Category: Straight, Rank: top}
	}

	if n := len(a.Pairs); n >= 2 {
		return Outcome{Category: TwoPair, Ranks: [2]Rank{a.Pairs[n-2], a.Pairs[n-1]}}
	}

	if len(a.Pairs) == 1 {
		return Outcome{Category: Pair, Rank: a.Pairs[0]}
	}

	return Outcome{Category: HighCard, Rank: a.HighRank()}
}
