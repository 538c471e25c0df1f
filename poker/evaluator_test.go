package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cards    string
		expected Outcome
	}{
		{
			name:     "Royal Flush",
			cards:    "Ts Js Qs Ks As",
			expected: Outcome{Category: RoyalFlush, Suit: Spades},
		},
		{
			name:     "Straight Flush",
			cards:    "9h 8h 7h 6h 5h",
			expected: Outcome{Category: StraightFlush, Rank: Nine, Suit: Hearts},
		},
		{
			name:     "Steel wheel is a straight flush, not royal",
			cards:    "Ad 2d 3d 4d 5d",
			expected: Outcome{Category: StraightFlush, Rank: Five, Suit: Diamonds},
		},
		{
			name:     "Four of a Kind",
			cards:    "7s 7h 7d 7c 2s",
			expected: Outcome{Category: FourOfAKind, Rank: Seven},
		},
		{
			name:     "Full House",
			cards:    "3s 3h 3d 8c 8s",
			expected: Outcome{Category: FullHouse, High: Three, Low: Eight},
		},
		{
			name:     "Full House with low triplet",
			cards:    "2h 2d 2c 9s 9h",
			expected: Outcome{Category: FullHouse, High: Two, Low: Nine},
		},
		{
			name:     "Flush",
			cards:    "2c 7c 9c Jc Kc",
			expected: Outcome{Category: Flush, Suit: Clubs},
		},
		{
			name:     "Straight",
			cards:    "4h 5d 6c 7s 8h",
			expected: Outcome{Category: Straight, Rank: Eight},
		},
		{
			name:     "Broadway straight",
			cards:    "Th Jd Qc Ks Ah",
			expected: Outcome{Category: Straight, Rank: Ace},
		},
		{
			name:     "Wheel plays the ace low",
			cards:    "Ah 2d 3c 4s 5h",
			expected: Outcome{Category: Straight, Rank: Five},
		},
		{
			name:     "Three of a Kind",
			cards:    "Qs Qh Qd 4c 9s",
			expected: Outcome{Category: ThreeOfAKind, Rank: Queen},
		},
		{
			name:     "Two Pair",
			cards:    "Js Jh 4d 4c As",
			expected: Outcome{Category: TwoPair, Ranks: [2]Rank{Four, Jack}},
		},
		{
			name:     "Pair",
			cards:    "Ks Kh 2d 5c 9s",
			expected: Outcome{Category: Pair, Rank: King},
		},
		{
			name:     "High Card",
			cards:    "2s 5h 9d Jc Ks",
			expected: Outcome{Category: HighCard, Rank: King},
		},
		{
			name:     "Wrap-around is not a straight",
			cards:    "Qs Kh Ad 2c 3s",
			expected: Outcome{Category: HighCard, Rank: Ace},
		},
		{
			name:     "Four card run is not a straight",
			cards:    "2s 3h 4d 5c 7s",
			expected: Outcome{Category: HighCard, Rank: Seven},
		},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Evaluate(MustParseHand(tc.cards))
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestEvaluateOrderIndependent(t *testing.T) {
	t.Parallel()
	hands := []string{
		"Ts Js Qs Ks As",
		"Ah 2d 3c 4s 5h",
		"3s 3h 3d 8c 8s",
		"Js Jh 4d 4c As",
		"2s 5h 9d Jc Ks",
	}

	for _, cards := range hands {
		h := MustParseHand(cards)
		want := Evaluate(h)
		forEachPermutation(h, func(p Hand) {
			assert.Equal(t, want, Evaluate(p), "permutation %s of %s", p, cards)
		})
	}
}

func TestEvaluateAllHandsHaveOneCategory(t *testing.T) {
	t.Parallel()
	counts := make(map[Category]int)
	deck := fullDeck()
	forEachHand(deck, func(h Hand) {
		o := Evaluate(h)
		if !o.Category.Valid() {
			t.Fatalf("hand %s produced invalid category %d", h, o.Category)
		}
		counts[o.Category]++
	})

	// Known distribution of the 2,598,960 five-card hands.
	assert.Equal(t, 4, counts[RoyalFlush])
	assert.Equal(t, 36, counts[StraightFlush])
	assert.Equal(t, 624, counts[FourOfAKind])
	assert.Equal(t, 3744, counts[FullHouse])
	assert.Equal(t, 5108, counts[Flush])
	assert.Equal(t, 10200, counts[Straight])
	assert.Equal(t, 54912, counts[ThreeOfAKind])
	assert.Equal(t, 123552, counts[TwoPair])
	assert.Equal(t, 1098240, counts[Pair])
	assert.Equal(t, 1302540, counts[HighCard])
}

func TestEvaluateConstructedHands(t *testing.T) {
	t.Parallel()
	// Four of every rank plus any other kicker is always quads.
	for quad := Two; quad <= Ace; quad++ {
		kicker := Two
		if quad == Two {
			kicker = Three
		}
		h, err := NewHand(
			MustCard(quad, Clubs), MustCard(quad, Diamonds),
			MustCard(quad, Hearts), MustCard(quad, Spades),
			MustCard(kicker, Spades),
		)
		require.NoError(t, err)
		o := Evaluate(h)
		assert.Equal(t, FourOfAKind, o.Category)
		assert.Equal(t, quad, o.Rank)
	}
}

func TestEvaluateFullHouseNeverTrips(t *testing.T) {
	t.Parallel()
	for trips := Two; trips <= Ace; trips++ {
		for pair := Two; pair <= Ace; pair++ {
			if pair == trips {
				continue
			}
			h, err := NewHand(
				MustCard(trips, Clubs), MustCard(trips, Diamonds), MustCard(trips, Hearts),
				MustCard(pair, Clubs), MustCard(pair, Spades),
			)
			require.NoError(t, err)
			o := Evaluate(h)
			require.Equal(t, FullHouse, o.Category, "hand %s", h)
			assert.Equal(t, trips, o.High)
			assert.Equal(t, pair, o.Low)
		}
	}
}

func TestEvaluateCards(t *testing.T) {
	t.Parallel()
	_, err := EvaluateCards(MustParseCards("As Ks Qs"))
	assert.ErrorIs(t, err, ErrHandSize)

	o, err := EvaluateCards(MustParseCards("As Ks Qs Js Ts"))
	require.NoError(t, err)
	assert.Equal(t, RoyalFlush, o.Category)
}

func TestCategoryNames(t *testing.T) {
	t.Parallel()
	for _, c := range Categories() {
		parsed, err := ParseCategory(c.Slug())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
		assert.Equal(t, int(c), c.Weight())
	}
	_, err := ParseCategory("five_of_a_kind")
	assert.Error(t, err)
	assert.Equal(t, "Full House", FullHouse.String())
	assert.Equal(t, "Unknown", Category(42).String())
}

func fullDeck() []Card {
	cards := make([]Card, 0, NumRanks*NumSuits)
	for suit := range Suit(NumSuits) {
		for rank := range Rank(NumRanks) {
			cards = append(cards, MustCard(rank, suit))
		}
	}
	return cards
}

func forEachHand(cards []Card, fn func(Hand)) {
	n := len(cards)
	var h Hand
	for a := 0; a < n; a++ {
		h[0] = cards[a]
		for b := a + 1; b < n; b++ {
			h[1] = cards[b]
			for c := b + 1; c < n; c++ {
				h[2] = cards[c]
				for d := c + 1; d < n; d++ {
					h[3] = cards[d]
					for e := d + 1; e < n; e++ {
						h[4] = cards[e]
						fn(h)
					}
				}
			}
		}
	}
}

func forEachPermutation(h Hand, fn func(Hand)) {
	var permute func(k int)
	permute = func(k int) {
		if k == HandSize {
			fn(h)
			return
		}
		for i := k; i < HandSize; i++ {
			h[k], h[i] = h[i], h[k]
			permute(k + 1)
			h[k], h[i] = h[i], h[k]
		}
	}
	permute(0)
}

func BenchmarkEvaluate(b *testing.B) {
	hands := []Hand{
		MustParseHand("Ts Js Qs Ks As"),
		MustParseHand("3s 3h 3d 8c 8s"),
		MustParseHand("Ah 2d 3c 4s 5h"),
		MustParseHand("2s 5h 9d Jc Ks"),
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Evaluate(hands[i%len(hands)])
	}
}
