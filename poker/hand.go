package poker

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// HandSize is the number of cards in an evaluated hand.
const HandSize = 5

var (
	// ErrHandSize is returned when a hand is built from anything other than five cards.
	ErrHandSize = errors.New("hand must contain exactly 5 cards")

	// ErrDuplicateCard is returned by ValidateDistinct when a card appears twice.
	ErrDuplicateCard = errors.New("duplicate card")
)

// Hand is exactly five cards in the order they were dealt.
type Hand [HandSize]Card

// NewHand builds a hand from five valid cards.
func NewHand(cards ...Card) (Hand, error) {
	var h Hand
	if len(cards) != HandSize {
		return h, fmt.Errorf("%w: got %d", ErrHandSize, len(cards))
	}
	for i, c := range cards {
		if !c.rank.Valid() || !c.suit.Valid() {
			return h, fmt.Errorf("%w at position %d", ErrInvalidCard, i+1)
		}
		h[i] = c
	}
	return h, nil
}

// ParseHand parses card notation into a hand, e.g. "As Ks Qs Js Ts".
func ParseHand(s string) (Hand, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Hand{}, err
	}
	return NewHand(cards...)
}

// MustParseHand parses a hand and panics on error (for tests).
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return h
}

// Cards returns the hand as a slice.
func (h Hand) Cards() []Card {
	return h[:]
}

// Sorted returns a copy of the hand ordered by ascending rank. Cards of the
// same rank are ordered by suit so the result is stable for any input order.
func (h Hand) Sorted() Hand {
	sorted := h
	slices.SortFunc(sorted[:], func(a, b Card) int {
		if a.rank != b.rank {
			return int(a.rank) - int(b.rank)
		}
		return int(a.suit) - int(b.suit)
	})
	return sorted
}

// String returns the hand in dealt order, space separated.
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Pretty returns the hand using suit symbols.
func (h Hand) Pretty() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.Pretty()
	}
	return strings.Join(parts, " ")
}

// ValidateDistinct returns ErrDuplicateCard if any card appears more than once
// across the given groups. Evaluation itself trusts the deck and never calls this.
func ValidateDistinct(groups ...[]Card) error {
	var seen [NumRanks * NumSuits]bool
	for _, group := range groups {
		for _, c := range group {
			if seen[c.index()] {
				return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
			}
			seen[c.index()] = true
		}
	}
	return nil
}
