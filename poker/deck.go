package poker

import (
	"errors"
	rand "math/rand/v2"
)

// ErrDeckExhausted is returned when more cards are requested than remain.
var ErrDeckExhausted = errors.New("not enough cards left in deck")

// Deck represents a standard 52-card deck
type Deck struct {
	cards [NumRanks * NumSuits]Card // Fixed size array
	next  int
	rng   *rand.Rand // Random source for deterministic shuffling
}

// NewDeck creates a new shuffled deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}

	i := 0
	for suit := range Suit(NumSuits) {
		for rank := range Rank(NumRanks) {
			d.cards[i] = Card{rank: rank, suit: suit}
			i++
		}
	}

	d.Shuffle()
	return d
}

// Shuffle returns every card to the deck and shuffles using Fisher-Yates
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 || d.next+n > len(d.cards) {
		return nil, ErrDeckExhausted
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// DealHand deals five cards as a hand.
func (d *Deck) DealHand() (Hand, error) {
	var h Hand
	if d.next+HandSize > len(d.cards) {
		return h, ErrDeckExhausted
	}
	copy(h[:], d.cards[d.next:d.next+HandSize])
	d.next += HandSize
	return h, nil
}

// DealOne deals a single card from the deck
func (d *Deck) DealOne() (Card, error) {
	if d.next >= len(d.cards) {
		return Card{}, ErrDeckExhausted
	}
	card := d.cards[d.next]
	d.next++
	return card, nil
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
