package poker

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidCard is returned when a card has an unknown rank or suit.
var ErrInvalidCard = errors.New("invalid card")

// Rank is the face value of a card. Its numeric value is the rank weight:
// Two is 0 and Ace is 12.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks in a standard deck.
const NumRanks = 13

const rankChars = "23456789TJQKA"

// Valid reports whether r is one of the 13 ranks.
func (r Rank) Valid() bool {
	return r <= Ace
}

// Weight returns the 0-12 ordinal of the rank, used for all numeric comparisons.
func (r Rank) Weight() int {
	return int(r)
}

// String returns the short notation used in card strings ("T" for ten).
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(rankChars[r])
}

// Name returns the rank as shown to players ("10" for ten).
func (r Rank) Name() string {
	if r == Ten {
		return "10"
	}
	return r.String()
}

// Plural returns the rank name used in hand descriptions ("Jacks", "3s").
func (r Rank) Plural() string {
	switch r {
	case Jack:
		return "Jacks"
	case Queen:
		return "Queens"
	case King:
		return "Kings"
	case Ace:
		return "Aces"
	default:
		return r.Name() + "s"
	}
}

// Suit is one of the four card suits.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of suits in a standard deck.
const NumSuits = 4

const suitChars = "cdhs"

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s <= Spades
}

// String returns the single-letter suit notation.
func (s Suit) String() string {
	if !s.Valid() {
		return "?"
	}
	return string(suitChars[s])
}

// Symbol returns the unicode suit symbol.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true for hearts and diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Card is an immutable playing card. Cards built through NewCard or the
// parse functions always carry a valid rank and suit.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a card, rejecting unknown ranks or suits.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: rank %d", ErrInvalidCard, rank)
	}
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: suit %d", ErrInvalidCard, suit)
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustCard creates a card and panics on invalid input (for tests and tables).
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// Rank returns the card's rank.
func (c Card) Rank() Rank { return c.rank }

// Suit returns the card's suit.
func (c Card) Suit() Suit { return c.suit }

// String returns the two-character notation, e.g. "As" or "Th".
func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}

// Pretty returns the card with a suit symbol, e.g. "10♥".
func (c Card) Pretty() string {
	return c.rank.Name() + c.suit.Symbol()
}

// index returns a unique 0-51 position for the card.
func (c Card) index() int {
	return int(c.suit)*NumRanks + int(c.rank)
}

// ParseCard parses a single card. Accepted forms are "As", "Th", "10h" and
// "2♣"; rank and suit letters are case-insensitive.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Card{}, fmt.Errorf("%w: empty string", ErrInvalidCard)
	}

	rankPart, suitPart := s[:1], s[1:]
	if strings.HasPrefix(s, "10") {
		rankPart, suitPart = "T", s[2:]
	}
	if utf8.RuneCountInString(suitPart) != 1 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rank, err := parseRank(rankPart[0])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}
	suit, err := parseSuit(suitPart)
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}
	return Card{rank: rank, suit: suit}, nil
}

// ParseCards parses a list of cards separated by spaces or commas, or
// concatenated without separators ("AsKsQsJsTs").
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	var cards []Card
	for _, field := range fields {
		tokens, err := splitCards(field)
		if err != nil {
			return nil, err
		}
		for _, tok := range tokens {
			card, err := ParseCard(tok)
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
		}
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests).
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// splitCards breaks a run of concatenated cards into single-card tokens.
func splitCards(s string) ([]string, error) {
	var tokens []string
	for len(s) > 0 {
		n := 1
		if strings.HasPrefix(s, "10") {
			n = 2
		}
		if len(s) <= n {
			return nil, fmt.Errorf("%w: incomplete card %q", ErrInvalidCard, s)
		}
		_, size := utf8.DecodeRuneInString(s[n:])
		tokens = append(tokens, s[:n+size])
		s = s[n+size:]
	}
	return tokens, nil
}

// ParseRank parses a rank symbol such as "A", "10" or "t".
func ParseRank(s string) (Rank, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "10":
		return Ten, nil
	case len(s) != 1:
		return 0, fmt.Errorf("unknown rank %q", s)
	}
	return parseRank(s[0])
}

func parseRank(c byte) (Rank, error) {
	switch c {
	case 'A', 'a':
		return Ace, nil
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case 'T', 't':
		return Ten, nil
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(c - '2'), nil
	default:
		return 0, fmt.Errorf("unknown rank '%c'", c)
	}
}

func parseSuit(s string) (Suit, error) {
	switch s {
	case "c", "C", "♣":
		return Clubs, nil
	case "d", "D", "♦":
		return Diamonds, nil
	case "h", "H", "♥":
		return Hearts, nil
	case "s", "S", "♠":
		return Spades, nil
	default:
		return 0, fmt.Errorf("unknown suit %q", s)
	}
}
