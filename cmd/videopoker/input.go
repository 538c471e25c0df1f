package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/videopoker/poker"
)

// parseHand parses a five-card hand and rejects repeated cards.
func parseHand(s string) (poker.Hand, error) {
	cards, err := poker.ParseCards(s)
	if err != nil {
		return poker.Hand{}, err
	}
	if err := poker.ValidateDistinct(cards); err != nil {
		return poker.Hand{}, err
	}
	return poker.NewHand(cards...)
}

// parseHands parses each argument as a hand; no card may appear twice across
// all of them.
func parseHands(args []string) ([]poker.Hand, error) {
	hands := make([]poker.Hand, 0, len(args))
	groups := make([][]poker.Card, 0, len(args))
	for i, arg := range args {
		h, err := parseHand(arg)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		hands = append(hands, h)
		groups = append(groups, h.Cards())
	}
	if err := poker.ValidateDistinct(groups...); err != nil {
		return nil, err
	}
	return hands, nil
}

// parseHold parses 1-based card positions such as "1 3 5", "1,3,5" or "135".
// "all" holds everything; "", "none" and "-" hold nothing. Positions are
// returned 0-based.
func parseHold(s string) ([]int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "none", "-":
		return nil, nil
	case "all":
		return []int{0, 1, 2, 3, 4}, nil
	}

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	seen := [poker.HandSize]bool{}
	var positions []int
	for _, field := range fields {
		digits := []string{field}
		if len(field) > 1 {
			digits = strings.Split(field, "")
		}
		for _, d := range digits {
			n, err := strconv.Atoi(d)
			if err != nil {
				return nil, fmt.Errorf("invalid hold position %q", d)
			}
			if n < 1 || n > poker.HandSize {
				return nil, fmt.Errorf("hold position %d out of range 1-%d", n, poker.HandSize)
			}
			if !seen[n-1] {
				seen[n-1] = true
				positions = append(positions, n-1)
			}
		}
	}
	return positions, nil
}
