// Package paytable maps hand outcomes to payouts for a draw poker machine.
package paytable

import (
	"fmt"

	"github.com/lox/videopoker/poker"
)

// Line is one row of a compiled paytable.
type Line struct {
	Category    poker.Category
	Multiplier  int
	MinRank     poker.Rank
	HasMinRank  bool
	MaxBetBonus int
}

// Paytable is an immutable, compiled paytable. Build one with New and share
// it by pointer.
type Paytable struct {
	name         string
	maxBet       int
	startCredits int
	lines        [poker.NumCategories]Line
}

// New validates config and compiles it into a Paytable.
func New(config *Config) (*Paytable, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid paytable: %w", err)
	}

	pt := &Paytable{
		name:         config.Game.Name,
		maxBet:       config.Game.MaxBet,
		startCredits: config.Game.StartCredits,
	}
	for _, c := range poker.Categories() {
		pt.lines[c] = Line{Category: c}
	}

	for _, pay := range config.Pays {
		category, _ := poker.ParseCategory(pay.Category)
		line := Line{
			Category:    category,
			Multiplier:  pay.Multiplier,
			MaxBetBonus: pay.MaxBetBonus,
		}
		if pay.MinRank != "" {
			line.MinRank, _ = poker.ParseRank(pay.MinRank)
			line.HasMinRank = true
		}
		pt.lines[category] = line
	}

	return pt, nil
}

// Default returns the compiled DefaultConfig.
func Default() *Paytable {
	pt, err := New(DefaultConfig())
	if err != nil {
		panic(fmt.Sprintf("default paytable is invalid: %v", err))
	}
	return pt
}

// Load reads filename (or the defaults if it does not exist) and compiles it.
func Load(filename string) (*Paytable, error) {
	config, err := LoadConfig(filename)
	if err != nil {
		return nil, err
	}
	return New(config)
}

// Name returns the display name of the machine.
func (p *Paytable) Name() string { return p.name }

// MaxBet returns the largest bet in coins.
func (p *Paytable) MaxBet() int { return p.maxBet }

// StartCredits returns the credits a new session begins with.
func (p *Paytable) StartCredits() int { return p.startCredits }

// Line returns the paytable row for category.
func (p *Paytable) Line(c poker.Category) Line {
	if !c.Valid() {
		return Line{Category: c}
	}
	return p.lines[c]
}

// Lines returns every row that pays, strongest first.
func (p *Paytable) Lines() []Line {
	var lines []Line
	for i := len(p.lines) - 1; i >= 0; i-- {
		if p.lines[i].Multiplier > 0 {
			lines = append(lines, p.lines[i])
		}
	}
	return lines
}

// Qualifies reports whether the outcome earns its category's pay line.
func (p *Paytable) Qualifies(o poker.Outcome) bool {
	line := p.Line(o.Category)
	if line.Multiplier == 0 {
		return false
	}
	if !line.HasMinRank {
		return true
	}
	rank, ok := primaryRank(o)
	return ok && rank >= line.MinRank
}

// LinePayout returns what the category's line pays at the given bet,
// ignoring any min_rank qualifier.
func (p *Paytable) LinePayout(c poker.Category, bet int) int {
	if bet < 1 || bet > p.maxBet {
		return 0
	}
	line := p.Line(c)
	mult := line.Multiplier
	if bet == p.maxBet && line.MaxBetBonus > 0 {
		mult *= line.MaxBetBonus
	}
	return bet * mult
}

// Multiplier returns the per-coin payout for the outcome at the given bet.
func (p *Paytable) Multiplier(o poker.Outcome, bet int) int {
	if bet < 1 {
		return 0
	}
	return p.Payout(o, bet) / bet
}

// Payout returns the coins won for the outcome at the given bet.
func (p *Paytable) Payout(o poker.Outcome, bet int) int {
	if !p.Qualifies(o) {
		return 0
	}
	return p.LinePayout(o.Category, bet)
}

// primaryRank is the rank a min_rank qualifier applies to.
func primaryRank(o poker.Outcome) (poker.Rank, bool) {
	switch o.Category {
	case poker.HighCard, poker.Pair, poker.ThreeOfAKind, poker.Straight,
		poker.FourOfAKind, poker.StraightFlush:
		return o.Rank, true
	case poker.TwoPair:
		return o.Ranks[1], true
	case poker.FullHouse:
		return o.High, true
	default:
		return 0, false
	}
}

func rankedCategory(c poker.Category) bool {
	_, ok := primaryRank(poker.Outcome{Category: c})
	return ok
}
