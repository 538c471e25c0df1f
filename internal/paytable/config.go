package paytable

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/videopoker/poker"
)

// Config is the on-disk form of a paytable.
type Config struct {
	Game *GameSettings `hcl:"game,block"`
	Pays []PayConfig   `hcl:"pay,block"`
}

// GameSettings contains machine-level configuration
type GameSettings struct {
	Name         string `hcl:"name,optional"`
	MaxBet       int    `hcl:"max_bet,optional"`
	StartCredits int    `hcl:"start_credits,optional"`
}

// PayConfig is a single paytable line keyed by category slug, e.g.
// pay "full_house" { multiplier = 9 }.
type PayConfig struct {
	Category    string `hcl:"category,label"`
	Multiplier  int    `hcl:"multiplier"`
	MinRank     string `hcl:"min_rank,optional"`
	MaxBetBonus int    `hcl:"max_bet_bonus,optional"`
}

const (
	defaultName         = "Jacks or Better"
	defaultMaxBet       = 5
	defaultStartCredits = 100
)

// DefaultConfig returns the classic 9/6 Jacks or Better table.
func DefaultConfig() *Config {
	return &Config{
		Game: &GameSettings{
			Name:         defaultName,
			MaxBet:       defaultMaxBet,
			StartCredits: defaultStartCredits,
		},
		Pays: []PayConfig{
			{Category: "pair", Multiplier: 1, MinRank: "J"},
			{Category: "two_pair", Multiplier: 2},
			{Category: "three_of_a_kind", Multiplier: 3},
			{Category: "straight", Multiplier: 4},
			{Category: "flush", Multiplier: 6},
			{Category: "full_house", Multiplier: 9},
			{Category: "four_of_a_kind", Multiplier: 25},
			{Category: "straight_flush", Multiplier: 50},
			{Category: "royal_flush", Multiplier: 250, MaxBetBonus: 4},
		},
	}
}

// LoadConfig loads a paytable configuration from an HCL file. A missing file
// yields DefaultConfig.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file)
}

// ParseConfig parses paytable HCL from memory. filename is used in
// diagnostics only.
func ParseConfig(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file)
}

func decode(file *hcl.File) (*Config, error) {
	var config Config
	diags := gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Game == nil {
		config.Game = &GameSettings{}
	}
	if config.Game.Name == "" {
		config.Game.Name = defaultName
	}
	if config.Game.MaxBet == 0 {
		config.Game.MaxBet = defaultMaxBet
	}
	if config.Game.StartCredits == 0 {
		config.Game.StartCredits = defaultStartCredits
	}
	if len(config.Pays) == 0 {
		config.Pays = DefaultConfig().Pays
	}

	return &config, nil
}

// Validate validates the paytable configuration
func (c *Config) Validate() error {
	if c.Game == nil {
		return fmt.Errorf("missing game block")
	}
	if c.Game.MaxBet < 1 {
		return fmt.Errorf("invalid max_bet: %d", c.Game.MaxBet)
	}
	if c.Game.StartCredits < 0 {
		return fmt.Errorf("invalid start_credits: %d", c.Game.StartCredits)
	}

	seen := make(map[poker.Category]bool)
	for _, pay := range c.Pays {
		category, err := poker.ParseCategory(pay.Category)
		if err != nil {
			return fmt.Errorf("pay %q: %w", pay.Category, err)
		}
		if seen[category] {
			return fmt.Errorf("duplicate pay line for %q", pay.Category)
		}
		seen[category] = true

		if pay.Multiplier < 0 {
			return fmt.Errorf("pay %q: invalid multiplier %d", pay.Category, pay.Multiplier)
		}
		if pay.MaxBetBonus < 0 {
			return fmt.Errorf("pay %q: invalid max_bet_bonus %d", pay.Category, pay.MaxBetBonus)
		}
		if pay.MinRank != "" {
			if _, err := poker.ParseRank(pay.MinRank); err != nil {
				return fmt.Errorf("pay %q: %w", pay.Category, err)
			}
			if !rankedCategory(category) {
				return fmt.Errorf("pay %q: min_rank is not supported for this category", pay.Category)
			}
		}
	}

	return nil
}
