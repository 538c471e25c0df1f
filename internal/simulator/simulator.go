// Package simulator plays large numbers of video poker rounds in parallel
// to estimate hand frequencies and the return of a paytable.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/videopoker/internal/paytable"
	"github.com/lox/videopoker/internal/randutil"
	"github.com/lox/videopoker/internal/statistics"
	"github.com/lox/videopoker/poker"
	"golang.org/x/sync/errgroup"
)

// Strategy decides which cards to keep before the draw.
type Strategy string

const (
	// StrategyStand scores the dealt hand with no draw.
	StrategyStand Strategy = "stand"
	// StrategyAdvice holds the cards suggested by poker.SuggestHolds.
	StrategyAdvice Strategy = "advice"
	// StrategyRedraw discards all five cards.
	StrategyRedraw Strategy = "redraw"
)

// Strategies lists the supported strategies.
func Strategies() []Strategy {
	return []Strategy{StrategyStand, StrategyAdvice, StrategyRedraw}
}

// ErrTimeout is returned when a run exceeds Config.Timeout.
var ErrTimeout = errors.New("simulation timed out")

// checkEvery is how many rounds a worker plays between cancellation checks.
const checkEvery = 1024

// Config holds configuration for running simulations
type Config struct {
	Rounds   int
	Workers  int
	Seed     int64
	Bet      int
	Strategy Strategy
	Timeout  time.Duration
	Paytable *paytable.Paytable
	Logger   *log.Logger
	Clock    quartz.Clock
}

// Report is the result of a simulation run.
type Report struct {
	Stats    *statistics.Statistics
	Paytable string
	Seed     int64
	Bet      int
	Workers  int
	Strategy Strategy
	Elapsed  time.Duration
}

// RoundsPerSecond returns the simulation throughput.
func (r *Report) RoundsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Stats.Rounds) / r.Elapsed.Seconds()
}

// Simulator runs video poker simulations
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a new simulator, filling in defaults for unset fields.
func New(config Config) (*Simulator, error) {
	if config.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", config.Rounds)
	}
	if config.Paytable == nil {
		config.Paytable = paytable.Default()
	}
	if config.Bet == 0 {
		config.Bet = config.Paytable.MaxBet()
	}
	if config.Bet < 1 || config.Bet > config.Paytable.MaxBet() {
		return nil, fmt.Errorf("bet must be between 1 and %d, got %d", config.Paytable.MaxBet(), config.Bet)
	}
	if config.Strategy == "" {
		config.Strategy = StrategyAdvice
	}
	switch config.Strategy {
	case StrategyStand, StrategyAdvice, StrategyRedraw:
	default:
		return nil, fmt.Errorf("unknown strategy %q", config.Strategy)
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Workers > config.Rounds {
		config.Workers = config.Rounds
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}

	return &Simulator{config: config, logger: config.Logger.WithPrefix("simulator")}, nil
}

// Run plays Config.Rounds rounds split across workers. Results for a given
// seed and worker count are deterministic.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	cfg := s.config
	start := cfg.Clock.Now()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	if cfg.Timeout > 0 {
		timer := cfg.Clock.AfterFunc(cfg.Timeout, func() {
			cancel(ErrTimeout)
		}, "simulator", "timeout")
		defer timer.Stop()
	}

	s.logger.Debug("Starting simulation",
		"rounds", cfg.Rounds,
		"workers", cfg.Workers,
		"strategy", cfg.Strategy,
		"bet", cfg.Bet,
		"seed", cfg.Seed)

	// Workers write only their own slot and are merged in worker order.
	partials := make([]*statistics.Statistics, cfg.Workers)
	g, gctx := errgroup.WithContext(ctx)

	perWorker := cfg.Rounds / cfg.Workers
	extra := cfg.Rounds % cfg.Workers
	for w := 0; w < cfg.Workers; w++ {
		rounds := perWorker
		if w < extra {
			rounds++
		}
		seed := randutil.Derive(cfg.Seed, w)

		g.Go(func() error {
			stats, err := s.runWorker(gctx, seed, rounds)
			if err != nil {
				return err
			}
			partials[w] = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if cause := context.Cause(ctx); errors.Is(cause, ErrTimeout) {
			return nil, fmt.Errorf("%w after %v", ErrTimeout, cfg.Timeout)
		}
		return nil, err
	}

	total := &statistics.Statistics{}
	for _, p := range partials {
		total.Merge(p)
	}
	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	report := &Report{
		Stats:    total,
		Paytable: cfg.Paytable.Name(),
		Seed:     cfg.Seed,
		Bet:      cfg.Bet,
		Workers:  cfg.Workers,
		Strategy: cfg.Strategy,
		Elapsed:  cfg.Clock.Since(start),
	}
	s.logger.Debug("Simulation complete",
		"rounds", total.Rounds,
		"return", fmt.Sprintf("%.4f", total.ReturnRate()),
		"elapsed", report.Elapsed)
	return report, nil
}

func (s *Simulator) runWorker(ctx context.Context, seed int64, rounds int) (*statistics.Statistics, error) {
	deck := poker.NewDeck(randutil.New(seed))
	stats := &statistics.Statistics{}

	for i := 0; i < rounds; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		final, err := s.playRound(deck)
		if err != nil {
			return nil, fmt.Errorf("worker seed %d round %d: %w", seed, i, err)
		}

		outcome := poker.Evaluate(final)
		stats.Add(statistics.RoundResult{
			Category: outcome.Category,
			Bet:      s.config.Bet,
			Win:      s.config.Paytable.Payout(outcome, s.config.Bet),
			Seed:     seed,
		})
	}
	return stats, nil
}

// playRound deals a fresh hand and applies the configured draw strategy.
func (s *Simulator) playRound(deck *poker.Deck) (poker.Hand, error) {
	deck.Shuffle()
	hand, err := deck.DealHand()
	if err != nil {
		return hand, err
	}

	var held [poker.HandSize]bool
	switch s.config.Strategy {
	case StrategyStand:
		return hand, nil
	case StrategyAdvice:
		held = poker.SuggestHolds(hand).Hold
	}

	for i, keep := range held {
		if keep {
			continue
		}
		card, err := deck.DealOne()
		if err != nil {
			return hand, err
		}
		hand[i] = card
	}
	return hand, nil
}
