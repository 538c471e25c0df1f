package game

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/videopoker/internal/paytable"
	"github.com/lox/videopoker/poker"
)

// Stage is the position of a session within a round.
type Stage uint8

const (
	// StageStart accepts bets; the previous hand, if any, has been paid.
	StageStart Stage = iota
	// StageDealt has five cards on the table waiting for holds and a draw.
	StageDealt
	// StageEnd shows the final hand and win until the next bet.
	StageEnd
)

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StageDealt:
		return "dealt"
	case StageEnd:
		return "end"
	default:
		return "unknown"
	}
}

var (
	ErrRoundInProgress     = errors.New("round in progress, draw first")
	ErrNotDealt            = errors.New("no hand dealt")
	ErrNoBet               = errors.New("no bet placed")
	ErrBetOutOfRange       = errors.New("bet out of range")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrHoldOutOfRange      = errors.New("hold position out of range")
)

// Result summarises a completed round.
type Result struct {
	Round   int
	Bet     int
	Dealt   poker.Hand
	Held    [poker.HandSize]bool
	Final   poker.Hand
	Outcome poker.Outcome
	Win     int
	Credits int
}

// Summary renders the round on a single line.
func (r Result) Summary() string {
	return fmt.Sprintf("round=%d bet=%d dealt=[%s] held=%v final=[%s] outcome=%q win=%d credits=%d",
		r.Round, r.Bet, r.Dealt, heldPositions(r.Held), r.Final, r.Outcome.Describe(), r.Win, r.Credits)
}

// Session is a single-player draw poker machine: bet, deal, hold, draw.
// A Session is not safe for concurrent use.
type Session struct {
	paytable *paytable.Paytable
	deck     *poker.Deck
	logger   *log.Logger
	history  HistoryWriter

	stage   Stage
	credits int
	bet     int
	round   int
	dealt   poker.Hand
	hand    poker.Hand
	held    [poker.HandSize]bool
	outcome poker.Outcome
	win     int
}

// NewSession creates a session funded with the paytable's starting credits.
func NewSession(pt *paytable.Paytable, rng *rand.Rand, logger *log.Logger) *Session {
	return &Session{
		paytable: pt,
		deck:     poker.NewDeck(rng),
		logger:   logger.WithPrefix("game"),
		history:  &NoOpHistoryWriter{},
		credits:  pt.StartCredits(),
	}
}

// SetHistoryWriter records each completed round with w.
func (s *Session) SetHistoryWriter(w HistoryWriter) {
	s.history = w
}

func (s *Session) Stage() Stage { return s.stage }
func (s *Session) Credits() int { return s.credits }
func (s *Session) CurrentBet() int { return s.bet }
func (s *Session) Round() int { return s.round }
func (s *Session) Hand() poker.Hand { return s.hand }
func (s *Session) Held() [poker.HandSize]bool { return s.held }
func (s *Session) Outcome() poker.Outcome { return s.outcome }
func (s *Session) Win() int { return s.win }
func (s *Session) Paytable() *paytable.Paytable { return s.paytable }

// Bet adds coins to the current bet and debits them from credits. Betting
// after a finished round starts a new one.
func (s *Session) Bet(coins int) error {
	if s.stage == StageDealt {
		return ErrRoundInProgress
	}
	if s.stage == StageEnd {
		s.bet = 0
		s.win = 0
		s.stage = StageStart
	}

	if coins < 1 || s.bet+coins > s.paytable.MaxBet() {
		return fmt.Errorf("%w: %d coins with %d already bet, max %d",
			ErrBetOutOfRange, coins, s.bet, s.paytable.MaxBet())
	}
	if coins > s.credits {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientCredits, coins, s.credits)
	}

	s.bet += coins
	s.credits -= coins
	s.logger.Debug("Bet placed", "coins", coins, "bet", s.bet, "credits", s.credits)
	return nil
}

// MaxBet raises the bet to the machine maximum and deals immediately.
func (s *Session) MaxBet() (poker.Hand, error) {
	if s.stage == StageDealt {
		return poker.Hand{}, ErrRoundInProgress
	}
	current := s.bet
	if s.stage == StageEnd {
		current = 0
	}
	if remaining := s.paytable.MaxBet() - current; remaining > 0 {
		if err := s.Bet(remaining); err != nil {
			return poker.Hand{}, err
		}
	}
	return s.Deal()
}

// Deal shuffles and deals five fresh cards against the current bet.
func (s *Session) Deal() (poker.Hand, error) {
	switch {
	case s.stage == StageDealt:
		return poker.Hand{}, ErrRoundInProgress
	case s.stage == StageEnd || s.bet == 0:
		return poker.Hand{}, ErrNoBet
	}

	s.deck.Shuffle()
	hand, err := s.deck.DealHand()
	if err != nil {
		return poker.Hand{}, fmt.Errorf("failed to deal: %w", err)
	}

	s.round++
	s.dealt = hand
	s.hand = hand
	s.held = [poker.HandSize]bool{}
	s.outcome = poker.Evaluate(hand)
	s.stage = StageDealt

	s.logger.Debug("Dealt hand", "round", s.round, "hand", hand, "outcome", s.outcome)
	return hand, nil
}

// Toggle flips the hold flag on the card at position (0-based).
func (s *Session) Toggle(position int) error {
	if err := s.checkHold(position); err != nil {
		return err
	}
	s.held[position] = !s.held[position]
	return nil
}

// Hold replaces the hold set with the given positions (0-based).
func (s *Session) Hold(positions ...int) error {
	var held [poker.HandSize]bool
	for _, p := range positions {
		if err := s.checkHold(p); err != nil {
			return err
		}
		held[p] = true
	}
	s.held = held
	return nil
}

func (s *Session) checkHold(position int) error {
	if s.stage != StageDealt {
		return ErrNotDealt
	}
	if position < 0 || position >= poker.HandSize {
		return fmt.Errorf("%w: %d", ErrHoldOutOfRange, position)
	}
	return nil
}

// Draw replaces every card not held from the same deck, settles the bet
// against the paytable and ends the round.
func (s *Session) Draw() (Result, error) {
	if s.stage != StageDealt {
		return Result{}, ErrNotDealt
	}

	for i, keep := range s.held {
		if keep {
			continue
		}
		card, err := s.deck.DealOne()
		if err != nil {
			return Result{}, fmt.Errorf("failed to draw: %w", err)
		}
		s.hand[i] = card
	}

	s.outcome = poker.Evaluate(s.hand)
	s.win = s.paytable.Payout(s.outcome, s.bet)
	s.credits += s.win
	s.stage = StageEnd

	result := Result{
		Round:   s.round,
		Bet:     s.bet,
		Dealt:   s.dealt,
		Held:    s.held,
		Final:   s.hand,
		Outcome: s.outcome,
		Win:     s.win,
		Credits: s.credits,
	}

	s.logger.Debug("Round complete", "round", s.round, "outcome", s.outcome, "win", s.win, "credits", s.credits)
	if err := s.history.WriteRound(result); err != nil {
		s.logger.Error("Failed to save round history", "error", err, "round", s.round)
	}

	s.held = [poker.HandSize]bool{}
	return result, nil
}

// CanPlay reports whether the session has credits for at least one coin.
func (s *Session) CanPlay() bool {
	return s.stage == StageDealt || s.credits > 0
}

func heldPositions(held [poker.HandSize]bool) []int {
	positions := []int{}
	for i, h := range held {
		if h {
			positions = append(positions, i+1)
		}
	}
	return positions
}
