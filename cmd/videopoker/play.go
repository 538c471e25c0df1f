package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/videopoker/internal/game"
	"github.com/lox/videopoker/internal/gameid"
	"github.com/lox/videopoker/poker"
)

// PlayCmd plays rounds of draw poker.
type PlayCmd struct {
	Rounds  int    `short:"n" default:"1" help:"Rounds to play (stops early when out of credits)"`
	Bet     int    `short:"b" help:"Coins per round (default: max bet, which deals immediately)"`
	Hold    string `help:"Positions to hold every round, e.g. '1 3 5' (prompts on stdin when unset)"`
	Auto    bool   `help:"Hold the suggested cards each round"`
	History string `type:"path" help:"Directory to append a session log of every round"`
}

func (c *PlayCmd) Run(g *Globals) error {
	logger, err := g.setup()
	if err != nil {
		return err
	}
	if c.Auto && c.Hold != "" {
		return errors.New("--auto and --hold are mutually exclusive")
	}

	pt, err := g.paytable(logger)
	if err != nil {
		return err
	}
	bet := c.Bet
	if bet == 0 {
		bet = pt.MaxBet()
	}
	if bet < 1 || bet > pt.MaxBet() {
		return fmt.Errorf("%w: %d (1-%d)", game.ErrBetOutOfRange, bet, pt.MaxBet())
	}

	var fixedHold []int
	if c.Hold != "" {
		if fixedHold, err = parseHold(c.Hold); err != nil {
			return err
		}
	}

	sessionID := gameid.Generate(time.Now())
	logger = logger.With("session", sessionID)

	session := game.NewSession(pt, g.rng(logger), logger)
	if c.History != "" {
		writer := game.NewFileHistoryWriter(c.History, sessionID)
		session.SetHistoryWriter(writer)
		logger.Info("Writing session history", "path", writer.Path())
	}

	p := &player{
		session: session,
		logger:  logger,
		in:      bufio.NewScanner(g.stdin),
		out:     g.stdout,
		bet:     bet,
		auto:    c.Auto,
		hold:    fixedHold,
		prompt:  c.Hold == "" && !c.Auto,
	}
	return p.play(c.Rounds)
}

type player struct {
	session *game.Session
	logger  *log.Logger
	in      *bufio.Scanner
	out     io.Writer
	bet     int
	auto    bool
	hold    []int
	prompt  bool
}

func (p *player) play(rounds int) error {
	s := p.session
	fmt.Fprintf(p.out, "%s  %s\n", headerStyle.Render(s.Paytable().Name()), renderCredits(s.Credits()))

	for i := 0; i < rounds; i++ {
		if s.Credits() < p.bet {
			fmt.Fprintf(p.out, "Not enough credits for a %d coin bet\n", p.bet)
			break
		}

		if err := p.deal(); err != nil {
			return err
		}

		hold, err := p.chooseHold()
		if errors.Is(err, io.EOF) {
			p.logger.Debug("Input closed, standing on dealt hand")
			hold = []int{0, 1, 2, 3, 4}
		} else if err != nil {
			return err
		}
		if err := s.Hold(hold...); err != nil {
			return err
		}

		result, err := s.Draw()
		if err != nil {
			return err
		}
		fmt.Fprintf(p.out, "%s\n%s  %s  %s\n\n",
			renderTable(result.Final, result.Held),
			renderOutcome(result.Outcome), renderWin(result.Win), renderCredits(result.Credits))
	}

	fmt.Fprintf(p.out, "Played %d rounds, %s\n", s.Round(), renderCredits(s.Credits()))
	return nil
}

func (p *player) deal() error {
	s := p.session
	var err error
	if p.bet == s.Paytable().MaxBet() {
		_, err = s.MaxBet()
	} else {
		if err = s.Bet(p.bet); err == nil {
			_, err = s.Deal()
		}
	}
	if err != nil {
		return fmt.Errorf("round %d: %w", s.Round()+1, err)
	}

	fmt.Fprintf(p.out, "%s  bet %d\n%s\n", headerStyle.Render(fmt.Sprintf("Round %d", s.Round())), s.CurrentBet(),
		renderTable(s.Hand(), s.Held()))
	fmt.Fprintf(p.out, "%s\n", renderOutcome(s.Outcome()))
	return nil
}

func (p *player) chooseHold() ([]int, error) {
	hand := p.session.Hand()
	switch {
	case p.auto:
		advice := poker.SuggestHolds(hand)
		fmt.Fprintf(p.out, "Holding: %s\n", formatAdvice(hand, advice))
		return advice.Positions(), nil
	case !p.prompt:
		return p.hold, nil
	}

	for {
		fmt.Fprint(p.out, "Hold (e.g. 1 3 5, enter for none, 'all' to stand): ")
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}
		hold, err := parseHold(p.in.Text())
		if err == nil {
			return hold, nil
		}
		fmt.Fprintf(p.out, "%v\n", err)
	}
}
