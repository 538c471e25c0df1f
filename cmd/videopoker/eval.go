package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/lox/videopoker/poker"
)

// EvalCmd classifies hands.
type EvalCmd struct {
	Hands  []string `arg:"" help:"Hands such as 'As Ks Qs Js Ts' or AsKsQsJsTs (quote hands with spaces)" required:"true"`
	Advice bool     `short:"a" help:"Show suggested holds for each hand"`
}

func (c *EvalCmd) Run(g *Globals) error {
	logger, err := g.setup()
	if err != nil {
		return err
	}

	hands := make([]poker.Hand, len(c.Hands))
	for i, arg := range c.Hands {
		hands[i], err = parseHand(arg)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
	}

	w := tabwriter.NewWriter(g.stdout, 0, 0, 2, ' ', 0)
	header := []string{"hand", "category", "description", "key"}
	if c.Advice {
		header = append(header, "hold")
	}
	for i, h := range header {
		header[i] = headerStyle.Render(h)
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))

	for _, h := range hands {
		outcome := poker.Evaluate(h)
		logger.Debug("Evaluated hand", "hand", h, "category", outcome.Category.Slug(), "key", outcome.Key())

		row := []string{
			renderHand(h),
			outcome.Category.String(),
			renderOutcome(outcome),
			fmt.Sprintf("0x%03x", outcome.Key()),
		}
		if c.Advice {
			row = append(row, formatAdvice(h, poker.SuggestHolds(h)))
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}

func formatAdvice(h poker.Hand, advice poker.Advice) string {
	positions := advice.Positions()
	if len(positions) == 0 {
		return string(advice.Category)
	}
	held := make([]string, len(positions))
	for i, p := range positions {
		held[i] = h[p].String()
	}
	return fmt.Sprintf("%s (%s)", advice.Category, strings.Join(held, " "))
}

// CompareCmd ranks two hands.
type CompareCmd struct {
	First  string `arg:"" help:"First hand"`
	Second string `arg:"" help:"Second hand"`
}

func (c *CompareCmd) Run(g *Globals) error {
	logger, err := g.setup()
	if err != nil {
		return err
	}

	hands, err := parseHands([]string{c.First, c.Second})
	if err != nil {
		return err
	}
	a, b := poker.Evaluate(hands[0]), poker.Evaluate(hands[1])
	result := a.Compare(b)
	logger.Debug("Compared hands", "first", a.Key(), "second", b.Key(), "result", result)

	fmt.Fprintf(g.stdout, "%s  %s\n", renderHand(hands[0]), renderOutcome(a))
	fmt.Fprintf(g.stdout, "%s  %s\n", renderHand(hands[1]), renderOutcome(b))

	switch result {
	case 1:
		fmt.Fprintln(g.stdout, winStyle.Render("first hand wins"))
	case -1:
		fmt.Fprintln(g.stdout, winStyle.Render("second hand wins"))
	default:
		fmt.Fprintln(g.stdout, loseStyle.Render("tie"))
	}
	return nil
}
