package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/videopoker/internal/fileutil"
	"github.com/lox/videopoker/internal/simulator"
	"github.com/lox/videopoker/poker"
)

// SimulateCmd runs a Monte Carlo simulation of many rounds.
type SimulateCmd struct {
	Rounds   int           `short:"n" default:"100000" help:"Number of rounds to simulate"`
	Workers  int           `short:"w" help:"Parallel workers (default: number of CPUs)"`
	Bet      int           `short:"b" help:"Coins per round (default: max bet)"`
	Strategy string        `short:"s" default:"advice" enum:"stand,advice,redraw" help:"Draw strategy (${enum})"`
	Timeout  time.Duration `help:"Abort the run after this long (0 for no limit)"`
	Output   string        `short:"o" type:"path" help:"Also write the report as JSON to this file"`

	clock quartz.Clock `kong:"-"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	logger, err := g.setup()
	if err != nil {
		return err
	}
	pt, err := g.paytable(logger)
	if err != nil {
		return err
	}

	clock := c.clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	sim, err := simulator.New(simulator.Config{
		Rounds:   c.Rounds,
		Workers:  c.Workers,
		Seed:     g.seed(logger),
		Bet:      c.Bet,
		Strategy: simulator.Strategy(c.Strategy),
		Timeout:  c.Timeout,
		Paytable: pt,
		Logger:   logger,
		Clock:    clock,
	})
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	report, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	if c.Output != "" {
		if err := fileutil.WriteJSONAtomic(c.Output, newJSONReport(report)); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info("Wrote report", "path", c.Output)
	}
	return printReport(g, report)
}

type jsonReport struct {
	Paytable   string         `json:"paytable"`
	Strategy   string         `json:"strategy"`
	Seed       int64          `json:"seed"`
	Bet        int            `json:"bet"`
	Workers    int            `json:"workers"`
	Rounds     int            `json:"rounds"`
	Wagered    int64          `json:"wagered"`
	Returned   int64          `json:"returned"`
	ReturnRate float64        `json:"return_rate"`
	HitRate    float64        `json:"hit_rate"`
	MeanNet    float64        `json:"mean_net"`
	StdDev     float64        `json:"std_dev"`
	CI95       [2]float64     `json:"ci95"`
	MaxWin     int            `json:"max_win"`
	ElapsedMS  int64          `json:"elapsed_ms"`
	Categories []jsonCategory `json:"categories"`
}

type jsonCategory struct {
	Category  string  `json:"category"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"`
	Paid      int64   `json:"paid"`
}

func newJSONReport(report *simulator.Report) jsonReport {
	stats := report.Stats
	low, high := stats.ConfidenceInterval95()
	out := jsonReport{
		Paytable:   report.Paytable,
		Strategy:   string(report.Strategy),
		Seed:       report.Seed,
		Bet:        report.Bet,
		Workers:    report.Workers,
		Rounds:     stats.Rounds,
		Wagered:    stats.Wagered,
		Returned:   stats.Returned,
		ReturnRate: stats.ReturnRate(),
		HitRate:    stats.HitRate(),
		MeanNet:    stats.Mean(),
		StdDev:     stats.StdDev(),
		CI95:       [2]float64{low, high},
		MaxWin:     stats.MaxWin,
		ElapsedMS:  report.Elapsed.Milliseconds(),
	}
	for _, c := range poker.Categories() {
		out.Categories = append(out.Categories, jsonCategory{
			Category:  c.Slug(),
			Count:     stats.Categories[c],
			Frequency: stats.Frequency(c),
			Paid:      stats.Paid[c],
		})
	}
	return out
}

func printReport(g *Globals, report *simulator.Report) error {
	stats := report.Stats

	w := tabwriter.NewWriter(g.stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
		headerStyle.Render("category"),
		headerStyle.Render("count"),
		headerStyle.Render("frequency"),
		headerStyle.Render("return"))

	for i := poker.NumCategories - 1; i >= 0; i-- {
		category := poker.Category(i)
		contribution := 0.0
		if stats.Wagered > 0 {
			contribution = float64(stats.Paid[category]) / float64(stats.Wagered)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t\n",
			categoryStyle.Render(category.String()),
			stats.Categories[category],
			percentStyle.Render(fmt.Sprintf("%.4f%%", 100*stats.Frequency(category))),
			fmt.Sprintf("%.4f", contribution))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	low, high := stats.ConfidenceInterval95()
	fmt.Fprintln(g.stdout)
	fmt.Fprintf(g.stdout, "rounds:     %d (%s strategy, %d workers)\n", stats.Rounds, report.Strategy, report.Workers)
	fmt.Fprintf(g.stdout, "return:     %s\n", winStyle.Render(fmt.Sprintf("%.2f%%", 100*stats.ReturnRate())))
	fmt.Fprintf(g.stdout, "hit rate:   %.2f%%\n", 100*stats.HitRate())
	fmt.Fprintf(g.stdout, "net/round:  %.4f coins (95%% CI %.4f to %.4f)\n", stats.Mean(), low, high)
	fmt.Fprintf(g.stdout, "max win:    %d coins\n", stats.MaxWin)
	fmt.Fprintf(g.stdout, "elapsed:    %v (%.0f rounds/s)\n", report.Elapsed.Round(time.Millisecond), report.RoundsPerSecond())
	return nil
}
