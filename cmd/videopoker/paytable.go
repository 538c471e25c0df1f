package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/lox/videopoker/internal/paytable"
)

// PaytableCmd prints the active paytable.
type PaytableCmd struct{}

func (c *PaytableCmd) Run(g *Globals) error {
	logger, err := g.setup()
	if err != nil {
		return err
	}
	pt, err := g.paytable(logger)
	if err != nil {
		return err
	}
	return printPaytable(g, pt)
}

func printPaytable(g *Globals, pt *paytable.Paytable) error {
	fmt.Fprintf(g.stdout, "%s  (max bet %d, start credits %d)\n\n",
		headerStyle.Render(pt.Name()), pt.MaxBet(), pt.StartCredits())

	w := tabwriter.NewWriter(g.stdout, 0, 0, 2, ' ', 0)
	header := []string{headerStyle.Render("hand")}
	for coins := 1; coins <= pt.MaxBet(); coins++ {
		header = append(header, headerStyle.Render(fmt.Sprintf("%d coin", coins)))
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))

	for _, line := range pt.Lines() {
		label := line.Category.String()
		if line.HasMinRank {
			label = fmt.Sprintf("%s (%s or better)", label, line.MinRank.Plural())
		}
		row := []string{categoryStyle.Render(label)}
		for coins := 1; coins <= pt.MaxBet(); coins++ {
			row = append(row, fmt.Sprintf("%d", pt.LinePayout(line.Category, coins)))
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}
