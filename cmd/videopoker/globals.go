package main

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/videopoker/internal/paytable"
	"github.com/lox/videopoker/internal/randutil"
	"github.com/muesli/termenv"
)

// Globals are flags shared by every subcommand.
type Globals struct {
	Config   string `short:"c" type:"path" default:"videopoker.hcl" help:"Paytable HCL file; built-in Jacks or Better if missing"`
	LogLevel string `default:"warn" enum:"debug,info,warn,error" help:"Log level (${enum})"`
	NoColor  bool   `help:"Disable colored output"`
	Seed     int64  `help:"RNG seed for reproducible deals (0 picks one from the clock)"`

	stdin  io.Reader `kong:"-"`
	stdout io.Writer `kong:"-"`
}

// setup applies output settings and returns a logger writing to stderr.
func (g *Globals) setup() (*log.Logger, error) {
	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return newLogger(os.Stderr, g.LogLevel)
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	}), nil
}

func (g *Globals) paytable(logger *log.Logger) (*paytable.Paytable, error) {
	pt, err := paytable.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load paytable %s: %w", g.Config, err)
	}
	logger.Debug("Loaded paytable", "file", g.Config, "name", pt.Name(), "max_bet", pt.MaxBet())
	return pt, nil
}

func (g *Globals) seed(logger *log.Logger) int64 {
	seed := randutil.Resolve(g.Seed, time.Now())
	logger.Info("Using seed", "seed", seed)
	return seed
}

func (g *Globals) rng(logger *log.Logger) *rand.Rand {
	return randutil.New(g.seed(logger))
}

// signalContext is cancelled on interrupt or SIGTERM.
func signalContext(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Received signal, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
