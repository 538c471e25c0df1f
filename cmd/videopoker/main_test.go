package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
	"github.com/lox/videopoker/internal/gameid"
	"github.com/lox/videopoker/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGlobals(t *testing.T, stdin string) (*Globals, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &Globals{
		Config:   filepath.Join(t.TempDir(), "missing.hcl"),
		LogLevel: "error",
		Seed:     42,
		stdin:    strings.NewReader(stdin),
		stdout:   &out,
	}, &out
}

func TestParseHold(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected []int
		hasError bool
	}{
		{name: "empty", input: "", expected: nil},
		{name: "none", input: "none", expected: nil},
		{name: "all", input: "ALL", expected: []int{0, 1, 2, 3, 4}},
		{name: "spaces", input: "1 3 5", expected: []int{0, 2, 4}},
		{name: "commas", input: "2,4", expected: []int{1, 3}},
		{name: "run together", input: "135", expected: []int{0, 2, 4}},
		{name: "repeated", input: "1 1", expected: []int{0}},
		{name: "out of range", input: "6", hasError: true},
		{name: "zero", input: "0", hasError: true},
		{name: "not a number", input: "x", hasError: true},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseHold(tc.input)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestParseHand(t *testing.T) {
	t.Parallel()
	h, err := parseHand("AsKsQsJsTs")
	require.NoError(t, err)
	assert.Equal(t, poker.MustParseHand("As Ks Qs Js Ts"), h)

	_, err = parseHand("As Ks Qs Js")
	assert.ErrorIs(t, err, poker.ErrHandSize)

	_, err = parseHand("As As Qs Js Ts")
	assert.ErrorIs(t, err, poker.ErrDuplicateCard)

	_, err = parseHand("As Ks Qs Js Tx")
	assert.ErrorIs(t, err, poker.ErrInvalidCard)

	_, err = parseHands([]string{"As Ks Qs Js Ts", "Ah Kh Qh Jh As"})
	assert.ErrorIs(t, err, poker.ErrDuplicateCard)
}

func TestEvalCmd(t *testing.T) {
	t.Parallel()
	g, out := testGlobals(t, "")
	cmd := &EvalCmd{Hands: []string{"Ts Js Qs Ks As", "3s 3h 3d 8c 8s"}, Advice: true}
	require.NoError(t, cmd.Run(g))

	output := out.String()
	assert.Contains(t, output, "Royal Flush")
	assert.Contains(t, output, "0x900")
	assert.Contains(t, output, "Full House (3s over 8s)")
	assert.Contains(t, output, "0x616")
	assert.Contains(t, output, "Made Hand (Ts Js Qs Ks As)")

	bad := &EvalCmd{Hands: []string{"As Ks"}}
	err := bad.Run(g)
	assert.ErrorIs(t, err, poker.ErrHandSize)
}

func TestCompareCmd(t *testing.T) {
	t.Parallel()
	tests := []struct {
		first, second string
		want          string
	}{
		{"9s 9h 9d 2c 2s", "3s 3h 3d 8c 8h", "first hand wins"},
		{"Ah 2d 3c 4s 5h", "2h 3d 4c 5s 6h", "second hand wins"},
		{"Ts Js Qs Ks As", "Th Jh Qh Kh Ah", "tie"},
	}

	for _, tc := range tests {
		g, out := testGlobals(t, "")
		cmd := &CompareCmd{First: tc.first, Second: tc.second}
		require.NoError(t, cmd.Run(g))
		assert.Contains(t, out.String(), tc.want)
	}
}

func TestPlayCmd(t *testing.T) {
	t.Parallel()

	t.Run("prompted holds", func(t *testing.T) {
		t.Parallel()
		g, out := testGlobals(t, "1 2\nall\n")
		cmd := &PlayCmd{Rounds: 2, Bet: 1}
		require.NoError(t, cmd.Run(g))
		assert.Contains(t, out.String(), "Round 1")
		assert.Contains(t, out.String(), "Round 2")
		assert.Contains(t, out.String(), "Played 2 rounds")
	})

	t.Run("auto holds at max bet", func(t *testing.T) {
		t.Parallel()
		g, out := testGlobals(t, "")
		cmd := &PlayCmd{Rounds: 3, Auto: true}
		require.NoError(t, cmd.Run(g))
		assert.Contains(t, out.String(), "bet 5")
		assert.Contains(t, out.String(), "Holding:")
		assert.Contains(t, out.String(), "Played 3 rounds")
	})

	t.Run("closed input stands", func(t *testing.T) {
		t.Parallel()
		g, out := testGlobals(t, "")
		cmd := &PlayCmd{Rounds: 1}
		require.NoError(t, cmd.Run(g))
		assert.Contains(t, out.String(), "Played 1 rounds")
	})

	t.Run("history file", func(t *testing.T) {
		t.Parallel()
		g, _ := testGlobals(t, "")
		dir := t.TempDir()
		cmd := &PlayCmd{Rounds: 2, Hold: "1", History: dir}
		require.NoError(t, cmd.Run(g))
		files, err := filepath.Glob(filepath.Join(dir, "session_*.log"))
		require.NoError(t, err)
		require.Len(t, files, 1)

		id := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(files[0]), "session_"), ".log")
		assert.NoError(t, gameid.Validate(id))
	})

	t.Run("invalid flags", func(t *testing.T) {
		t.Parallel()
		g, _ := testGlobals(t, "")
		assert.Error(t, (&PlayCmd{Rounds: 1, Bet: 9}).Run(g))
		assert.Error(t, (&PlayCmd{Rounds: 1, Auto: true, Hold: "1"}).Run(g))
		assert.Error(t, (&PlayCmd{Rounds: 1, Hold: "7"}).Run(g))
	})
}

func TestPaytableCmd(t *testing.T) {
	t.Parallel()
	g, out := testGlobals(t, "")
	require.NoError(t, (&PaytableCmd{}).Run(g))

	output := out.String()
	assert.Contains(t, output, "Jacks or Better")
	assert.Contains(t, output, "Pair (Jacks or better)")
	assert.Contains(t, output, "5000")
	assert.Less(t, strings.Index(output, "Royal Flush"), strings.Index(output, "Two Pair"))
}

func TestSimulateCmd(t *testing.T) {
	t.Parallel()
	g, out := testGlobals(t, "")
	cmd := &SimulateCmd{Rounds: 2000, Workers: 2, Strategy: "advice", clock: quartz.NewMock(t)}
	require.NoError(t, cmd.Run(g))

	output := out.String()
	assert.Contains(t, output, "Royal Flush")
	assert.Contains(t, output, "rounds:     2000 (advice strategy, 2 workers)")
	assert.Contains(t, output, "return:")
}

func TestSimulateCmdOutput(t *testing.T) {
	t.Parallel()
	g, _ := testGlobals(t, "")
	path := filepath.Join(t.TempDir(), "reports", "run.json")
	cmd := &SimulateCmd{Rounds: 500, Workers: 1, Strategy: "stand", Output: path, clock: quartz.NewMock(t)}
	require.NoError(t, cmd.Run(g))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report jsonReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "Jacks or Better", report.Paytable)
	assert.Equal(t, "stand", report.Strategy)
	assert.Equal(t, int64(42), report.Seed)
	assert.Equal(t, 5, report.Bet)
	assert.Equal(t, 500, report.Rounds)
	assert.Equal(t, int64(2500), report.Wagered)
	require.Len(t, report.Categories, poker.NumCategories)
	assert.Equal(t, "high_card", report.Categories[0].Category)

	total := 0
	for _, c := range report.Categories {
		total += c.Count
	}
	assert.Equal(t, 500, total)
}

func TestCLIParsing(t *testing.T) {
	t.Parallel()
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"}, kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"--seed", "7", "--log-level", "debug", "play", "-n", "3", "--auto"})
	require.NoError(t, err)
	assert.Equal(t, "play", ctx.Command())
	assert.Equal(t, int64(7), cli.Seed)
	assert.Equal(t, "debug", cli.LogLevel)
	assert.Equal(t, 3, cli.Play.Rounds)
	assert.True(t, cli.Play.Auto)

	_, err = parser.Parse([]string{"--log-level", "loud", "paytable"})
	assert.Error(t, err)

	ctx, err = parser.Parse([]string{"simulate", "--strategy", "stand", "--timeout", "2s"})
	require.NoError(t, err)
	assert.Equal(t, "simulate", ctx.Command())
	assert.Equal(t, "stand", cli.Simulate.Strategy)
	assert.Equal(t, "2s", cli.Simulate.Timeout.String())
}
