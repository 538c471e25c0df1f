// Package game implements a single-player five-card draw poker machine.
//
// A Session walks through three stages per round:
//
//	start  bet 1..MaxBet coins (credits are debited as coins go in)
//	dealt  five cards are on the table, toggle holds
//	end    unheld cards were replaced from the same deck and the bet paid
//
// # Basic Usage
//
//	s := game.NewSession(paytable.Default(), randutil.New(42), logger)
//	_ = s.Bet(1)
//	hand, _ := s.Deal()
//	_ = s.Hold(0, 2)
//	result, _ := s.Draw()
//	fmt.Println(result.Outcome, result.Win, s.Credits())
//
// MaxBet bets the machine maximum and deals in one step.
//
// # Deterministic Testing
//
// Sessions take a *rand.Rand; pass randutil.New(seed) to replay the same
// sequence of deals.
package game
