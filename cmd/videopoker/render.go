package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/videopoker/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	redCardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	blackCardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	heldStyle = lipgloss.NewStyle().
			Underline(true)

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	loseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	creditStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

func renderCard(c poker.Card) string {
	if c.Suit().IsRed() {
		return redCardStyle.Render(c.Pretty())
	}
	return blackCardStyle.Render(c.Pretty())
}

func renderHand(h poker.Hand) string {
	cards := make([]string, len(h))
	for i, c := range h {
		cards[i] = renderCard(c)
	}
	return strings.Join(cards, " ")
}

// renderTable shows the hand with 1-based positions, marking held cards.
func renderTable(h poker.Hand, held [poker.HandSize]bool) string {
	var positions, cards []string
	for i, c := range h {
		label := fmt.Sprintf("%d", i+1)
		card := renderCard(c)
		if held[i] {
			label += "*"
			card = heldStyle.Render(card)
		}
		width := max(len([]rune(c.Pretty())), len(label))
		positions = append(positions, fmt.Sprintf("%-*s", width, label))
		cards = append(cards, card+strings.Repeat(" ", width-len([]rune(c.Pretty()))))
	}
	return strings.Join(cards, "  ") + "\n" + strings.Join(positions, "  ")
}

func renderOutcome(o poker.Outcome) string {
	return categoryStyle.Render(o.Describe())
}

func renderWin(win int) string {
	if win == 0 {
		return loseStyle.Render("no win")
	}
	return winStyle.Render(fmt.Sprintf("WIN %d", win))
}

func renderCredits(credits int) string {
	return creditStyle.Render(fmt.Sprintf("credits %d", credits))
}
