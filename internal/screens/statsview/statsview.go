// Package statsview renders question bank statistics.
package statsview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizforge/internal/bank"
	"github.com/abhisek/quizforge/internal/quizgen"
	"github.com/abhisek/quizforge/internal/screen"
	"github.com/abhisek/quizforge/internal/ui/theme"
)

// StatsScreen displays aggregate counts over the bank.
type StatsScreen struct {
	bank *bank.Bank
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(b *bank.Bank) *StatsScreen {
	return &StatsScreen{bank: b}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	stats := s.bank.Statistics()

	if stats.TotalStandards == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  The question bank is empty.")
	}

	var b strings.Builder

	row := func(label string, value string) {
		b.WriteString(fmt.Sprintf("  %-28s %12s\n", label, value))
	}

	b.WriteString(theme.Selected.Render("  Overview"))
	b.WriteString("\n\n")
	row("Standards covered", fmt.Sprintf("%d", stats.TotalStandards))
	row("Total questions", fmt.Sprintf("%d", stats.TotalQuestions))
	row("Avg per standard", fmt.Sprintf("%.1f", stats.AveragePerStandard))
	if stats.MostCommonType != "" {
		row("Most common type", stats.MostCommonType.Label())
	}

	b.WriteString("\n")
	b.WriteString(theme.Selected.Render("  By Type"))
	b.WriteString("\n\n")
	for _, t := range quizgen.AllQuestionTypes() {
		if n := stats.CountsByType[t]; n > 0 {
			row(t.Label(), fmt.Sprintf("%d", n))
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.Selected.Render("  By Difficulty"))
	b.WriteString("\n\n")
	for _, d := range quizgen.AllDifficulties() {
		if n := stats.CountsByDifficulty[d]; n > 0 {
			row(string(d), fmt.Sprintf("%d", n))
		}
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Render(b.String()))
}
