// Package review lists the banked entries and lets the user inspect and
// delete individual questions.
package review

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizforge/internal/bank"
	"github.com/abhisek/quizforge/internal/quizgen"
	"github.com/abhisek/quizforge/internal/screen"
	"github.com/abhisek/quizforge/internal/ui/components"
	"github.com/abhisek/quizforge/internal/ui/layout"
	"github.com/abhisek/quizforge/internal/ui/theme"
)

// ReviewScreen shows bank entries with expandable question cards.
type ReviewScreen struct {
	bank     *bank.Bank
	bankPath string

	entries  []bank.Entry
	selected int
	expanded map[string]bool
	qCursor  int // question cursor within the expanded entry
	filter   components.FilterInput
	status   string
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a new ReviewScreen over the bank. Deletions are written
// back to bankPath immediately.
func New(b *bank.Bank, bankPath string) *ReviewScreen {
	return &ReviewScreen{
		bank:     b,
		bankPath: bankPath,
		expanded: make(map[string]bool),
		filter:   components.NewFilterInput("standard id"),
	}
}

func (s *ReviewScreen) Init() tea.Cmd {
	s.reload()
	return nil
}

func (s *ReviewScreen) Title() string {
	return "Review Bank"
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	if s.filter.Active() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply filter"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Expand"},
		{Key: "J/K", Description: "Question"},
		{Key: "d", Description: "Delete question"},
		{Key: "/", Description: "Filter"},
		{Key: "Esc", Description: "Back"},
	}
}

// reload refreshes the visible entries from the bank, applying the
// filter.
func (s *ReviewScreen) reload() {
	all := s.bank.Entries()
	s.entries = s.entries[:0]
	for _, e := range all {
		if s.filter.Matches(e.StandardID) {
			s.entries = append(s.entries, e)
		}
	}
	if s.selected >= len(s.entries) {
		s.selected = len(s.entries) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.filter.Active() {
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			s.filter.Deactivate()
			s.reload()
			return s, nil
		}
		var cmd tea.Cmd
		s.filter, cmd = s.filter.Update(msg)
		s.reload()
		return s, cmd
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
			s.qCursor = 0
		}
	case "down", "j":
		if s.selected < len(s.entries)-1 {
			s.selected++
			s.qCursor = 0
		}
	case "enter":
		if e := s.current(); e != nil {
			s.expanded[e.StandardID] = !s.expanded[e.StandardID]
			s.qCursor = 0
		}
	case "K":
		if s.qCursor > 0 {
			s.qCursor--
		}
	case "J":
		if e := s.current(); e != nil && s.qCursor < len(e.Questions)-1 {
			s.qCursor++
		}
	case "d":
		s.deleteCurrent()
	case "/":
		return s, s.filter.Activate()
	}
	return s, nil
}

func (s *ReviewScreen) current() *bank.Entry {
	if s.selected < 0 || s.selected >= len(s.entries) {
		return nil
	}
	return &s.entries[s.selected]
}

// deleteCurrent removes the question under the cursor from the expanded
// entry and persists the bank.
func (s *ReviewScreen) deleteCurrent() {
	e := s.current()
	if e == nil || !s.expanded[e.StandardID] || len(e.Questions) == 0 {
		return
	}

	if err := s.bank.DeleteQuestion(e.StandardID, s.qCursor); err != nil {
		s.status = err.Error()
		return
	}
	if err := s.bank.ExportFile(s.bankPath); err != nil {
		s.status = fmt.Sprintf("deleted, but save failed: %v", err)
	} else {
		s.status = fmt.Sprintf("deleted question %d of %s", s.qCursor+1, e.StandardID)
	}

	s.reload()
	if e := s.current(); e != nil && s.qCursor >= len(e.Questions) && s.qCursor > 0 {
		s.qCursor--
	}
}

func (s *ReviewScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(s.filter.View())
	b.WriteString("\n\n")

	if len(s.entries) == 0 {
		b.WriteString(theme.Hint.Render("  Nothing in the bank yet. Run `quizforge generate` first."))
		return b.String()
	}

	for i, e := range s.entries {
		b.WriteString(s.renderEntry(e, i, width))
	}

	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  " + s.status))
	}
	return b.String()
}

func (s *ReviewScreen) renderEntry(e bank.Entry, idx int, width int) string {
	var b strings.Builder

	prefix := "  "
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if idx == s.selected {
		prefix = "> "
		style = style.Foreground(theme.Primary).Bold(true)
	}

	line := fmt.Sprintf("%s%-12s %s  %d questions",
		prefix, e.StandardID, feasibilityBadge(e.Assessment), len(e.Questions))
	b.WriteString(style.Render(line))
	b.WriteString("\n")

	if !s.expanded[e.StandardID] {
		return b.String()
	}

	for qi, q := range e.Questions {
		cursor := "   "
		qStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if idx == s.selected && qi == s.qCursor {
			cursor = " → "
			qStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
		}

		b.WriteString(qStyle.Render(fmt.Sprintf("%s%d. [%s, %s] %s",
			cursor, qi+1, q.Type.Label(), q.Difficulty, clip(q.Text, width-24))))
		b.WriteString("\n")

		if idx == s.selected && qi == s.qCursor {
			detail := lipgloss.NewStyle().Foreground(theme.TextDim)
			for _, opt := range q.Options {
				marker := "·"
				if opt == q.CorrectAnswer {
					marker = "✓"
				}
				b.WriteString(detail.Render(fmt.Sprintf("       %s %s", marker, opt)))
				b.WriteString("\n")
			}
			if len(q.Options) == 0 {
				b.WriteString(detail.Render("       Answer: " + q.CorrectAnswer))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func feasibilityBadge(a *quizgen.Assessment) string {
	if a == nil {
		return theme.Hint.Render("unassessed")
	}
	switch a.Feasibility {
	case quizgen.Feasible:
		return theme.Feasible.Render("feasible")
	case quizgen.PartiallyFeasible:
		return theme.PartiallyFeasible.Render("partial")
	case quizgen.NotFeasible:
		return theme.NotFeasible.Render("not feasible")
	default:
		return string(a.Feasibility)
	}
}

func clip(s string, max int) string {
	if max < 4 {
		max = 4
	}
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
