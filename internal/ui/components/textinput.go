package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizforge/internal/ui/theme"
)

// FilterInput wraps bubbles/textinput as a one-line filter box.
type FilterInput struct {
	Model  textinput.Model
	active bool
}

// NewFilterInput creates a new styled filter input.
func NewFilterInput(placeholder string) FilterInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 40
	return FilterInput{Model: ti}
}

// Activate focuses the input so keystrokes edit the filter.
func (f *FilterInput) Activate() tea.Cmd {
	f.active = true
	return f.Model.Focus()
}

// Deactivate blurs the input; the current value keeps filtering.
func (f *FilterInput) Deactivate() {
	f.active = false
	f.Model.Blur()
}

// Active reports whether the input has focus.
func (f FilterInput) Active() bool {
	return f.active
}

// Update handles messages while the input is focused.
func (f FilterInput) Update(msg tea.Msg) (FilterInput, tea.Cmd) {
	if !f.active {
		return f, nil
	}
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the filter line.
func (f FilterInput) View() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Filter: ")
	return label + f.Model.View()
}

// Value returns the current filter text, trimmed.
func (f FilterInput) Value() string {
	return strings.TrimSpace(f.Model.Value())
}

// Matches reports whether s passes the filter (case-insensitive
// substring match, empty filter passes everything).
func (f FilterInput) Matches(s string) bool {
	v := f.Value()
	if v == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(v))
}
