// Package browse is a drill-down viewer over the loaded standards
// documents: documents → strands → standards → detail.
package browse

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizforge/internal/screen"
	"github.com/abhisek/quizforge/internal/standards"
	"github.com/abhisek/quizforge/internal/ui/layout"
	"github.com/abhisek/quizforge/internal/ui/theme"
)

type level int

const (
	levelDocuments level = iota
	levelStrands
	levelStandards
	levelDetail
)

// BrowseScreen navigates the document → strand → standard hierarchy.
type BrowseScreen struct {
	docs []standards.Document

	level     level
	docIdx    int
	strandIdx int
	stdIdx    int
	cursor    int
}

var _ screen.Screen = (*BrowseScreen)(nil)
var _ screen.KeyHintProvider = (*BrowseScreen)(nil)

// New creates a new BrowseScreen over the collection.
func New(coll *standards.Collection) *BrowseScreen {
	return &BrowseScreen{docs: coll.Documents()}
}

func (s *BrowseScreen) Init() tea.Cmd {
	return nil
}

func (s *BrowseScreen) Title() string {
	return "Browse Standards"
}

func (s *BrowseScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "h", Description: "Up a level"},
		{Key: "Esc", Description: "Back"},
	}
}

// itemCount returns the number of rows at the current level.
func (s *BrowseScreen) itemCount() int {
	switch s.level {
	case levelDocuments:
		return len(s.docs)
	case levelStrands:
		return len(s.docs[s.docIdx].Strands)
	case levelStandards:
		return len(s.docs[s.docIdx].Strands[s.strandIdx].Standards)
	default:
		return 0
	}
}

func (s *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < s.itemCount()-1 {
			s.cursor++
		}
	case "enter", "l", "right":
		s.descend()
	case "h", "left", "backspace":
		s.ascend()
	}
	return s, nil
}

func (s *BrowseScreen) descend() {
	if s.itemCount() == 0 {
		return
	}
	switch s.level {
	case levelDocuments:
		s.docIdx = s.cursor
		s.level = levelStrands
		s.cursor = 0
	case levelStrands:
		s.strandIdx = s.cursor
		s.level = levelStandards
		s.cursor = 0
	case levelStandards:
		s.stdIdx = s.cursor
		s.level = levelDetail
		s.cursor = 0
	}
}

func (s *BrowseScreen) ascend() {
	switch s.level {
	case levelStrands:
		s.level = levelDocuments
		s.cursor = s.docIdx
	case levelStandards:
		s.level = levelStrands
		s.cursor = s.strandIdx
	case levelDetail:
		s.level = levelStandards
		s.cursor = s.stdIdx
	}
}

func (s *BrowseScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	switch s.level {
	case levelDocuments:
		b.WriteString(renderHeading(width, "Documents"))
		for i, doc := range s.docs {
			label := fmt.Sprintf("%s — %s (%s)", doc.CourseName, doc.GradeLevel, doc.Year)
			b.WriteString(renderRow(width, label, i == s.cursor))
		}

	case levelStrands:
		doc := s.docs[s.docIdx]
		b.WriteString(renderHeading(width, doc.CourseName+" › Strands"))
		for i, strand := range doc.Strands {
			label := fmt.Sprintf("%s  %s (%d standards)", strand.Code, strand.Name, len(strand.Standards))
			b.WriteString(renderRow(width, label, i == s.cursor))
		}

	case levelStandards:
		strand := s.docs[s.docIdx].Strands[s.strandIdx]
		b.WriteString(renderHeading(width, strand.Name+" › Standards"))
		for i, std := range strand.Standards {
			label := fmt.Sprintf("%-12s %s", std.ID, truncate(std.Statement, width-20))
			b.WriteString(renderRow(width, label, i == s.cursor))
		}

	case levelDetail:
		std := s.docs[s.docIdx].Strands[s.strandIdx].Standards[s.stdIdx]
		b.WriteString(renderHeading(width, std.ID))

		statement := lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(width - 8).
			Render(std.Statement)
		b.WriteString(indent(statement, 4))
		b.WriteString("\n\n")

		if len(std.Objectives) > 0 {
			b.WriteString(indent(theme.Hint.Render("Objectives"), 4))
			b.WriteString("\n")
			for i, obj := range std.Objectives {
				line := lipgloss.NewStyle().
					Foreground(theme.TextDim).
					Width(width - 10).
					Render(fmt.Sprintf("%d. %s", i+1, obj))
				b.WriteString(indent(line, 6))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func renderHeading(width int, text string) string {
	return lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  "+text) + "\n\n"
}

func renderRow(width int, label string, selected bool) string {
	prefix := "    "
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		prefix = "  ▸ "
		style = style.Foreground(theme.Primary).Bold(true)
	}
	return style.Render(prefix+label) + "\n"
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}
