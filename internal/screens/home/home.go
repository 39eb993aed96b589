// Package home is the landing screen: a menu over the browse, review,
// and statistics screens.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizforge/internal/router"
	"github.com/abhisek/quizforge/internal/screen"
	"github.com/abhisek/quizforge/internal/screens/browse"
	"github.com/abhisek/quizforge/internal/screens/review"
	"github.com/abhisek/quizforge/internal/screens/statsview"
	"github.com/abhisek/quizforge/internal/session"
	"github.com/abhisek/quizforge/internal/ui/components"
	"github.com/abhisek/quizforge/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	sess *session.Session
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(sess *session.Session, bankPath string) *HomeScreen {
	items := []components.MenuItem{
		{Label: "BROWSE STANDARDS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: browse.New(sess.Standards)}
			}
		}},
		{Label: "REVIEW BANK", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: review.New(sess.Bank, bankPath)}
			}
		}},
		{Label: "STATISTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: statsview.New(sess.Bank)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		sess: sess,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Width(width).Render("QuizForge")
	subtitle := theme.Subtitle.Width(width).Render("Standards-aligned quiz generation")

	summary := fmt.Sprintf("%d documents · %d standards · %d banked questions",
		h.sess.Standards.TotalDocuments(),
		h.sess.Standards.TotalStandards(),
		h.sess.Bank.TotalQuestions())
	stats := theme.Hint.Width(width).Align(lipgloss.Center).Render(summary)

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())

	content := strings.Join([]string{title, subtitle, "", stats, "", menu}, "\n")
	return lipgloss.PlaceVertical(height, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
