package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/relaybot/internal/config"
	"github.com/sandevgo/relaybot/internal/service/ui"
)

// SessionStoreStep selects where conversation sessions are kept
type SessionStoreStep struct {
	choices []item
	cursor  int
}

func NewSessionStoreStep() Step {
	return &SessionStoreStep{
		choices: []item{
			{id: config.SessionStoreSQLite, title: "SQLite", desc: "history survives restarts"},
			{id: config.SessionStoreMemory, title: "Memory", desc: "history is lost on restart"},
		},
	}
}

func (s *SessionStoreStep) Init() tea.Cmd {
	return nil
}

func (s *SessionStoreStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			state.Settings.SessionStore = s.choices[s.cursor].id
			return nil, nil
		}
	}
	return s, nil
}

func (s *SessionStoreStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("Select session storage:\n\n")
	for i, choice := range s.choices {
		line := fmt.Sprintf("%s — %s", choice.Title(), choice.Description())
		if s.cursor == i {
			b.WriteString(ui.SelectedStyle.Render("❯ "+line) + "\n")
		} else {
			b.WriteString(ui.ItemStyle.Render("  "+line) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
