package installer

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/relaybot/internal/config"
)

const defaultServiceName = "FromGood"

// FinalizationStep fills defaults the wizard does not ask for
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	finalize(&state.Settings)
	return nil, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}

func finalize(st *Settings) {
	if st.ServiceName == "" {
		st.ServiceName = defaultServiceName
	}
	if st.SessionStore == "" {
		st.SessionStore = config.SessionStoreSQLite
	}
	st.Debug = config.IsDebug()
}
