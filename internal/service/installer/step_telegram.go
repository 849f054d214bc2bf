package installer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/relaybot/internal/service/ui"
)

// TelegramTokenStep collects the Telegram bot token
type TelegramTokenStep struct {
	input textinput.Model
	err   error
}

func NewTelegramTokenStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "123456789:ABCDEF..."
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return &TelegramTokenStep{
		input: ti,
	}
}

func (s *TelegramTokenStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *TelegramTokenStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			token := strings.TrimSpace(s.input.Value())
			if !strings.Contains(token, ":") {
				s.err = fmt.Errorf("token must look like <bot id>:<secret>")
				return s, nil
			}
			state.Settings.TelegramToken = token
			return nil, nil
		}
	}
	return s, cmd
}

func (s *TelegramTokenStep) View(state *InstallState) string {
	return "Enter your Telegram Bot Token:\n\n" +
		s.input.View() + "\n\n" +
		viewError(s.err) +
		"(press enter to confirm)\n"
}

// OperatorStep collects the operator's Telegram user ID
type OperatorStep struct {
	input textinput.Model
	err   error
}

func NewOperatorStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 20
	ti.Width = 40
	ti.Placeholder = "123456789"
	ti.EchoMode = textinput.EchoNormal

	return &OperatorStep{
		input: ti,
	}
}

func (s *OperatorStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *OperatorStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			id, err := parseOperatorID(s.input.Value())
			if err != nil {
				s.err = err
				return s, nil
			}
			state.Settings.OperatorID = id
			return nil, nil
		}
	}
	return s, cmd
}

func (s *OperatorStep) View(state *InstallState) string {
	return "Enter the operator's Telegram User ID:\n\n" +
		s.input.View() + "\n\n" +
		viewError(s.err) +
		"(press enter to confirm)\n"
}

func parseOperatorID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("operator id must be a positive number")
	}
	return id, nil
}

func viewError(err error) string {
	if err == nil {
		return ""
	}
	return ui.ErrorStyle.Render(err.Error()) + "\n\n"
}
