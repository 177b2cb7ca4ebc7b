package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func NewApp() *Model {
	return &Model{
		state:   StateWelcome,
		welcome: NewWelcome(),
		client:  NewRecapClient(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// only quit from welcome screen, not from the player
		if msg.String() == "ctrl+c" && m.state == StateWelcome {
			return m, tea.Quit
		}

		// in the player, ctrl+c goes back to welcome
		if msg.String() == "ctrl+c" && m.state == StatePlayer {
			m.player.Stop()
			m.player = nil
			m.state = StateWelcome
			m.welcome = NewWelcome()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if m.state == StatePlayer {
			m.player, _ = m.player.Update(msg)
		}

	case ErrorMsg:
		m.err = msg.err

		if m.state == StateWelcome {
			m.welcome, _ = m.welcome.Update(msg)
		}

		return m, nil

	case PlayRequestMsg:
		m.err = nil
		return m, m.client.SlidesCmd(msg.Year, msg.Viewer)

	case SlidesLoadedMsg:
		m.err = nil
		m.state = StatePlayer
		m.player = NewPlayer(msg.Year, m.width, m.height, msg.Viewer, msg.Slides)

		// prefetch the share text for the end screen
		return m, tea.Batch(m.player.Init(), m.client.ShareCmd(msg.Year, msg.Viewer))
	}

	switch m.state {
	case StateWelcome:
		return m.updateWelcome(msg)

	case StatePlayer:
		return m.updatePlayer(msg)

	default:
		return m, nil
	}
}

func (m *Model) View() string {
	if m.err != nil && m.state == StateWelcome {
		return m.welcome.View() + "\n" + errorStyle.Render(fmt.Sprintf("  error: %v", m.err))
	}

	switch m.state {
	case StateWelcome:
		return m.welcome.View()

	case StatePlayer:
		return m.player.View()

	default:
		return "Unknown state"
	}
}

func (m *Model) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.welcome, cmd = m.welcome.Update(msg)

	return m, cmd
}

func (m *Model) updatePlayer(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.player, cmd = m.player.Update(msg)

	return m, cmd
}
