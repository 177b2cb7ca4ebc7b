package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// welcome screen model: prompts for a recap year and optional name
type Welcome struct {
	input   string
	loading bool
}

func NewWelcome() *Welcome {
	return &Welcome{}
}

// sent when the welcome form submits a valid year
type PlayRequestMsg struct {
	Year   int
	Viewer string
}

func (m *Welcome) Update(msg tea.Msg) (*Welcome, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.String() {
		case "enter":
			return m, m.submit()
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		default:
			if len(msg.String()) == 1 {
				m.input += msg.String()
			}
		}

	case ErrorMsg:
		m.loading = false
		return m, nil
	}

	return m, nil
}

func (m *Welcome) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("your year in live music"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(infoStyle.Render("  loading recap..."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(infoStyle.Render("  enter a year, optionally followed by your name"))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render("  e.g. \"2025\" or \"2025 alice\""))
	b.WriteString("\n\n")

	prompt := promptStyle.Render("  > ")
	input := inputStyle.Render(m.input + "_")
	b.WriteString(prompt + input)
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("  press enter to play. press ctrl+c to quit."))

	return b.String()
}

func (m *Welcome) submit() tea.Cmd {
	fields := strings.Fields(m.input)
	if len(fields) == 0 {
		return nil
	}

	year, err := strconv.Atoi(fields[0])
	if err != nil {
		return func() tea.Msg {
			return ErrorMsg{err: fmt.Errorf("not a year: %s", fields[0])}
		}
	}

	viewer := ""
	if len(fields) > 1 {
		viewer = strings.Join(fields[1:], " ")
	}

	m.loading = true

	return func() tea.Msg {
		return PlayRequestMsg{Year: year, Viewer: viewer}
	}
}
