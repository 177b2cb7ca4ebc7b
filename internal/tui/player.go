package tui

import (
	"fmt"
	"strings"

	"codeberg.org/encore/server/internal/story"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// playback events bridged from machine callbacks into the tea loop
type slideChangedMsg struct {
	index int
}

type progressMsg struct {
	index    int
	progress float64
}

type storyEndedMsg struct{}

// Player renders the recap story: one slide at a time with a countdown
// bar, auto-advance, and arrow-key navigation. The playback machine
// runs on real timers; its callbacks are pumped into the tea loop
// through a channel.
type Player struct {
	year   int
	viewer string
	slides []story.Slide

	machine *story.Machine
	events  chan tea.Msg

	bar       progress.Model
	index     int
	progress  float64
	ended     bool
	shareText string

	width  int
	height int
}

// event buffer sized for progress frames between loop iterations
const eventBuffer = 64

func NewPlayer(year, width, height int, viewer string, slides []story.Slide) *Player {
	p := &Player{
		year:   year,
		viewer: viewer,
		slides: slides,
		events: make(chan tea.Msg, eventBuffer),
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		width:  width,
		height: height,
	}

	p.machine = p.buildMachine()

	return p
}

func (p *Player) buildMachine() *story.Machine {
	return story.NewMachine(p.slides, story.Callbacks{
		OnSlideChange: func(index int, _ story.Slide) {
			p.push(slideChangedMsg{index: index})
		},
		OnProgress: func(index int, pr float64) {
			p.push(progressMsg{index: index, progress: pr})
		},
		OnComplete: func() {
			p.push(storyEndedMsg{})
		},
	})
}

// discards the finished machine and plays the deck from the top. The
// event wait issued at Init is still pending, so no new cmd is needed.
func (p *Player) restart() tea.Cmd {
	p.machine.Close()
	p.machine = p.buildMachine()
	p.index = 0
	p.progress = 0
	p.ended = false
	p.machine.Start()

	return nil
}

// queues an event without blocking the machine's callback
func (p *Player) push(msg tea.Msg) {
	select {
	case p.events <- msg:
	default:
	}
}

// returns a tea.Cmd that waits for the next playback event
func (p *Player) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-p.events
	}
}

func (p *Player) Init() tea.Cmd {
	p.machine.Start()
	return p.waitForEvent()
}

func (p *Player) Update(msg tea.Msg) (*Player, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "right", " ", "enter":
			p.machine.Next()
		case "left":
			p.machine.Prev()
		case "r":
			// the machine is terminal after completion, so restart
			// means building a fresh one
			return p, p.restart()
		}

		return p, nil

	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.bar.Width = min(p.width-8, 60)
		return p, nil

	case slideChangedMsg:
		p.index = msg.index
		p.progress = 0
		return p, p.waitForEvent()

	case progressMsg:
		if msg.index == p.index {
			p.progress = msg.progress
		}

		return p, p.waitForEvent()

	case storyEndedMsg:
		p.ended = true
		return p, p.waitForEvent()

	case ShareTextMsg:
		p.shareText = msg.Text
		return p, nil
	}

	return p, nil
}

// stops playback timers; called when leaving the player
func (p *Player) Stop() {
	p.machine.Close()
}

func (p *Player) View() string {
	if len(p.slides) == 0 {
		return infoStyle.Render("\n  no slides for this year\n")
	}

	if p.ended {
		return p.endView()
	}

	slide := p.slides[p.index]

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(p.slideView(slide))
	b.WriteString("\n\n")

	if p.bar.Width > 0 {
		b.WriteString("    " + p.bar.ViewAs(p.progress))
		b.WriteString("\n")
	}

	counter := fmt.Sprintf("slide %d of %d", p.index+1, len(p.slides))
	b.WriteString("    " + infoStyle.Render(counter))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("    ←/→ navigate · r restart · ctrl+c back"))

	return b.String()
}

func (p *Player) slideView(slide story.Slide) string {
	var b strings.Builder

	title := slide.Title
	if slide.Emoji != "" {
		title = slide.Emoji + " " + title
	}

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	switch slide.Kind {
	case story.KindChart:
		b.WriteString(p.chartView(slide))

	case story.KindList:
		for _, item := range slide.List {
			line := fmt.Sprintf("%s %s",
				listValueStyle.Render(fmt.Sprintf("%d×", item.Value)),
				item.Label,
			)

			if item.Badge != "" {
				line += " " + infoStyle.Render("("+item.Badge+")")
			}

			b.WriteString(listItemStyle.Render(line))
			b.WriteString("\n")
		}

	case story.KindComparison:
		b.WriteString(p.comparisonView(slide))

	default:
		if slide.Headline != "" {
			b.WriteString(headlineStyle.Render(slide.Headline))
			b.WriteString("\n")
		}

		if slide.Subtext != "" {
			b.WriteString(subtextStyle.Render(slide.Subtext))
			b.WriteString("\n")
		}
	}

	content := b.String()

	if color, ok := themeColors[string(slide.Theme)]; ok {
		return lipgloss.NewStyle().
			Background(color).
			Padding(1, 4).
			Render(content)
	}

	return content
}

// renders chart bars as proportional rows of block characters
func (p *Player) chartView(slide story.Slide) string {
	if slide.Chart == nil || len(slide.Chart.Bars) == 0 {
		return ""
	}

	maxValue := 0
	for _, bar := range slide.Chart.Bars {
		if bar.Value > maxValue {
			maxValue = bar.Value
		}
	}

	if maxValue == 0 {
		return ""
	}

	barWidth := min(max(p.width-20, 10), 40)

	var b strings.Builder
	for _, bar := range slide.Chart.Bars {
		filled := bar.Value * barWidth / maxValue
		row := fmt.Sprintf("  %-4s %s %d",
			bar.Label,
			strings.Repeat("█", filled),
			bar.Value,
		)
		b.WriteString(listItemStyle.Render(row))
		b.WriteString("\n")
	}

	return b.String()
}

func (p *Player) comparisonView(slide story.Slide) string {
	if slide.Comparison == nil {
		return ""
	}

	var b strings.Builder
	for _, entry := range slide.Comparison.Entries {
		row := fmt.Sprintf("#%d %s — %d shows", entry.Rank, entry.DisplayName, entry.TotalShows)

		if entry.IsViewer {
			b.WriteString(viewerRowStyle.Render("→ " + row))
		} else {
			b.WriteString(listItemStyle.Render(row))
		}

		b.WriteString("\n")
	}

	return b.String()
}

func (p *Player) endView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("that's a wrap on %d", p.year)))
	b.WriteString("\n")

	if p.shareText != "" {
		b.WriteString(subtextStyle.Render(p.shareText))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("    r restart · ctrl+c back"))

	return b.String()
}
