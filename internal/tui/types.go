package tui

import (
	"codeberg.org/encore/server/internal/story"
)

// represents the current state of the TUI
type AppState int

const (
	StateWelcome AppState = iota
	StatePlayer
)

// main TUI application model
type Model struct {
	state   AppState
	width   int
	height  int
	err     error
	welcome *Welcome
	player  *Player
	client  *RecapClient
}

// sent when an error occurs
type ErrorMsg struct {
	err error
}

// sent when the recap slides have been fetched
type SlidesLoadedMsg struct {
	Year   int
	Viewer string
	Slides []story.Slide
}

// sent when the share text has been fetched
type ShareTextMsg struct {
	Text string
}
