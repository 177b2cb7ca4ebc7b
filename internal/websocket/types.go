package websocket

import (
	"encoding/json"
	"errors"
	"time"
)

// message type constants for websocket communication
const (
	// is sent when the active slide changes
	TypeSlideChanged = "slide_changed"

	// is sent while a slide's countdown runs
	TypeProgress = "progress"

	// is sent once when playback reaches the end of the deck
	TypeStoryEnded = "story_ended"

	// is sent to a connecting client with the full deck and position
	TypeStoryState = "story_state"

	// is sent when an error occurs
	TypeError = "error"

	// is sent by clients to keep the connection alive
	TypePing = "ping"

	// is sent by server in response to ping
	TypePong = "pong"

	// client playback commands
	TypeNext  = "next"
	TypePrev  = "prev"
	TypeGoTo  = "goto"
	TypeClose = "close"
)

// client connection constants
const (
	// time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// maximum message size allowed from peer; commands are tiny
	maxMessageSize = 4 * 1024
)

var ErrConnectionClosed = errors.New("connection closed")

// represents a websocket message with typed payload
type Message struct {
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// builds a message with a marshalled payload
func NewMessage(msgType string, payload any) (*Message, error) {
	msg := &Message{
		Type:      msgType,
		Timestamp: time.Now(),
	}

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}

		msg.Payload = raw
	}

	return msg, nil
}

// carries a goto command's target slide
type GoToPayload struct {
	Index int `json:"index"`
}

// pushed when the active slide changes
type SlideChangedPayload struct {
	Index int `json:"index"`
	Total int `json:"total"`
}

// pushed while a slide's countdown runs
type ProgressPayload struct {
	Index    int     `json:"index"`
	Progress float64 `json:"progress"` // 0.0 - 1.0
}

// sent once on connect so the client can render without a REST round trip
type StoryStatePayload struct {
	Year   int `json:"year"`
	Total  int `json:"total"`
	Index  int `json:"index"`
	Slides any `json:"slides"`
}

// sent on protocol or playback errors
type ErrorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
