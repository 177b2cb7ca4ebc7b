package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"codeberg.org/encore/server/internal/logger"
	"codeberg.org/encore/server/internal/story"
	"github.com/gorilla/websocket"
)

// Session owns one websocket connection and the playback machine
// driving it. Each connection gets its own machine, so navigation on
// one client never affects another.
type Session struct {
	ID   string
	Year int

	conn    *websocket.Conn
	machine *story.Machine
	send    chan []byte

	mu     sync.RWMutex
	closed bool
}

func NewSession(id string, year int, slides []story.Slide, conn *websocket.Conn) *Session {
	s := &Session{
		ID:   id,
		Year: year,
		conn: conn,
		send: make(chan []byte, 256),
	}

	s.machine = story.NewMachine(slides, story.Callbacks{
		OnSlideChange: s.onSlideChange,
		OnProgress:    s.onProgress,
		OnComplete:    s.onComplete,
	})

	return s
}

// Start pushes the initial story state and begins playback.
func (s *Session) Start() {
	slides := s.machine.Slides()
	state := s.machine.State()

	s.sendMessage(TypeStoryState, StoryStatePayload{ //nolint:errcheck,gosec // G104: best-effort push
		Year:   s.Year,
		Total:  len(slides),
		Index:  state.Index,
		Slides: slides,
	})

	s.machine.Start()
}

// reads playback commands from the websocket connection
func (s *Session) ReadPump() {
	defer func() {
		s.machine.Close()
		s.Close()
		s.conn.Close() //nolint:errcheck,gosec // G104: defer cleanup
	}()

	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait)) //nolint:errcheck,gosec // G104: websocket setup
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait)) //nolint:errcheck,gosec // G104: pong handler
		return nil
	})

	for {
		_, messageBytes, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("websocket error",
					"session_id", s.ID,
					"error", err,
				)
			}

			return
		}

		var msg Message
		if err := json.Unmarshal(messageBytes, &msg); err != nil {
			s.SendError("bad_request", "invalid message format")
			continue
		}

		switch msg.Type {
		case TypeNext:
			s.machine.Next()
		case TypePrev:
			s.machine.Prev()
		case TypeGoTo:
			var payload GoToPayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				s.SendError("bad_request", "goto requires an index payload")
				continue
			}

			s.machine.GoTo(payload.Index)
		case TypePing:
			s.sendMessage(TypePong, nil) //nolint:errcheck,gosec // G104: best-effort push
		case TypeClose:
			return
		default:
			s.SendError("bad_request", "unknown message type")
		}
	}
}

// writes queued messages from playback callbacks to the connection
func (s *Session) WritePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		s.conn.Close() //nolint:errcheck,gosec // G104: defer cleanup
	}()

	for {
		select {
		case message, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck,gosec // G104: websocket timing

			if !ok {
				// session closed the channel
				s.conn.WriteMessage(websocket.CloseMessage, []byte{}) //nolint:errcheck,gosec // G104: close message
				return
			}

			w, err := s.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}

			w.Write(message) //nolint:errcheck,gosec // G104: websocket write

			// drain queued messages into the same websocket frame
			n := len(s.send)

			for range n {
				w.Write([]byte{'\n'}) //nolint:errcheck,gosec // G104: websocket write
				w.Write(<-s.send)     //nolint:errcheck,gosec // G104: websocket write
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck,gosec // G104: websocket ping timing

			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Close marks the session closed and shuts the send channel.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.send)
	}
}

func (s *Session) IsClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.closed
}

func (s *Session) onSlideChange(index int, _ story.Slide) {
	s.sendMessage(TypeSlideChanged, SlideChangedPayload{ //nolint:errcheck,gosec // G104: best-effort push
		Index: index,
		Total: len(s.machine.Slides()),
	})
}

func (s *Session) onProgress(index int, progress float64) {
	s.sendMessage(TypeProgress, ProgressPayload{ //nolint:errcheck,gosec // G104: best-effort push
		Index:    index,
		Progress: progress,
	})
}

func (s *Session) onComplete() {
	s.sendMessage(TypeStoryEnded, nil) //nolint:errcheck,gosec // G104: best-effort push
}

// SendError sends an error message to the client.
func (s *Session) SendError(code, message string) {
	s.sendMessage(TypeError, ErrorPayload{ //nolint:errcheck,gosec // G104: best-effort push
		Error:   code,
		Message: message,
	})
}

// marshals and queues a message; drops it when the buffer is full so a
// slow client can't stall the playback callbacks
func (s *Session) sendMessage(msgType string, payload any) (err error) {
	// recover from panic if channel is closed under a racing Close
	defer func() {
		if r := recover(); r != nil {
			err = ErrConnectionClosed
		}
	}()

	s.mu.RLock()

	if s.closed {
		s.mu.RUnlock()
		return ErrConnectionClosed
	}

	s.mu.RUnlock()

	msg, err := NewMessage(msgType, payload)
	if err != nil {
		logger.ErrorErr(err, "failed to build websocket message",
			"session_id", s.ID,
			"type", msgType,
		)

		return err
	}

	messageBytes, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	select {
	case s.send <- messageBytes:
	default:
		// progress frames are disposable; never block a callback
	}

	return nil
}
