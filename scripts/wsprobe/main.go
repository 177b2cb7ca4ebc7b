package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/websocket"
)

type Message struct {
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./scripts/wsprobe <year> [token]")
		fmt.Println("Example: go run ./scripts/wsprobe 2024 jwt_token_here")
		os.Exit(1)
	}

	year := os.Args[1]

	// build WebSocket URL
	u := url.URL{
		Scheme: "ws",
		Host:   "localhost:8080",
		Path:   "/api/v1/ws/story",
	}
	q := u.Query()
	q.Set("year", year)
	if len(os.Args) > 2 {
		q.Set("token", os.Args[2])
	}
	u.RawQuery = q.Encode()

	fmt.Printf("Connecting to %s\n", u.String())

	// connect
	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatal("dial:", err)
	}
	defer c.Close()

	fmt.Println("✅ Connected to WebSocket!")

	// handle interrupt
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	done := make(chan struct{})

	// read messages and stop when the story ends
	go func() {
		defer close(done)
		for {
			_, raw, err := c.ReadMessage()
			if err != nil {
				log.Println("read:", err)
				return
			}
			fmt.Printf("📨 Received: %s\n", raw)

			var msg Message
			if err := json.Unmarshal(raw, &msg); err == nil && msg.Type == "story_ended" {
				return
			}
		}
	}()

	// step through slides so every slide and the end frame show up
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			next, _ := json.Marshal(Message{Type: "next", Timestamp: time.Now()})
			fmt.Printf("📤 Sending: %s\n", next)
			if err := c.WriteMessage(websocket.TextMessage, next); err != nil {
				log.Println("write:", err)
				return
			}
		case <-interrupt:
			fmt.Println("\n🛑 Interrupt received, closing connection...")

			// cleanly close the connection
			err := c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			if err != nil {
				log.Println("write close:", err)
				return
			}
			select {
			case <-done:
			case <-time.After(time.Second):
			}
			return
		}
	}
}
