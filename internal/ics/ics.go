// Package ics encodes shows as iCalendar feeds and Google Calendar
// links. Pure and stateless: same events in, same bytes out.
package ics

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	prodID = "-//Encore//Concert Tracker//EN"

	// default event length when a show has no explicit end
	defaultEventLength = 3 * time.Hour

	timestampLayout = "20060102T150405Z"
)

// one calendar event, typically derived from a show
type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time // zero value means Start + defaultEventLength
}

// Calendar renders events as an iCalendar (RFC 5545) document with
// CRLF line endings and 75-octet line folding.
func Calendar(name string, events []Event) string {
	var b strings.Builder

	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:"+prodID)
	writeLine(&b, "CALSCALE:GREGORIAN")
	writeLine(&b, "METHOD:PUBLISH")

	if name != "" {
		writeLine(&b, "X-WR-CALNAME:"+escapeText(name))
	}

	for _, event := range events {
		writeEvent(&b, event)
	}

	writeLine(&b, "END:VCALENDAR")

	return b.String()
}

func writeEvent(b *strings.Builder, event Event) {
	end := event.End
	if end.IsZero() {
		end = event.Start.Add(defaultEventLength)
	}

	writeLine(b, "BEGIN:VEVENT")
	writeLine(b, "UID:"+event.UID)
	writeLine(b, "DTSTAMP:"+event.Start.UTC().Format(timestampLayout))
	writeLine(b, "DTSTART:"+event.Start.UTC().Format(timestampLayout))
	writeLine(b, "DTEND:"+end.UTC().Format(timestampLayout))
	writeLine(b, "SUMMARY:"+escapeText(event.Summary))

	if event.Location != "" {
		writeLine(b, "LOCATION:"+escapeText(event.Location))
	}

	if event.Description != "" {
		writeLine(b, "DESCRIPTION:"+escapeText(event.Description))
	}

	writeLine(b, "END:VEVENT")
}

// GoogleCalendarURL builds a calendar.google.com event-creation link
// for a single event.
func GoogleCalendarURL(event Event) string {
	end := event.End
	if end.IsZero() {
		end = event.Start.Add(defaultEventLength)
	}

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", event.Summary)
	params.Set("dates", fmt.Sprintf(
		"%s/%s",
		event.Start.UTC().Format(timestampLayout),
		end.UTC().Format(timestampLayout),
	))

	if event.Location != "" {
		params.Set("location", event.Location)
	}

	if event.Description != "" {
		params.Set("details", event.Description)
	}

	return "https://calendar.google.com/calendar/render?" + params.Encode()
}

// escapes text per RFC 5545: backslash, semicolon, comma, and newlines
func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\r\n", `\n`)
	s = strings.ReplaceAll(s, "\n", `\n`)

	return s
}

// writes a content line folded at 75 octets with CRLF endings
func writeLine(b *strings.Builder, line string) {
	const limit = 75

	for len(line) > limit {
		cut := limit

		// never split a UTF-8 sequence
		for cut > 0 && !isRuneStart(line[cut]) {
			cut--
		}

		b.WriteString(line[:cut])
		b.WriteString("\r\n ")
		line = line[cut:]
	}

	b.WriteString(line)
	b.WriteString("\r\n")
}

func isRuneStart(c byte) bool {
	return c&0xC0 != 0x80
}
