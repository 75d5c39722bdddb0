// Package report defines the checksummed text frames the firmware emits
// for the host monitor. Frames share the console with human-readable menu
// text, so they are single lines with an unambiguous prefix:
//
//	~ev=boot cause=watchdog count=3*A1B2
//
// The body is space-separated key=value pairs, always starting with the
// ev= discriminator; the trailer is '*' plus the CRC16 of the body in
// upper-case hex. Anything not starting with '~' passes through the
// monitor untouched.
package report

import (
	"errors"
	"fmt"
	"strings"
)

const (
	framePrefix = '~'
	crcSep      = '*'
)

var (
	ErrNotFrame    = errors.New("report: not a frame line")
	ErrBadTrailer  = errors.New("report: missing or malformed checksum trailer")
	ErrBadChecksum = errors.New("report: checksum mismatch")
	ErrBadBody     = errors.New("report: malformed frame body")
)

// Field is one key=value pair of a frame body. Order is significant:
// the checksum covers the body bytes as written.
type Field struct {
	Key   string
	Value string
}

// Event is a decoded (or to-be-encoded) report frame.
type Event struct {
	Name   string  // the ev= discriminator, e.g. "boot"
	Fields []Field // remaining pairs, in body order
}

// Get returns the value for a key and whether it was present.
func (e Event) Get(key string) (string, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Encode renders the event as a complete frame line (without newline).
func Encode(e Event) string {
	var b strings.Builder
	b.WriteString("ev=")
	b.WriteString(e.Name)
	for _, f := range e.Fields {
		b.WriteByte(' ')
		b.WriteString(f.Key)
		b.WriteByte('=')
		b.WriteString(f.Value)
	}
	body := b.String()
	return fmt.Sprintf("%c%s%c%04X", framePrefix, body, crcSep, CRC16([]byte(body)))
}

// IsFrame reports whether a console line is a report frame (by prefix
// only; it may still fail to decode).
func IsFrame(line string) bool {
	return len(line) > 0 && line[0] == framePrefix
}

// Decode parses and checksum-verifies a frame line. The line may carry
// trailing CR/LF.
func Decode(line string) (Event, error) {
	line = strings.TrimRight(line, "\r\n")
	if !IsFrame(line) {
		return Event{}, ErrNotFrame
	}

	sep := strings.LastIndexByte(line, crcSep)
	if sep < 0 || len(line)-sep-1 != 4 {
		return Event{}, ErrBadTrailer
	}
	body := line[1:sep]

	var want uint16
	if _, err := fmt.Sscanf(line[sep+1:], "%04X", &want); err != nil {
		return Event{}, ErrBadTrailer
	}
	if got := CRC16([]byte(body)); got != want {
		return Event{}, fmt.Errorf("%w: got %04X want %04X", ErrBadChecksum, got, want)
	}

	return parseBody(body)
}

func parseBody(body string) (Event, error) {
	pairs := strings.Fields(body)
	if len(pairs) == 0 {
		return Event{}, ErrBadBody
	}

	var e Event
	for i, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return Event{}, fmt.Errorf("%w: %q", ErrBadBody, pair)
		}
		if i == 0 {
			if k != "ev" {
				return Event{}, fmt.Errorf("%w: first pair must be ev=, got %q", ErrBadBody, pair)
			}
			e.Name = v
			continue
		}
		e.Fields = append(e.Fields, Field{Key: k, Value: v})
	}
	if e.Name == "" {
		return Event{}, fmt.Errorf("%w: empty event name", ErrBadBody)
	}
	return e, nil
}
