package report

import (
	"errors"
	"strings"
	"testing"

	"kennel/core"
)

func TestFrameRoundTrip(t *testing.T) {
	testCases := []Event{
		BootEvent(core.CauseWatchdogTimeout, 3),
		BootEvent(core.CausePowerOn, 0),
		ArmedEvent(core.Timeout520ms),
		KickEvent(17),
		DisarmedEvent(),
		HangEvent(core.Timeout130ms),
		DemoEvent("kickloop"),
	}

	for _, want := range testCases {
		line := Encode(want)

		if !IsFrame(line) {
			t.Errorf("Encode(%v) = %q, not recognized as a frame", want.Name, line)
			continue
		}

		got, err := Decode(line)
		if err != nil {
			t.Errorf("Decode(%q) failed: %v", line, err)
			continue
		}
		if got.Name != want.Name {
			t.Errorf("Decode(%q): name %q, want %q", line, got.Name, want.Name)
		}
		if len(got.Fields) != len(want.Fields) {
			t.Errorf("Decode(%q): %d fields, want %d", line, len(got.Fields), len(want.Fields))
			continue
		}
		for i := range want.Fields {
			if got.Fields[i] != want.Fields[i] {
				t.Errorf("Decode(%q): field %d = %v, want %v", line, i, got.Fields[i], want.Fields[i])
			}
		}
	}
}

func TestDecodeTrailingCRLF(t *testing.T) {
	line := Encode(KickEvent(1)) + "\r\n"
	ev, err := Decode(line)
	if err != nil {
		t.Fatalf("Decode with CRLF failed: %v", err)
	}
	if ev.Name != EvKick {
		t.Errorf("got event %q, want %q", ev.Name, EvKick)
	}
}

func TestDecodeRejectsCorruption(t *testing.T) {
	line := Encode(BootEvent(core.CauseWatchdogTimeout, 3))

	// Corrupt one body byte; the checksum must catch it.
	corrupted := strings.Replace(line, "count=3", "count=9", 1)
	if corrupted == line {
		t.Fatal("failed to corrupt test frame")
	}

	_, err := Decode(corrupted)
	if !errors.Is(err, ErrBadChecksum) {
		t.Errorf("Decode(corrupted) error = %v, want ErrBadChecksum", err)
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	testCases := []struct {
		name string
		line string
		want error
	}{
		{"not a frame", "select> ", ErrNotFrame},
		{"empty line", "", ErrNotFrame},
		{"no trailer", "~ev=boot cause=watchdog", ErrBadTrailer},
		{"short crc", "~ev=boot*AB", ErrBadTrailer},
		{"non-hex crc", "~ev=boot*WXYZ", ErrBadTrailer},
		{"bad checksum", "~ev=boot*0000", ErrBadChecksum},
	}

	for _, tc := range testCases {
		_, err := Decode(tc.line)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: Decode(%q) error = %v, want %v", tc.name, tc.line, err, tc.want)
		}
	}
}

func TestDecodeRejectsBadBody(t *testing.T) {
	// Valid checksums over invalid bodies.
	bodies := []string{
		"",                 // empty
		"cause=watchdog",   // first pair not ev=
		"ev=boot rubbish",  // pair without =
	}

	for _, body := range bodies {
		line := "~" + body + "*" + encodeCRC(body)
		_, err := Decode(line)
		if !errors.Is(err, ErrBadBody) {
			t.Errorf("Decode(%q) error = %v, want ErrBadBody", line, err)
		}
	}
}

func TestEventGet(t *testing.T) {
	ev := ArmedEvent(core.Timeout1s)

	if v, ok := ev.Get("class"); !ok || v != "1s" {
		t.Errorf("Get(class) = %q, %v", v, ok)
	}
	if _, ok := ev.Get("missing"); ok {
		t.Error("Get(missing) reported present")
	}
}

func encodeCRC(body string) string {
	crc := CRC16([]byte(body))
	const hex = "0123456789ABCDEF"
	return string([]byte{
		hex[crc>>12&0xF], hex[crc>>8&0xF], hex[crc>>4&0xF], hex[crc&0xF],
	})
}
