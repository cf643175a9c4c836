// File: format_test.go
// Title: Formatter Tests
// Description: Tests for level and format parsing and for each formatter.
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-08

package log

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	lzerror "github.com/labzen/tool/core/error"
)

func sampleEntry() *Entry {
	e := NewEntry(LevelWarn, "slow codec")
	e.Timestamp = time.Date(2026, 10, 8, 12, 30, 15, 0, time.UTC)
	e.Logger = "labzen"
	e.WithFields(Fields{"zeta": 1, "alpha": "a b"})
	return e
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"aud", LevelAudit, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v; want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseLevelErrorCode(t *testing.T) {
	_, err := ParseLevel("loud")
	if !lzerror.HasCode(err, lzerror.CodeInvalidConfig) {
		t.Errorf("ParseLevel error code = %v, want INVALID_CONFIG", lzerror.GetCode(err))
	}
}

func TestLevelStrings(t *testing.T) {
	for _, level := range AllLevels() {
		if level.String() == "unknown" || level.ShortString() == "???" {
			t.Errorf("level %d has no name", level)
		}
		parsed, err := ParseLevel(level.String())
		if err != nil || parsed != level {
			t.Errorf("ParseLevel(%q) = %v, %v", level.String(), parsed, err)
		}
	}
	if Level(99).String() != "unknown" {
		t.Error("out of range level should be unknown")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"Text", FormatText, false},
		{"console", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatJSON, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v; want %v", tt.input, got, tt.want)
		}
		if !tt.wantErr && got.String() != strings.ToLower(tt.input) {
			t.Errorf("Format.String() = %q; want %q", got.String(), strings.ToLower(tt.input))
		}
	}
}

func TestLevelForSeverity(t *testing.T) {
	tests := []struct {
		severity lzerror.Severity
		want     Level
	}{
		{lzerror.SeverityLow, LevelInfo},
		{lzerror.SeverityMedium, LevelWarn},
		{lzerror.SeverityHigh, LevelError},
		{lzerror.SeverityCritical, LevelError},
	}
	for _, tt := range tests {
		if got := LevelForSeverity(tt.severity); got != tt.want {
			t.Errorf("LevelForSeverity(%v) = %v; want %v", tt.severity, got, tt.want)
		}
	}
}

func TestJSONFormatter(t *testing.T) {
	e := sampleEntry()
	e.WithError(errors.New("eof")).WithDuration(1500 * time.Microsecond)

	data, err := NewJSONFormatter().Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("JSON output should end with a newline")
	}

	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	want := map[string]interface{}{
		"timestamp":   "2026-10-08T12:30:15Z",
		"level":       "warn",
		"message":     "slow codec",
		"logger":      "labzen",
		"alpha":       "a b",
		"zeta":        float64(1),
		"error":       "eof",
		"duration_ms": 1.5,
	}
	for k, v := range want {
		if m[k] != v {
			t.Errorf("%s = %v; want %v", k, m[k], v)
		}
	}
}

func TestTextFormatter(t *testing.T) {
	data, _ := NewTextFormatter().Format(sampleEntry())
	want := "12:30:15 [WRN] {labzen} slow codec [alpha=a b zeta=1]\n"
	if string(data) != want {
		t.Errorf("Format() = %q; want %q", string(data), want)
	}
}

func TestConsoleFormatterWithoutColors(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableColors = true

	data, _ := f.Format(sampleEntry())
	text, _ := NewTextFormatter().Format(sampleEntry())
	if string(data) != string(text) {
		t.Errorf("console without colors = %q; want %q", string(data), string(text))
	}
}

func TestConsoleFormatterKeepsContent(t *testing.T) {
	data, _ := NewConsoleFormatter().Format(sampleEntry())
	for _, want := range []string{"WRN", "slow codec", "alpha=a b"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("console output %q missing %q", string(data), want)
		}
	}
}

func TestLogfmtFormatter(t *testing.T) {
	data, _ := NewLogfmtFormatter().Format(sampleEntry())
	want := `timestamp=2026-10-08T12:30:15Z level=warn message="slow codec" logger=labzen alpha="a b" zeta=1` + "\n"
	if string(data) != want {
		t.Errorf("Format() = %q; want %q", string(data), want)
	}
}

func TestGetFormatter(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "*log.JSONFormatter"},
		{FormatText, "*log.TextFormatter"},
		{FormatConsole, "*log.ConsoleFormatter"},
		{FormatLogfmt, "*log.LogfmtFormatter"},
		{Format(42), "*log.JSONFormatter"},
	}
	for _, tt := range tests {
		if got := typeName(GetFormatter(tt.format)); got != tt.want {
			t.Errorf("GetFormatter(%v) = %s; want %s", tt.format, got, tt.want)
		}
	}
}

func TestFieldsHelpers(t *testing.T) {
	f := Fields{"b": 2, "a": 1}
	merged := f.Merge(Field("c", 3))
	if len(merged) != 3 || len(f) != 2 {
		t.Errorf("Merge() should not modify the receiver: %v %v", f, merged)
	}
	keys := merged.Keys()
	if strings.Join(keys, ",") != "a,b,c" {
		t.Errorf("Keys() = %v", keys)
	}
	if Fields(nil).Clone() != nil {
		t.Error("Clone() of nil should be nil")
	}
	if Err(errors.New("x"))["error"] == nil {
		t.Error("Err() should set the error field")
	}
}

func typeName(v interface{}) string {
	return fmt.Sprintf("%T", v)
}
