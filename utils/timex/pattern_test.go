// File: pattern_test.go
// Title: Tests for Date Time Patterns
// Description: Formatting, parsing and pattern validation.
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial tests

package timex

import (
	"testing"
	"time"

	lzerrors "github.com/labzen/tool/core/errors"
)

var sample = time.Date(2024, time.March, 5, 7, 8, 9, 123456789, time.UTC)

func TestFormat(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"", "2024-03-05 07:08:09"},
		{PatternDateTime, "2024-03-05 07:08:09"},
		{PatternDateTimeMillis, "2024-03-05 07:08:09.123"},
		{PatternDate, "2024-03-05"},
		{PatternDateWeek, "2024-03-05 Tue"},
		{PatternTimeMillis, "07:08:09.123"},
		{PatternCNDateTime, "2024年03月05日 07时08分09秒"},
		{PatternCNDateTimeMillis, "2024年03月05日 07时08分09秒.123毫秒"},
		{"yy/M/d", "24/3/5"},
		{"MMM MMMM EEEE", "Mar March Tuesday"},
		{"hh:mm a", "07:08 AM"},
		{"yyyy'T'HH", "2024T07"},
		{"HH 'o''clock'", "07 o'clock"},
		{"''yyyy''", "'2024'"},
		{"ss.SSSSSS", "09.123456"},
		{"XXX", "Z"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := Format(sample, tt.pattern)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Format(%q) = %q; want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestFormatRejectsBadPatterns(t *testing.T) {
	for _, pattern := range []string{"yyyy-QQ", "HH 'open"} {
		if _, err := Format(sample, pattern); !lzerrors.IsInvalidFormat(err) {
			t.Errorf("Format(%q) error = %v; want invalid format", pattern, err)
		}
	}
}

func TestFormatLocal(t *testing.T) {
	ldt := DateTimeOf(DateOf(2024, 3, 5), TimeOf(7, 8, 9, 0))
	got, err := FormatLocal(ldt, PatternCNDate)
	if err != nil || got != "2024年03月05日" {
		t.Errorf("FormatLocal() = %q, %v", got, err)
	}
}

func TestFormatNow(t *testing.T) {
	restore := now
	now = func() time.Time { return sample }
	defer func() { now = restore }()

	got, err := FormatNow(PatternDate)
	if err != nil {
		t.Fatalf("FormatNow() error = %v", err)
	}
	if want := sample.In(time.Local).Format("2006-01-02"); got != want {
		t.Errorf("FormatNow() = %q; want %q", got, want)
	}
}

func TestParseInLocation(t *testing.T) {
	tests := []struct {
		value   string
		pattern string
		want    time.Time
	}{
		{"2024-03-05 07:08:09", "", time.Date(2024, 3, 5, 7, 8, 9, 0, time.UTC)},
		{"2024-03-05 07:08:09.123", PatternDateTimeMillis, time.Date(2024, 3, 5, 7, 8, 9, 123000000, time.UTC)},
		{"2024年03月05日", PatternCNDate, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"20240305", "yyyyMMdd", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"5 March 2024", "d MMMM yyyy", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseInLocation(tt.value, tt.pattern, time.UTC)
			if err != nil {
				t.Fatalf("ParseInLocation() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseInLocation() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		pattern string
	}{
		{"value mismatch", "2024/03/05", PatternDate},
		{"digit literal", "2024 1", "yyyy '1'"},
		{"fraction without dot", "09123", "ssSSS"},
		{"unknown letter", "2024", "yyyyQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.value, tt.pattern); !lzerrors.IsInvalidFormat(err) {
				t.Errorf("Parse() error = %v; want invalid format", err)
			}
		})
	}
}

func TestParseLocal(t *testing.T) {
	got, err := ParseLocal("2024-03-05 07:08:09", PatternDateTime)
	if err != nil {
		t.Fatalf("ParseLocal() error = %v", err)
	}
	if want := DateTimeOf(DateOf(2024, 3, 5), TimeOf(7, 8, 9, 0)); got != want {
		t.Errorf("ParseLocal() = %v; want %v", got, want)
	}
}

func TestPatternCache(t *testing.T) {
	first, err := compilePattern("Format", "yyyy")
	if err != nil {
		t.Fatal(err)
	}
	second, _ := compilePattern("Format", "yyyy")
	if first != second {
		t.Error("compilePattern() did not reuse the cached pattern")
	}
}
