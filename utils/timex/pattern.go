// File: pattern.go
// Title: Date Time Patterns
// Description: Formats and parses times with letter patterns such as
//              "yyyy-MM-dd HH:mm:ss". Patterns are compiled once and cached.
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-15
//
// Change History:
// - 2026-09-28 v0.1.0: Named layouts
// - 2026-10-15 v0.2.0: Letter patterns with quoting, compiled pattern cache

package timex

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	lzerrors "github.com/labzen/tool/core/errors"
	"github.com/labzen/tool/pkg/core/cache"
	"github.com/labzen/tool/utils/stringx"
)

// Common patterns
const (
	PatternDateTime       = "yyyy-MM-dd HH:mm:ss"
	PatternDateTimeMillis = "yyyy-MM-dd HH:mm:ss.SSS"
	PatternDate           = "yyyy-MM-dd"
	PatternDateWeek       = "yyyy-MM-dd E"
	PatternTime           = "HH:mm:ss"
	PatternTimeMillis     = "HH:mm:ss.SSS"

	PatternCNDateTime       = "yyyy年MM月dd日 HH时mm分ss秒"
	PatternCNDateTimeMillis = "yyyy年MM月dd日 HH时mm分ss秒.SSS毫秒"
	PatternCNDate           = "yyyy年MM月dd日"
	PatternCNTime           = "HH时mm分ss秒"
)

// patternToken is either a run of one pattern letter or literal text
type patternToken struct {
	letter  rune
	count   int
	literal string
}

type compiledPattern struct {
	tokens []patternToken
	layout string
	// layoutErr is set when the pattern formats fine but cannot be parsed
	layoutErr error
}

var patternCache = cache.New[string, *compiledPattern](cache.Config{MaxItems: 512})

const patternLetters = "yMdHhmsSaEzZX"

func compilePattern(op, pattern string) (*compiledPattern, error) {
	return patternCache.GetOrSet(pattern, func() (*compiledPattern, error) {
		tokens, err := tokenizePattern(op, pattern)
		if err != nil {
			return nil, err
		}
		cp := &compiledPattern{tokens: tokens}
		cp.layout, cp.layoutErr = goLayout(pattern, tokens)
		return cp, nil
	})
}

func tokenizePattern(op, pattern string) ([]patternToken, error) {
	var (
		tokens  []patternToken
		literal strings.Builder
	)
	flush := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, patternToken{literal: literal.String()})
			literal.Reset()
		}
	}

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\'':
			end := i + 1
			for end < len(runes) && runes[end] != '\'' {
				end++
			}
			if end == len(runes) {
				return nil, lzerrors.InvalidFormat(lzerrors.ModuleTimex, op, pattern, "closed quote")
			}
			if end == i+1 {
				literal.WriteRune('\'')
			} else {
				literal.WriteString(string(runes[i+1 : end]))
			}
			i = end
		case strings.ContainsRune(patternLetters, r):
			flush()
			count := 1
			for i+1 < len(runes) && runes[i+1] == r {
				count++
				i++
			}
			tokens = append(tokens, patternToken{letter: r, count: count})
		case r < unicode.MaxASCII && unicode.IsLetter(r):
			return nil, lzerrors.InvalidFormat(lzerrors.ModuleTimex, op, pattern,
				fmt.Sprintf("known pattern letter, got %q", r))
		default:
			literal.WriteRune(r)
		}
	}
	flush()
	return tokens, nil
}

// goLayout translates the tokens into a time package layout for parsing
func goLayout(pattern string, tokens []patternToken) (string, error) {
	var b strings.Builder
	for i, tok := range tokens {
		if tok.letter == 0 {
			if ambiguousLiteral(tok.literal) {
				return "", lzerrors.InvalidFormat(lzerrors.ModuleTimex, "Parse", pattern,
					"literal text without digits or layout words")
			}
			b.WriteString(tok.literal)
			continue
		}

		switch tok.letter {
		case 'y':
			if tok.count == 2 {
				b.WriteString("06")
			} else {
				b.WriteString("2006")
			}
		case 'M':
			b.WriteString(pick(tok.count, "1", "01", "Jan", "January"))
		case 'd':
			b.WriteString(pick(tok.count, "2", "02", "02", "02"))
		case 'H':
			b.WriteString("15")
		case 'h':
			b.WriteString(pick(tok.count, "3", "03", "03", "03"))
		case 'm':
			b.WriteString(pick(tok.count, "4", "04", "04", "04"))
		case 's':
			b.WriteString(pick(tok.count, "5", "05", "05", "05"))
		case 'S':
			if i == 0 || tokens[i-1].letter != 0 || !strings.HasSuffix(tokens[i-1].literal, ".") {
				return "", lzerrors.InvalidFormat(lzerrors.ModuleTimex, "Parse", pattern,
					"fraction of second after a '.'")
			}
			b.WriteString(strings.Repeat("0", tok.count))
		case 'a':
			b.WriteString("PM")
		case 'E':
			b.WriteString(pick(tok.count, "Mon", "Mon", "Mon", "Monday"))
		case 'z':
			b.WriteString("MST")
		case 'Z':
			b.WriteString("-0700")
		case 'X':
			b.WriteString(pick(tok.count, "Z07", "Z0700", "Z07:00", "Z07:00"))
		}
	}
	return b.String(), nil
}

var layoutWords = []string{"Jan", "Mon", "MST", "PM", "pm", "_2", "Z07"}

func ambiguousLiteral(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	for _, w := range layoutWords {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// pick chooses by run length: 1, 2, 3, 4 or more
func pick(count int, one, two, three, four string) string {
	switch count {
	case 1:
		return one
	case 2:
		return two
	case 3:
		return three
	default:
		return four
	}
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func (cp *compiledPattern) format(t time.Time) string {
	var b strings.Builder
	for _, tok := range cp.tokens {
		if tok.letter == 0 {
			b.WriteString(tok.literal)
			continue
		}

		switch tok.letter {
		case 'y':
			if tok.count == 2 {
				b.WriteString(pad(t.Year()%100, 2))
			} else {
				b.WriteString(pad(t.Year(), tok.count))
			}
		case 'M':
			switch {
			case tok.count == 3:
				b.WriteString(t.Format("Jan"))
			case tok.count >= 4:
				b.WriteString(t.Month().String())
			default:
				b.WriteString(pad(int(t.Month()), tok.count))
			}
		case 'd':
			b.WriteString(pad(t.Day(), tok.count))
		case 'H':
			b.WriteString(pad(t.Hour(), tok.count))
		case 'h':
			h := t.Hour() % 12
			if h == 0 {
				h = 12
			}
			b.WriteString(pad(h, tok.count))
		case 'm':
			b.WriteString(pad(t.Minute(), tok.count))
		case 's':
			b.WriteString(pad(t.Second(), tok.count))
		case 'S':
			frac := pad(t.Nanosecond(), 9)
			if tok.count <= 9 {
				b.WriteString(frac[:tok.count])
			} else {
				b.WriteString(frac + strings.Repeat("0", tok.count-9))
			}
		case 'a':
			b.WriteString(t.Format("PM"))
		case 'E':
			if tok.count >= 4 {
				b.WriteString(t.Weekday().String())
			} else {
				b.WriteString(t.Format("Mon"))
			}
		case 'z':
			b.WriteString(t.Format("MST"))
		case 'Z':
			b.WriteString(t.Format("-0700"))
		case 'X':
			b.WriteString(t.Format(pick(tok.count, "Z07", "Z0700", "Z07:00", "Z07:00")))
		}
	}
	return b.String()
}

// Format renders t with pattern. An empty pattern means PatternDateTime.
//
// Pattern letters: y year, M month, d day, H hour (0-23), h hour (1-12),
// m minute, s second, S fraction of second, a AM/PM, E weekday, z zone
// name, Z zone offset, X ISO 8601 offset. Text in single quotes is literal,
// '' is a single quote. Other ASCII letters are rejected.
func Format(t time.Time, pattern string) (string, error) {
	cp, err := compilePattern("Format", stringx.FromDefault(pattern, PatternDateTime))
	if err != nil {
		return "", err
	}
	return cp.format(t), nil
}

// FormatLocal renders a civil date time with pattern. Zone letters render UTC.
func FormatLocal(ldt LocalDateTime, pattern string) (string, error) {
	return Format(ldt.utc(), pattern)
}

// FormatNow renders the current time in the system default zone.
func FormatNow(pattern string) (string, error) {
	return Format(now().In(time.Local), pattern)
}

// Parse reads value with pattern in the system default zone. Parsing needs
// a pattern whose literal text contains no digits and whose fraction of
// second directly follows a '.'.
func Parse(value, pattern string) (time.Time, error) {
	return ParseInLocation(value, pattern, time.Local)
}

// ParseInLocation reads value with pattern, placing zone-less values in loc.
func ParseInLocation(value, pattern string, loc *time.Location) (time.Time, error) {
	pattern = stringx.FromDefault(pattern, PatternDateTime)
	cp, err := compilePattern("Parse", pattern)
	if err != nil {
		return time.Time{}, err
	}
	if cp.layoutErr != nil {
		return time.Time{}, cp.layoutErr
	}

	t, err := time.ParseInLocation(cp.layout, value, loc)
	if err != nil {
		return time.Time{}, lzerrors.InvalidFormat(lzerrors.ModuleTimex, "Parse", value, pattern).
			WithDetail("cause", err.Error())
	}
	return t, nil
}

// ParseLocal reads value with pattern as a civil date time.
func ParseLocal(value, pattern string) (LocalDateTime, error) {
	t, err := ParseInLocation(value, pattern, time.UTC)
	if err != nil {
		return LocalDateTime{}, err
	}
	return toLocalDateTime(t), nil
}
