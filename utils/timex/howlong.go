// File: howlong.go
// Title: Elapsed Time Patterns
// Description: Renders the distance between two times through a pattern of
//              unit symbols, e.g. "d 'days' H 'hours' c(ago|from now)".
// Version: v0.1.2
// Created: 2026-10-15
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-15 v0.1.0: Units, quoting and relation markers
// - 2026-10-16 v0.1.1: Optional groups
// - 2026-10-19 v0.1.2: No-carry unit suffix

package timex

import (
	"strings"
	"time"

	lzerrors "github.com/labzen/tool/core/errors"
)

const (
	day = 24 * time.Hour

	// unitOrder lists the unit symbols from the largest to the smallest
	unitOrder = "yMwdHms"
)

var unitLengths = map[rune]time.Duration{
	'y': 365 * day,
	'M': 30 * day,
	'w': 7 * day,
	'd': day,
	'H': time.Hour,
	'm': time.Minute,
	's': time.Second,
}

type segmentKind int

const (
	segmentLiteral segmentKind = iota
	segmentUnit
	segmentRelation
	segmentOptional
)

type howLongSegment struct {
	kind    segmentKind
	text    string
	unit    rune
	width   int
	noCarry bool // unit written with the "-" suffix
	before  string
	after   string
	group   []howLongSegment
}

// HowLong renders the distance from now to t. See HowLongBetween.
func HowLong(t time.Time, pattern string) (string, error) {
	return HowLongBetween(now(), t, pattern)
}

// HowLongBetween renders the distance from reference to target.
//
// Unit symbols y (365 days), M (30 days), w, d, H, m and s print how many of
// the unit fit into the distance. The largest unit present takes as much as
// it can and each smaller unit takes what remains, so "H:mm" for 70 minutes
// renders "1:10" and "m" alone renders "70". A run such as "mm" pads to its
// length. A unit used twice prints the same value twice. A unit may carry a
// "-" suffix ("H-", "d-") marking it as not carrying into a larger unit; the
// suffix is consumed and the value renders as usual.
//
// c(before|after) renders before when target is earlier than reference and
// after otherwise, and nothing when the pattern has units and all of them
// are zero.
// (...)? drops the group when its single unit is zero. \x prints x and
// 'text' prints text unchanged.
func HowLongBetween(reference, target time.Time, pattern string) (string, error) {
	segments, err := parseHowLong([]rune(pattern), pattern)
	if err != nil {
		return "", err
	}

	distance := target.Sub(reference)
	if distance < 0 {
		distance = -distance
	}

	present := make(map[rune]bool)
	collectUnits(segments, present)

	values := make(map[rune]int64, len(present))
	surplus := distance
	for _, u := range unitOrder {
		if !present[u] {
			continue
		}
		values[u] = int64(surplus / unitLengths[u])
		surplus %= unitLengths[u]
	}

	allZero := len(values) > 0
	for _, v := range values {
		if v != 0 {
			allZero = false
		}
	}
	rc := renderContext{
		values:   values,
		earlier:  target.Before(reference),
		relation: distance != 0 && !allZero,
	}

	var b strings.Builder
	rc.render(&b, segments)
	return b.String(), nil
}

type renderContext struct {
	values   map[rune]int64
	earlier  bool
	relation bool
}

func (rc renderContext) render(b *strings.Builder, segments []howLongSegment) {
	for _, seg := range segments {
		switch seg.kind {
		case segmentLiteral:
			b.WriteString(seg.text)
		case segmentUnit:
			v := rc.values[seg.unit]
			b.WriteString(pad64(v, seg.width))
		case segmentRelation:
			if !rc.relation {
				continue
			}
			if rc.earlier {
				b.WriteString(seg.before)
			} else {
				b.WriteString(seg.after)
			}
		case segmentOptional:
			if rc.values[seg.unit] != 0 {
				rc.render(b, seg.group)
			}
		}
	}
}

func pad64(v int64, width int) string {
	if v <= int64(^uint(0)>>1) {
		return pad(int(v), width)
	}
	return pad(0, width)
}

func collectUnits(segments []howLongSegment, into map[rune]bool) {
	for _, seg := range segments {
		switch seg.kind {
		case segmentUnit:
			into[seg.unit] = true
		case segmentOptional:
			collectUnits(seg.group, into)
		}
	}
}

func isUnit(r rune) bool {
	_, ok := unitLengths[r]
	return ok
}

func parseHowLong(runes []rune, pattern string) ([]howLongSegment, error) {
	var (
		segments []howLongSegment
		literal  strings.Builder
	)
	flush := func() {
		if literal.Len() > 0 {
			segments = append(segments, howLongSegment{kind: segmentLiteral, text: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\':
			if i+1 < len(runes) {
				i++
			}
			literal.WriteRune(runes[i])

		case r == '\'':
			end := indexRune(runes, '\'', i+1)
			if end < 0 {
				return nil, lzerrors.InvalidFormat(lzerrors.ModuleTimex, "HowLong", pattern, "closed quote")
			}
			literal.WriteString(string(runes[i+1 : end]))
			i = end

		case isUnit(r):
			flush()
			width := 1
			for i+1 < len(runes) && runes[i+1] == r {
				width++
				i++
			}
			noCarry := i+1 < len(runes) && runes[i+1] == '-'
			if noCarry {
				i++
			}
			segments = append(segments, howLongSegment{kind: segmentUnit, unit: r, width: width, noCarry: noCarry})

		case r == 'c' && i+1 < len(runes) && runes[i+1] == '(':
			end := indexRune(runes, ')', i+2)
			if end < 0 {
				literal.WriteRune(r)
				continue
			}
			flush()
			before, after, _ := strings.Cut(string(runes[i+2:end]), "|")
			segments = append(segments, howLongSegment{kind: segmentRelation, before: before, after: after})
			i = end

		case r == '(':
			end := indexOptionalEnd(runes, i+1)
			if end < 0 {
				literal.WriteRune(r)
				continue
			}
			group, err := parseHowLong(runes[i+1:end], pattern)
			if err != nil {
				return nil, err
			}
			units := make(map[rune]bool)
			collectUnits(group, units)
			if len(units) != 1 {
				literal.WriteRune(r)
				continue
			}
			flush()
			var unit rune
			for u := range units {
				unit = u
			}
			segments = append(segments, howLongSegment{kind: segmentOptional, unit: unit, group: group})
			i = end + 1

		default:
			literal.WriteRune(r)
		}
	}
	flush()
	return segments, nil
}

func indexRune(runes []rune, target rune, from int) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == target {
			return i
		}
	}
	return -1
}

// indexOptionalEnd finds the ')' of the next ")?" at or after from
func indexOptionalEnd(runes []rune, from int) int {
	for i := from; i+1 < len(runes); i++ {
		if runes[i] == ')' && runes[i+1] == '?' {
			return i
		}
	}
	return -1
}
