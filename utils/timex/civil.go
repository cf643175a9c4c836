// File: civil.go
// Title: Civil Date and Time Types
// Description: Wall clock dates and times without a zone, and conversions
//              to and from time.Time in the system default zone.
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-15
//
// Change History:
// - 2026-09-28 v0.1.0: Day boundaries and zone helpers
// - 2026-10-15 v0.2.0: LocalDate, LocalTime and LocalDateTime

package timex

import (
	"fmt"
	"time"
)

// LocalDate is a calendar date without a zone
type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

// LocalTime is a wall clock time without a date or zone
type LocalTime struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// LocalDateTime is a date and wall clock time without a zone
type LocalDateTime struct {
	date LocalDate
	time LocalTime
}

// DateOf creates a LocalDate. Out of range values are normalized the way
// time.Date normalizes them: DateOf(2024, 2, 30) is 2024-03-01.
func DateOf(year int, month time.Month, day int) LocalDate {
	return ToLocalDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// TimeOf creates a LocalTime, wrapping values past midnight.
func TimeOf(hour, minute, second, nanosecond int) LocalTime {
	return ToLocalTime(time.Date(2000, 1, 1, hour, minute, second, nanosecond, time.UTC))
}

// DateTimeOf combines a date and a time
func DateTimeOf(date LocalDate, clock LocalTime) LocalDateTime {
	return LocalDateTime{date: date, time: clock}
}

// Date returns the date part
func (ldt LocalDateTime) Date() LocalDate { return ldt.date }

// Time returns the time part
func (ldt LocalDateTime) Time() LocalTime { return ldt.time }

func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (t LocalTime) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nanosecond != 0 {
		s += fmt.Sprintf(".%09d", t.Nanosecond)
	}
	return s
}

func (ldt LocalDateTime) String() string {
	return ldt.date.String() + "T" + ldt.time.String()
}

// utc places the civil value on the UTC time line
func (d LocalDate) utc() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (t LocalTime) nanos() int64 {
	return int64(t.Hour)*int64(time.Hour) + int64(t.Minute)*int64(time.Minute) +
		int64(t.Second)*int64(time.Second) + int64(t.Nanosecond)
}

func (ldt LocalDateTime) utc() time.Time {
	return ldt.date.utc().Add(time.Duration(ldt.time.nanos()))
}

// Before reports whether d is earlier than other
func (d LocalDate) Before(other LocalDate) bool { return d.utc().Before(other.utc()) }

// After reports whether d is later than other
func (d LocalDate) After(other LocalDate) bool { return d.utc().After(other.utc()) }

// Equal reports whether d and other are the same date
func (d LocalDate) Equal(other LocalDate) bool { return d.utc().Equal(other.utc()) }

// Before reports whether t is earlier than other
func (t LocalTime) Before(other LocalTime) bool { return t.nanos() < other.nanos() }

// After reports whether t is later than other
func (t LocalTime) After(other LocalTime) bool { return t.nanos() > other.nanos() }

// Equal reports whether t and other are the same time of day
func (t LocalTime) Equal(other LocalTime) bool { return t.nanos() == other.nanos() }

// Before reports whether ldt is earlier than other
func (ldt LocalDateTime) Before(other LocalDateTime) bool { return ldt.utc().Before(other.utc()) }

// After reports whether ldt is later than other
func (ldt LocalDateTime) After(other LocalDateTime) bool { return ldt.utc().After(other.utc()) }

// Equal reports whether ldt and other are the same wall clock instant
func (ldt LocalDateTime) Equal(other LocalDateTime) bool { return ldt.utc().Equal(other.utc()) }

// Add returns ldt shifted by d on the wall clock
func (ldt LocalDateTime) Add(d time.Duration) LocalDateTime {
	return toLocalDateTime(ldt.utc().Add(d))
}

// Sub returns the wall clock duration ldt - other
func (ldt LocalDateTime) Sub(other LocalDateTime) time.Duration {
	return ldt.utc().Sub(other.utc())
}

// ===============================
// Conversions
// ===============================

func toLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{date: ToLocalDate(t), time: ToLocalTime(t)}
}

// ToLocalDateTime returns the wall clock reading of t in the system default zone.
func ToLocalDateTime(t time.Time) LocalDateTime {
	return toLocalDateTime(t.In(time.Local))
}

// ToLocalDateTimeIn returns the wall clock reading of t in loc.
func ToLocalDateTimeIn(t time.Time, loc *time.Location) LocalDateTime {
	return toLocalDateTime(t.In(loc))
}

// ToLocalDate returns the date part of t as read in t's own location.
func ToLocalDate(t time.Time) LocalDate {
	y, m, d := t.Date()
	return LocalDate{Year: y, Month: m, Day: d}
}

// ToLocalTime returns the clock part of t as read in t's own location.
func ToLocalTime(t time.Time) LocalTime {
	h, m, s := t.Clock()
	return LocalTime{Hour: h, Minute: m, Second: s, Nanosecond: t.Nanosecond()}
}

// ToTime places ldt in the system default zone.
func ToTime(ldt LocalDateTime) time.Time {
	return ToTimeIn(ldt, time.Local)
}

// ToTimeIn places ldt in loc. Wall clock readings skipped or repeated by a
// zone transition resolve the way time.Date resolves them.
func ToTimeIn(ldt LocalDateTime, loc *time.Location) time.Time {
	d, c := ldt.date, ldt.time
	return time.Date(d.Year, d.Month, d.Day, c.Hour, c.Minute, c.Second, c.Nanosecond, loc)
}

// ToTimeOf combines a date and an optional clock in the system default zone.
// A nil clock means the start of the day.
func ToTimeOf(date LocalDate, clock *LocalTime) time.Time {
	return ToTimeOfIn(date, clock, time.Local)
}

// ToTimeOfIn combines a date and an optional clock in loc.
func ToTimeOfIn(date LocalDate, clock *LocalTime, loc *time.Location) time.Time {
	if clock == nil {
		return ToTimeIn(DateTimeOf(date, LocalTime{}), loc)
	}
	return ToTimeIn(DateTimeOf(date, *clock), loc)
}

// NowLocal returns the current wall clock reading in the system default zone.
func NowLocal() LocalDateTime {
	return ToLocalDateTime(now())
}

var now = time.Now
