// File: doc.go
// Title: Package Documentation for timex
// Description: Package timex provides civil date and time values, letter
//              patterns and elapsed time rendering.
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-16
//
// Change History:
// - 2026-09-28 v0.1.0: Initial documentation
// - 2026-10-16 v0.2.0: Civil types, patterns, HowLong and Humanize

// Package timex provides date and time helpers for the labzen tool.
//
// Civil Values
//
// LocalDate, LocalTime and LocalDateTime are wall clock readings without a
// zone. ToLocalDateTime and ToTime convert between them and time.Time using
// the system default zone; the *In variants take an explicit location.
//
// Patterns
//
// Format and Parse take letter patterns such as "yyyy-MM-dd HH:mm:ss"
// instead of Go reference layouts. Compiled patterns are cached, so passing
// the same pattern repeatedly is cheap. The Pattern* constants cover the
// common layouts, including Chinese ones.
//
//	s, _ := timex.Format(t, timex.PatternDateTimeMillis) // "2024-03-05 07:08:09.123"
//	t, err := timex.Parse("2024年03月05日", timex.PatternCNDate)
//
// Elapsed Time
//
// HowLong renders the distance between two instants through unit symbols:
//
//	s, _ := timex.HowLong(deadline, "(d'd' )?HH:mm c(overdue|left)") // "1d 03:20 left"
//
// Humanize produces English phrases such as "3 days ago".
package timex
